// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/webbundle/internal/adapters/cargo"
	_ "go.trai.ch/webbundle/internal/adapters/config"
	_ "go.trai.ch/webbundle/internal/adapters/fs"
	_ "go.trai.ch/webbundle/internal/adapters/logger"
	_ "go.trai.ch/webbundle/internal/adapters/sass"
	_ "go.trai.ch/webbundle/internal/adapters/telemetry"
	_ "go.trai.ch/webbundle/internal/adapters/template"
	_ "go.trai.ch/webbundle/internal/adapters/wasmpack"
	// Register app and engine nodes.
	_ "go.trai.ch/webbundle/internal/app"
	_ "go.trai.ch/webbundle/internal/engine/pipeline"
)
