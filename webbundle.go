// Package webbundle turns a wasm single-page application source tree into a
// static artifact set: a version-qualified wasm module, its JS loader inlined
// into the rendered index.html, the compiled stylesheet and any static
// assets.
//
// This package is the library entry point for host build scripts. The
// webbundle command wraps the same pipeline for interactive use.
package webbundle

import (
	"context"
	"os"

	"go.trai.ch/webbundle/internal/adapters/cargo"
	"go.trai.ch/webbundle/internal/adapters/fs"
	"go.trai.ch/webbundle/internal/adapters/logger"
	"go.trai.ch/webbundle/internal/adapters/sass"
	"go.trai.ch/webbundle/internal/adapters/telemetry"
	"go.trai.ch/webbundle/internal/adapters/template"
	"go.trai.ch/webbundle/internal/adapters/wasmpack"
	"go.trai.ch/webbundle/internal/core/domain"
	"go.trai.ch/webbundle/internal/engine/pipeline"
)

// Options configures one bundling run.
type Options = domain.Options

// Run executes one bundling run with the default adapter set. Build input
// directives for the host build system are written to stdout, log output
// goes to stderr.
func Run(ctx context.Context, opts Options) error {
	log := logger.New()

	p := pipeline.New(
		cargo.NewTracker(os.Stdout, fs.NewWalker()),
		wasmpack.NewRunner(log),
		sass.NewCompiler(),
		template.NewRenderer(),
		fs.NewWorkspace(),
		log,
		telemetry.NewTracer("webbundle"),
	)
	return p.Run(ctx, opts)
}
