// Package ports defines the core interfaces of the web bundler.
package ports

import (
	"context"

	"go.trai.ch/webbundle/internal/core/domain"
)

// Toolchain compiles the wasm application by invoking the external module
// compiler.
//
//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Build runs the compiler against opts.SrcDir, writing its output into
	// opts.TmpDir, and returns the expected artifact locations.
	//
	// Known transient failures (concurrent invocations racing on the
	// compiler's shared cache) are retried internally; any error returned
	// is fatal and carries the compiler's captured output.
	Build(ctx context.Context, opts domain.Options) (*domain.CompiledModule, error)
}
