// Package sass compiles stylesheets via the dart-sass embedded protocol.
package sass

import (
	"context"

	"github.com/bep/godartsass/v2"
	"go.trai.ch/webbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

// Compiler implements ports.StyleCompiler using dart-sass. Each Compile
// call starts its own transpiler process; the pipeline compiles exactly one
// stylesheet per run, so keeping a long-lived process would buy nothing.
type Compiler struct {
	// Binary optionally overrides the dart-sass executable. When empty,
	// godartsass looks for a suitable binary on PATH.
	Binary string
}

// NewCompiler creates a new Compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

var _ ports.StyleCompiler = (*Compiler)(nil)

// Compile compiles indented-syntax Sass source into compressed CSS.
func (c *Compiler) Compile(_ context.Context, source, includeDir string) (string, error) {
	transpiler, err := godartsass.Start(godartsass.Options{
		DartSassEmbeddedFilename: c.Binary,
	})
	if err != nil {
		return "", zerr.Wrap(err, "failed to start dart-sass")
	}
	defer func() { _ = transpiler.Close() }()

	var includePaths []string
	if includeDir != "" {
		includePaths = []string{includeDir}
	}

	result, err := transpiler.Execute(godartsass.Args{
		Source:       source,
		SourceSyntax: godartsass.SourceSyntaxSASS,
		OutputStyle:  godartsass.OutputStyleCompressed,
		IncludePaths: includePaths,
	})
	if err != nil {
		// The error already carries dart-sass's diagnostic text.
		return "", zerr.Wrap(err, "sass compilation failed")
	}
	return result.CSS, nil
}
