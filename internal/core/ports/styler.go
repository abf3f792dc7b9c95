package ports

import "context"

// StyleCompiler turns stylesheet source text into plain CSS.
//
//go:generate mockgen -source=styler.go -destination=mocks/mock_styler.go -package=mocks
type StyleCompiler interface {
	// Compile compiles indented-syntax Sass source into compressed CSS.
	// includeDir is searched for imports. On failure the error carries the
	// compiler's diagnostic text.
	Compile(ctx context.Context, source, includeDir string) (string, error)
}
