// Package cargo emits build-dependency directives for the host build system.
package cargo

import (
	"fmt"
	"io"

	"go.trai.ch/webbundle/internal/adapters/fs"
)

// Tracker implements ports.ChangeTracker by printing one
// cargo:rerun-if-changed directive per discovered filesystem entry.
//
// Cargo reads these directives from the build script's stdout and re-runs
// the pipeline whenever any declared path changes. Declaration happens
// before any other stage so that even a failed build leaves its
// dependencies registered.
type Tracker struct {
	out    io.Writer
	walker *fs.Walker
}

// NewTracker creates a Tracker writing directives to out.
func NewTracker(out io.Writer, walker *fs.Walker) *Tracker {
	return &Tracker{out: out, walker: walker}
}

// Declare walks every root and emits a directive per reachable entry.
func (t *Tracker) Declare(roots []string) {
	for _, root := range roots {
		for path := range t.walker.WalkAll(root) {
			_, _ = fmt.Fprintf(t.out, "cargo:rerun-if-changed=%s\n", path)
		}
	}
}
