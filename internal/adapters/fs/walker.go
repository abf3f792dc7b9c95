// Package fs provides the filesystem adapters of the bundle pipeline.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkAll yields every filesystem entry reachable from root, directories
// included. Entries that cannot be read are skipped rather than aborting the
// walk; a single unreadable entry must not block dependency declaration.
func (w *Walker) WalkAll(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, _ fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // skip unreadable entries
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}
