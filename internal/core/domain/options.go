// Package domain contains the core types of the web bundler.
package domain

import "path/filepath"

// Options describes one bundling run. It is supplied by the caller (CLI
// flags, webbundle.yaml, or a host build script embedding the library) and
// is treated as immutable by the pipeline.
//
// The destination and temporary directories are owned by the pipeline and
// may be destroyed and recreated on every run. The source directory and
// workspace root are never written to.
type Options struct {
	// SrcDir is the root of the wasm application crate. The entry template
	// (index.html), the stylesheet (css/style.sass) and the optional static
	// directory are resolved relative to it.
	SrcDir string

	// DistDir is where the final artifact set is written.
	DistDir string

	// TmpDir is a scratch directory for toolchain output. Artifacts placed
	// here do not outlive the run.
	TmpDir string

	// BaseURL is passed into the entry template as base_url.
	// Empty means "/".
	BaseURL string

	// Version is embedded into the wasm module filename to defeat stale
	// client-side caching.
	Version string

	// Release selects the toolchain's release mode instead of dev mode.
	Release bool

	// WorkspaceRoot is where the toolchain's own target directory is placed,
	// keeping concurrent projects from colliding on one global location.
	WorkspaceRoot string

	// ExtraWatchDirs lists additional directories whose contents should
	// trigger a rebuild in the host build system.
	ExtraWatchDirs []string
}

// Validate checks that every required field is set.
func (o Options) Validate() error {
	switch {
	case o.SrcDir == "":
		return ErrSrcDirRequired
	case o.DistDir == "":
		return ErrDistDirRequired
	case o.TmpDir == "":
		return ErrTmpDirRequired
	case o.Version == "":
		return ErrVersionRequired
	case o.WorkspaceRoot == "":
		return ErrWorkspaceRootRequired
	}
	return nil
}

// BaseURLOrDefault returns the configured base URL, or "/" when unset.
func (o Options) BaseURLOrDefault() string {
	if o.BaseURL == "" {
		return "/"
	}
	return o.BaseURL
}

// WatchRoots returns every directory the host build system should watch:
// the source tree plus any extra watch directories.
func (o Options) WatchRoots() []string {
	roots := make([]string, 0, 1+len(o.ExtraWatchDirs))
	roots = append(roots, o.SrcDir)
	roots = append(roots, o.ExtraWatchDirs...)
	return roots
}

// TemplatePath returns the path of the entry-point template in the source tree.
func (o Options) TemplatePath() string {
	return filepath.Join(o.SrcDir, IndexFileName)
}

// StylesheetPath returns the path of the stylesheet source in the source tree.
func (o Options) StylesheetPath() string {
	return filepath.Join(o.SrcDir, StylesheetRelPath)
}

// StaticDir returns the path of the optional static asset directory.
func (o Options) StaticDir() string {
	return filepath.Join(o.SrcDir, StaticDirName)
}
