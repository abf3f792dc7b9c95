package domain

import "go.trai.ch/zerr"

var (
	// ErrSrcDirRequired is returned when no source directory is configured.
	ErrSrcDirRequired = zerr.New("source directory is required")

	// ErrDistDirRequired is returned when no destination directory is configured.
	ErrDistDirRequired = zerr.New("dist directory is required")

	// ErrTmpDirRequired is returned when no temporary directory is configured.
	ErrTmpDirRequired = zerr.New("temporary directory is required")

	// ErrVersionRequired is returned when no wasm version is configured.
	ErrVersionRequired = zerr.New("wasm version is required")

	// ErrWorkspaceRootRequired is returned when no workspace root is configured.
	ErrWorkspaceRootRequired = zerr.New("workspace root is required")

	// ErrToolchainStartFailed is returned when wasm-pack could not be started at all.
	ErrToolchainStartFailed = zerr.New("failed to run wasm-pack")

	// ErrToolchainBuildFailed is returned when wasm-pack exits non-zero,
	// either immediately on a fatal failure or after the retry budget for
	// cache contention is exhausted.
	ErrToolchainBuildFailed = zerr.New("wasm-pack failed to build the package")

	// ErrDistClearFailed is returned when the old dist directory cannot be removed.
	ErrDistClearFailed = zerr.New("failed to clear old dist directory")

	// ErrDistCreateFailed is returned when the dist directory cannot be created.
	ErrDistCreateFailed = zerr.New("failed to create the dist directory")

	// ErrAssetCopyFailed is returned when copying static files fails.
	ErrAssetCopyFailed = zerr.New("failed to copy static files")

	// ErrSnippetCopyFailed is returned when copying toolchain JS snippets fails.
	ErrSnippetCopyFailed = zerr.New("failed to copy js snippets")

	// ErrTemplateReadFailed is returned when the entry template cannot be read.
	// The template is a source file expected to be checked into the project.
	ErrTemplateReadFailed = zerr.New("failed to read the entry template")

	// ErrBootstrapReadFailed is returned when the toolchain-emitted bootstrap
	// script cannot be read. This indicates a contract violation between
	// pipeline stages, not a user error.
	ErrBootstrapReadFailed = zerr.New("failed to read the bootstrap script")

	// ErrStylesheetReadFailed is returned when the stylesheet source cannot be read.
	ErrStylesheetReadFailed = zerr.New("failed to read the stylesheet source")

	// ErrStylesheetCompileFailed is returned when Sass compilation fails.
	ErrStylesheetCompileFailed = zerr.New("sass compilation failed")

	// ErrTemplateRenderFailed is returned when rendering the entry template fails.
	ErrTemplateRenderFailed = zerr.New("failed to render the entry template")

	// ErrIndexWriteFailed is returned when the rendered document cannot be written.
	ErrIndexWriteFailed = zerr.New("failed to write the index.html file")

	// ErrModuleCopyFailed is returned when the wasm module cannot be placed
	// into the destination.
	ErrModuleCopyFailed = zerr.New("failed to copy the application wasm")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrBundleFailed is returned when the bundling pipeline fails.
	ErrBundleFailed = zerr.New("bundling failed")
)
