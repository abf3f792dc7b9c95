package domain

import "path/filepath"

// CompiledModule locates the output of one successful toolchain invocation
// inside the temporary directory. The files exist only for the duration of
// the run; later stages read them and place derived artifacts into the
// destination.
type CompiledModule struct {
	// BootstrapPath is the JS loader script (package.js).
	BootstrapPath string

	// ModulePath is the compiled wasm module (package_bg.wasm).
	ModulePath string

	// SnippetsDir is the optional snippets directory. It may not exist.
	SnippetsDir string
}

// CompiledModuleIn returns the expected artifact locations for a toolchain
// run that wrote into tmpDir.
func CompiledModuleIn(tmpDir string) *CompiledModule {
	return &CompiledModule{
		BootstrapPath: filepath.Join(tmpDir, BootstrapFileName),
		ModulePath:    filepath.Join(tmpDir, RawModuleFileName),
		SnippetsDir:   filepath.Join(tmpDir, SnippetsDirName),
	}
}

// RenderContext carries the values injected into the entry template.
// Javascript and Stylesheet are complete markup fragments and are rendered
// raw; escaping them would corrupt the document.
type RenderContext struct {
	BaseURL    string
	Javascript string
	Stylesheet string
}
