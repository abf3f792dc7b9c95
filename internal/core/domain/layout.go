package domain

// Filenames of the toolchain contract and the produced destination tree.
// The toolchain is invoked with a fixed output base name ("package"); the
// files below are what a successful invocation leaves in the temporary
// directory.
const (
	// IndexFileName is both the entry template in the source tree and the
	// rendered document in the destination.
	IndexFileName = "index.html"

	// StylesheetRelPath is the stylesheet source, relative to the source
	// directory. The content uses the indentation-sensitive Sass dialect.
	StylesheetRelPath = "css/style.sass"

	// StaticDirName is the optional static asset directory in the source tree.
	StaticDirName = "static"

	// OutName is the fixed output base name passed to the toolchain.
	OutName = "package"

	// BootstrapFileName is the JS loader emitted by the toolchain.
	BootstrapFileName = "package.js"

	// RawModuleFileName is the wasm module emitted by the toolchain.
	RawModuleFileName = "package_bg.wasm"

	// SnippetsDirName is the optional snippet directory emitted by the
	// toolchain for JS required by the wasm module.
	SnippetsDirName = "snippets"

	// TargetDirName is the toolchain target directory created under the
	// workspace root, separating web builds from regular builds.
	TargetDirName = "web-target"
)

// ModuleFileName returns the version-qualified wasm filename placed in the
// destination. The entry document's loader markup and the artifact placer
// both derive the name from here, so the two can never disagree.
func ModuleFileName(version string) string {
	return "app-" + version + ".wasm"
}
