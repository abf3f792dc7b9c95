package ports

// Workspace performs the filesystem operations of the bundle pipeline.
type Workspace interface {
	// Stage removes dir if it exists and recreates it empty, guaranteeing a
	// clean slate for the population stages.
	Stage(dir string) error

	// CopyTree recursively copies the directory src into dstDir, so that
	// dstDir ends up containing a child named after src's base name.
	// It returns false without error when src does not exist.
	CopyTree(src, dstDir string) (bool, error)

	// CopyFile copies a single file to dst, overwriting it.
	CopyFile(src, dst string) error

	// ReadFile reads a whole file as text.
	ReadFile(path string) (string, error)

	// WriteFile writes text to path, truncating any existing file.
	WriteFile(path, text string) error
}
