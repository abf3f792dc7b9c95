package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/webbundle/internal/core/domain"
	"go.trai.ch/webbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

const dirMode = 0o755

// Workspace implements ports.Workspace on the local filesystem.
type Workspace struct{}

// NewWorkspace creates a new Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

var _ ports.Workspace = (*Workspace)(nil)

// Stage removes dir if it exists and recreates it empty. The two failure
// modes carry distinct sentinels so callers can report which half went wrong.
func (w *Workspace) Stage(dir string) error {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		if err := os.RemoveAll(dir); err != nil {
			return errors.Join(domain.ErrDistClearFailed, zerr.With(zerr.Wrap(err, "failed to remove directory"), "path", dir))
		}
	}
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return errors.Join(domain.ErrDistCreateFailed, zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir))
	}
	return nil
}

// CopyTree copies the directory src into dstDir, preserving the source
// directory itself as a child of dstDir. A missing src is not an error.
func (w *Workspace) CopyTree(src, dstDir string) (bool, error) {
	info, err := os.Stat(src)
	if errors.Is(err, iofs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat source"), "path", src)
	}
	if !info.IsDir() {
		return false, zerr.With(zerr.New("source is not a directory"), "path", src)
	}

	dst := filepath.Join(dstDir, filepath.Base(src))

	err = filepath.WalkDir(src, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, dirMode)
		}
		return copyFile(path, target)
	})
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to copy directory"), "src", src)
	}
	return true, nil
}

// CopyFile copies a single file to dst, overwriting it.
func (w *Workspace) CopyFile(src, dst string) error {
	if err := copyFile(src, dst); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, "failed to copy file"), "src", src), "dst", dst)
	}
	return nil
}

// ReadFile reads a whole file as text.
func (w *Workspace) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	return string(data), nil
}

// WriteFile writes text to path, truncating any existing file.
func (w *Workspace) WriteFile(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", path)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
