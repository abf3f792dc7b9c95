// Package config provides the configuration loader for webbundle.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/webbundle/internal/core/domain"
	"go.trai.ch/webbundle/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the default configuration file looked up in the working
// directory when no explicit path is given.
const FileName = "webbundle.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Load reads the config file at path, or webbundle.yaml in the working
// directory when path is empty. A missing default file is not an error; an
// explicitly named file must exist.
func (l *Loader) Load(path string) (domain.Options, bool, error) {
	explicit := path != ""
	if !explicit {
		path = FileName
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return domain.Options{}, false, nil
	}
	if err != nil {
		return domain.Options{}, false, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	var file Bundlefile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Options{}, false, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	return domain.Options{
		SrcDir:         file.Src,
		DistDir:        file.Dist,
		TmpDir:         file.Tmp,
		BaseURL:        file.BaseURL,
		Version:        file.Version,
		Release:        file.Release,
		WorkspaceRoot:  file.WorkspaceRoot,
		ExtraWatchDirs: file.WatchDirs,
	}, true, nil
}
