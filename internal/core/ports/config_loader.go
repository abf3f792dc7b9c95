package ports

import "go.trai.ch/webbundle/internal/core/domain"

// ConfigLoader defines the interface for loading the bundler configuration
// from a project config file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the config file at path, or looks for webbundle.yaml in the
	// working directory when path is empty. A missing file is not an error:
	// found is false and the zero Options are returned.
	Load(path string) (opts domain.Options, found bool, err error)
}
