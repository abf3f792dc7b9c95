// Package app implements the application layer for webbundle.
package app

import (
	"context"
	"errors"
	"os"

	"go.trai.ch/webbundle/internal/core/domain"
	"go.trai.ch/webbundle/internal/core/ports"
	"go.trai.ch/webbundle/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader   ports.ConfigLoader
	pipeline *pipeline.Pipeline
	logger   ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, p *pipeline.Pipeline, log ports.Logger) *App {
	return &App{
		loader:   loader,
		pipeline: p,
		logger:   log,
	}
}

// BundleOptions configuration for the Bundle method.
type BundleOptions struct {
	// ConfigPath is an explicit config file location. Empty means "look for
	// webbundle.yaml in the working directory".
	ConfigPath string

	// Overrides are the options given on the command line. They win over
	// the config file field by field.
	Overrides domain.Options
}

// Bundle loads the configuration, merges the command line overrides on top
// and executes one bundling run. When no temporary directory is configured
// a throwaway one is created and removed afterwards; an unset workspace
// root falls back to the working directory.
func (a *App) Bundle(ctx context.Context, opts BundleOptions) error {
	base, found, err := a.loader.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if found {
		a.logger.Info("loaded configuration file")
	}

	merged := merge(base, opts.Overrides)

	if merged.WorkspaceRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return zerr.Wrap(err, "failed to resolve the working directory")
		}
		merged.WorkspaceRoot = wd
	}

	if merged.TmpDir == "" {
		tmp, err := os.MkdirTemp("", "webbundle-*")
		if err != nil {
			return zerr.Wrap(err, "failed to create a temporary directory")
		}
		defer func() { _ = os.RemoveAll(tmp) }()
		merged.TmpDir = tmp
	}

	if err := a.pipeline.Run(ctx, merged); err != nil {
		return errors.Join(domain.ErrBundleFailed, err)
	}
	return nil
}

// merge overlays the command line options on top of the config file options.
// A zero override field keeps the config value; watch directories from both
// sources are combined.
func merge(base, override domain.Options) domain.Options {
	merged := base

	if override.SrcDir != "" {
		merged.SrcDir = override.SrcDir
	}
	if override.DistDir != "" {
		merged.DistDir = override.DistDir
	}
	if override.TmpDir != "" {
		merged.TmpDir = override.TmpDir
	}
	if override.BaseURL != "" {
		merged.BaseURL = override.BaseURL
	}
	if override.Version != "" {
		merged.Version = override.Version
	}
	if override.WorkspaceRoot != "" {
		merged.WorkspaceRoot = override.WorkspaceRoot
	}
	if override.Release {
		merged.Release = true
	}
	merged.ExtraWatchDirs = append(merged.ExtraWatchDirs, override.ExtraWatchDirs...)

	return merged
}
