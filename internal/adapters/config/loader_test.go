package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/webbundle/internal/adapters/config"
	"go.trai.ch/webbundle/internal/core/domain"
)

const sampleYAML = `src: frontend
dist: dist/ui
tmp: dist/tmp
baseUrl: /app/
version: 1.2.3
release: true
workspaceRoot: .
watchDirs:
  - shared
  - proto
`

func TestLoader_Load_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	opts, found, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, domain.Options{
		SrcDir:         "frontend",
		DistDir:        "dist/ui",
		TmpDir:         "dist/tmp",
		BaseURL:        "/app/",
		Version:        "1.2.3",
		Release:        true,
		WorkspaceRoot:  ".",
		ExtraWatchDirs: []string{"shared", "proto"},
	}, opts)
}

func TestLoader_Load_DefaultFileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("src: frontend\n"), 0o644))
	t.Chdir(dir)

	opts, found, err := config.NewLoader().Load("")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "frontend", opts.SrcDir)
}

func TestLoader_Load_MissingDefaultFileIsNotAnError(t *testing.T) {
	t.Chdir(t.TempDir())

	_, found, err := config.NewLoader().Load("")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLoader_Load_MissingExplicitFileFails(t *testing.T) {
	_, _, err := config.NewLoader().Load(filepath.Join(t.TempDir(), "gone.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestLoader_Load_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("src: [unclosed"), 0o644))

	_, _, err := config.NewLoader().Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}
