package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/webbundle/internal/adapters/cargo"
	"go.trai.ch/webbundle/internal/adapters/fs"
	"go.trai.ch/webbundle/internal/adapters/telemetry"
	"go.trai.ch/webbundle/internal/adapters/template"
	"go.trai.ch/webbundle/internal/app"
	"go.trai.ch/webbundle/internal/core/domain"
	"go.trai.ch/webbundle/internal/core/ports/mocks"
	"go.trai.ch/webbundle/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		base     domain.Options
		override domain.Options
		want     domain.Options
	}{
		{
			name:     "override wins per field",
			base:     domain.Options{SrcDir: "config-src", Version: "0.1.0"},
			override: domain.Options{Version: "1.0.0"},
			want:     domain.Options{SrcDir: "config-src", Version: "1.0.0"},
		},
		{
			name:     "zero override keeps config",
			base:     domain.Options{DistDir: "dist", BaseURL: "/app/"},
			override: domain.Options{},
			want:     domain.Options{DistDir: "dist", BaseURL: "/app/"},
		},
		{
			name:     "release flag cannot be unset by override",
			base:     domain.Options{Release: true},
			override: domain.Options{},
			want:     domain.Options{Release: true},
		},
		{
			name:     "watch dirs are combined",
			base:     domain.Options{ExtraWatchDirs: []string{"a"}},
			override: domain.Options{ExtraWatchDirs: []string{"b"}},
			want:     domain.Options{ExtraWatchDirs: []string{"a", "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, app.Merge(tt.base, tt.override))
		})
	}
}

// fixture wires an App against a source tree on disk, with the toolchain,
// style compiler and config loader mocked.
type fixture struct {
	app       *app.App
	loader    *mocks.MockConfigLoader
	toolchain *mocks.MockToolchain
	overrides domain.Options
	buildOpts *domain.Options
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	root := t.TempDir()
	srcDir := filepath.Join(root, "web")
	require.NoError(t, os.MkdirAll(filepath.Join(srcDir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "index.html"),
		[]byte("{{ .base_url }} {{ .stylesheet }} {{ .javascript }}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "css", "style.sass"),
		[]byte("body\n  margin: 0\n"), 0o644))

	ctrl := gomock.NewController(t)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	styles := mocks.NewMockStyleCompiler(ctrl)
	styles.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("body{margin:0}", nil).AnyTimes()

	f := &fixture{
		loader:    mocks.NewMockConfigLoader(ctrl),
		toolchain: mocks.NewMockToolchain(ctrl),
		buildOpts: &domain.Options{},
		overrides: domain.Options{
			SrcDir:        srcDir,
			DistDir:       filepath.Join(root, "dist"),
			Version:       "1.2.3",
			WorkspaceRoot: root,
		},
	}

	f.toolchain.EXPECT().Build(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, opts domain.Options) (*domain.CompiledModule, error) {
			*f.buildOpts = opts
			require.NoError(t, os.MkdirAll(opts.TmpDir, 0o755))
			require.NoError(t, os.WriteFile(filepath.Join(opts.TmpDir, domain.BootstrapFileName), []byte("init"), 0o644))
			require.NoError(t, os.WriteFile(filepath.Join(opts.TmpDir, domain.RawModuleFileName), []byte("wasm"), 0o644))
			return domain.CompiledModuleIn(opts.TmpDir), nil
		},
	).AnyTimes()

	p := pipeline.New(
		cargo.NewTracker(&bytes.Buffer{}, fs.NewWalker()),
		f.toolchain,
		styles,
		template.NewRenderer(),
		fs.NewWorkspace(),
		logger,
		telemetry.NewTracer("test"),
	)
	f.app = app.New(f.loader, p, logger)

	return f
}

func TestApp_Bundle_NoConfigFile(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(domain.Options{}, false, nil)

	err := f.app.Bundle(t.Context(), app.BundleOptions{Overrides: f.overrides})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(f.overrides.DistDir, "index.html"))
	assert.FileExists(t, filepath.Join(f.overrides.DistDir, "app-1.2.3.wasm"))
}

func TestApp_Bundle_ConfigProvidesDefaults(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("webbundle.yaml").Return(domain.Options{
		BaseURL: "/app/",
		Release: true,
	}, true, nil)

	err := f.app.Bundle(t.Context(), app.BundleOptions{
		ConfigPath: "webbundle.yaml",
		Overrides:  f.overrides,
	})
	require.NoError(t, err)

	assert.Equal(t, "/app/", f.buildOpts.BaseURL)
	assert.True(t, f.buildOpts.Release)
}

func TestApp_Bundle_OverridesWinOverConfig(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(domain.Options{
		Version: "0.0.1",
		BaseURL: "/old/",
	}, true, nil)

	f.overrides.BaseURL = "/new/"
	err := f.app.Bundle(t.Context(), app.BundleOptions{Overrides: f.overrides})
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", f.buildOpts.Version)
	assert.Equal(t, "/new/", f.buildOpts.BaseURL)
}

func TestApp_Bundle_CreatesAndRemovesTempDir(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(domain.Options{}, false, nil)

	err := f.app.Bundle(t.Context(), app.BundleOptions{Overrides: f.overrides})
	require.NoError(t, err)

	require.NotEmpty(t, f.buildOpts.TmpDir)
	assert.NoDirExists(t, f.buildOpts.TmpDir, "throwaway temporary directory must be cleaned up")
}

func TestApp_Bundle_KeepsExplicitTempDir(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(domain.Options{}, false, nil)

	f.overrides.TmpDir = filepath.Join(t.TempDir(), "scratch")
	err := f.app.Bundle(t.Context(), app.BundleOptions{Overrides: f.overrides})
	require.NoError(t, err)

	assert.Equal(t, f.overrides.TmpDir, f.buildOpts.TmpDir)
	assert.DirExists(t, f.overrides.TmpDir)
}

func TestApp_Bundle_DefaultsWorkspaceRoot(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(domain.Options{}, false, nil)

	f.overrides.WorkspaceRoot = ""
	err := f.app.Bundle(t.Context(), app.BundleOptions{Overrides: f.overrides})
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, f.buildOpts.WorkspaceRoot)
}

func TestApp_Bundle_ConfigLoadFailure(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(domain.Options{}, false, domain.ErrConfigParseFailed)

	err := f.app.Bundle(t.Context(), app.BundleOptions{Overrides: f.overrides})
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestApp_Bundle_PipelineFailureIsWrapped(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(domain.Options{}, false, nil)

	f.overrides.Version = ""
	err := f.app.Bundle(t.Context(), app.BundleOptions{Overrides: f.overrides})
	require.ErrorIs(t, err, domain.ErrBundleFailed)
	require.ErrorIs(t, err, domain.ErrVersionRequired)
}
