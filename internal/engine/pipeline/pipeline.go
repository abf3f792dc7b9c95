// Package pipeline orchestrates one bundling run: compile the wasm package,
// stage the destination directory, copy assets, assemble index.html and
// place the versioned module.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.trai.ch/webbundle/internal/core/domain"
	"go.trai.ch/webbundle/internal/core/ports"
)

// Pipeline runs the bundling stages in order. Each stage reads what the
// previous stages produced; nothing runs concurrently since the destination
// directory is rebuilt from scratch on every run.
type Pipeline struct {
	tracker   ports.ChangeTracker
	toolchain ports.Toolchain
	styles    ports.StyleCompiler
	renderer  ports.Renderer
	files     ports.Workspace
	logger    ports.Logger
	tracer    ports.Tracer
}

// New creates a new Pipeline with the given dependencies.
func New(
	tracker ports.ChangeTracker,
	toolchain ports.Toolchain,
	styles ports.StyleCompiler,
	renderer ports.Renderer,
	files ports.Workspace,
	logger ports.Logger,
	tracer ports.Tracer,
) *Pipeline {
	return &Pipeline{
		tracker:   tracker,
		toolchain: toolchain,
		styles:    styles,
		renderer:  renderer,
		files:     files,
		logger:    logger,
		tracer:    tracer,
	}
}

// Run executes one full bundling pass for opts. On success the destination
// directory contains the rendered index.html, the version-qualified wasm
// module, the copied static assets and any toolchain JS snippets.
//
// The destination is cleared before it is repopulated, so a failed run never
// leaves a mix of old and new artifacts behind.
func (p *Pipeline) Run(ctx context.Context, opts domain.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	ctx, span := p.tracer.Start(ctx, "bundle")
	defer span.End()
	span.SetAttribute("src", opts.SrcDir)
	span.SetAttribute("version", opts.Version)
	span.SetAttribute("release", opts.Release)

	p.tracker.Declare(opts.WatchRoots())

	var module *domain.CompiledModule
	err := p.stage(ctx, "toolchain", func(ctx context.Context) error {
		p.logger.Info("compiling " + opts.SrcDir)
		var err error
		module, err = p.toolchain.Build(ctx, opts)
		return err
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	stages := []struct {
		name string
		run  func(context.Context) error
	}{
		{"stage-dist", func(ctx context.Context) error { return p.stageDist(ctx, opts) }},
		{"copy-assets", func(ctx context.Context) error { return p.copyAssets(ctx, opts, module) }},
		{"assemble-index", func(ctx context.Context) error { return p.assembleIndex(ctx, opts, module) }},
		{"place-module", func(ctx context.Context) error { return p.placeModule(ctx, opts, module) }},
	}
	for _, s := range stages {
		if err := p.stage(ctx, s.name, s.run); err != nil {
			span.RecordError(err)
			return err
		}
	}

	p.logger.Info("bundle written to " + opts.DistDir)
	return nil
}

// stage wraps one pipeline stage in a span.
func (p *Pipeline) stage(ctx context.Context, name string, run func(context.Context) error) error {
	ctx, span := p.tracer.Start(ctx, name)
	defer span.End()

	if err := run(ctx); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// stageDist clears the previous destination and recreates it empty.
func (p *Pipeline) stageDist(_ context.Context, opts domain.Options) error {
	return p.files.Stage(opts.DistDir)
}

// copyAssets copies the optional static asset directory and the optional
// toolchain snippet directory into the destination. Both are copied as
// children, so they land at dist/static and dist/snippets.
func (p *Pipeline) copyAssets(_ context.Context, opts domain.Options, module *domain.CompiledModule) error {
	copied, err := p.files.CopyTree(opts.StaticDir(), opts.DistDir)
	if err != nil {
		return errors.Join(domain.ErrAssetCopyFailed, err)
	}
	if !copied {
		p.logger.Info("no static assets found, skipping")
	}

	if _, err := p.files.CopyTree(module.SnippetsDir, opts.DistDir); err != nil {
		return errors.Join(domain.ErrSnippetCopyFailed, err)
	}
	return nil
}

// assembleIndex renders the entry template with the loader markup and the
// compiled stylesheet inlined, and writes the result into the destination.
func (p *Pipeline) assembleIndex(ctx context.Context, opts domain.Options, module *domain.CompiledModule) error {
	text, err := p.files.ReadFile(opts.TemplatePath())
	if err != nil {
		return errors.Join(domain.ErrTemplateReadFailed, err)
	}

	javascript, err := p.loaderMarkup(opts, module)
	if err != nil {
		return err
	}

	stylesheet, err := p.stylesheetMarkup(ctx, opts)
	if err != nil {
		return err
	}

	html, err := p.renderer.Render(text, domain.RenderContext{
		BaseURL:    opts.BaseURLOrDefault(),
		Javascript: javascript,
		Stylesheet: stylesheet,
	})
	if err != nil {
		return errors.Join(domain.ErrTemplateRenderFailed, err)
	}

	if err := p.files.WriteFile(filepath.Join(opts.DistDir, domain.IndexFileName), html); err != nil {
		return errors.Join(domain.ErrIndexWriteFailed, err)
	}
	return nil
}

// loaderMarkup builds the script fragment that loads and starts the wasm
// module. The bootstrap script is inlined and told to fetch the module under
// its version-qualified name.
func (p *Pipeline) loaderMarkup(opts domain.Options, module *domain.CompiledModule) (string, error) {
	bootstrap, err := p.files.ReadFile(module.BootstrapPath)
	if err != nil {
		return "", errors.Join(domain.ErrBootstrapReadFailed, err)
	}

	markup := fmt.Sprintf("<script type=\"module\">%s init('%s'); </script>",
		bootstrap, domain.ModuleFileName(opts.Version))
	return markup, nil
}

// stylesheetMarkup compiles the Sass source and wraps the resulting CSS in
// a style element for inlining.
func (p *Pipeline) stylesheetMarkup(ctx context.Context, opts domain.Options) (string, error) {
	source, err := p.files.ReadFile(opts.StylesheetPath())
	if err != nil {
		return "", errors.Join(domain.ErrStylesheetReadFailed, err)
	}

	css, err := p.styles.Compile(ctx, source, filepath.Dir(opts.StylesheetPath()))
	if err != nil {
		return "", errors.Join(domain.ErrStylesheetCompileFailed, err)
	}

	return "<style>" + css + "</style>", nil
}

// placeModule copies the compiled wasm into the destination under its
// version-qualified name, matching what the loader markup references.
func (p *Pipeline) placeModule(_ context.Context, opts domain.Options, module *domain.CompiledModule) error {
	dst := filepath.Join(opts.DistDir, domain.ModuleFileName(opts.Version))
	if err := p.files.CopyFile(module.ModulePath, dst); err != nil {
		return errors.Join(domain.ErrModuleCopyFailed, err)
	}
	return nil
}
