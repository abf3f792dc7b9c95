package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/webbundle/internal/adapters/cargo"
	"go.trai.ch/webbundle/internal/adapters/fs"
	"go.trai.ch/webbundle/internal/adapters/logger"
	"go.trai.ch/webbundle/internal/adapters/sass"
	"go.trai.ch/webbundle/internal/adapters/telemetry"
	"go.trai.ch/webbundle/internal/adapters/template"
	"go.trai.ch/webbundle/internal/adapters/wasmpack"
	"go.trai.ch/webbundle/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cargo.NodeID,
			wasmpack.NodeID,
			sass.NodeID,
			template.NodeID,
			fs.WorkspaceNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			tracker, err := graft.Dep[ports.ChangeTracker](ctx)
			if err != nil {
				return nil, err
			}
			toolchain, err := graft.Dep[ports.Toolchain](ctx)
			if err != nil {
				return nil, err
			}
			styles, err := graft.Dep[ports.StyleCompiler](ctx)
			if err != nil {
				return nil, err
			}
			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}
			files, err := graft.Dep[ports.Workspace](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(tracker, toolchain, styles, renderer, files, log, tracer), nil
		},
	})
}
