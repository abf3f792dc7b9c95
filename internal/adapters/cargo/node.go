package cargo

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/webbundle/internal/adapters/fs"
	"go.trai.ch/webbundle/internal/core/ports"
)

// NodeID is the unique identifier for the change tracker Graft node.
const NodeID graft.ID = "adapter.tracker"

func init() {
	graft.Register(graft.Node[ports.ChangeTracker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.ChangeTracker, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			// Cargo consumes directives from the build script's stdout.
			return NewTracker(os.Stdout, walker), nil
		},
	})
}
