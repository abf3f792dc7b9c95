package sass

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/webbundle/internal/core/ports"
)

// NodeID is the unique identifier for the style compiler Graft node.
const NodeID graft.ID = "adapter.styles"

func init() {
	graft.Register(graft.Node[ports.StyleCompiler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StyleCompiler, error) {
			return NewCompiler(), nil
		},
	})
}
