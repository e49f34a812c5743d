package shell

import (
	"context"

	"github.com/Smattr/scrutineer/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.runner"

func init() {
	graft.Register(graft.Node[ports.Runner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Runner, error) {
			return NewRunner(), nil
		},
	})
}
