package descriptor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mlpot/internal/core/ports"
)

// NodeID is the unique identifier for the descriptor factory Graft node.
const NodeID graft.ID = "adapter.descriptor_factory"

func init() {
	graft.Register(graft.Node[ports.DescriptorFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DescriptorFactory, error) {
			return NewFactory(), nil
		},
	})
}
