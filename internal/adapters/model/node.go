package model

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mlpot/internal/core/ports"
)

// NodeID is the unique identifier for the model loader Graft node.
const NodeID graft.ID = "adapter.model_loader"

func init() {
	graft.Register(graft.Node[ports.ModelLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModelLoader, error) {
			return NewLoader(), nil
		},
	})
}
