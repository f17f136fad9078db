package metrics

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mlpot/internal/core/ports"
)

// NodeID is the unique identifier for the metrics Graft node.
const NodeID graft.ID = "adapter.metrics"

func init() {
	graft.Register(graft.Node[ports.Metrics]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Metrics, error) {
			return NewPrometheus(), nil
		},
	})
}
