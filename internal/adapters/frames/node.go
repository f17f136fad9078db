package frames

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mlpot/internal/core/ports"
)

// NodeID is the unique identifier for the frame reader Graft node.
const NodeID graft.ID = "adapter.frame_reader"

func init() {
	graft.Register(graft.Node[ports.FrameReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FrameReader, error) {
			return NewReader(), nil
		},
	})
}
