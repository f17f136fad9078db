package calculator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mlpot/internal/adapters/cache"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mlpot/internal/adapters/descriptor"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mlpot/internal/adapters/fingerprint" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mlpot/internal/adapters/logger"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mlpot/internal/adapters/metrics"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mlpot/internal/adapters/model"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mlpot/internal/adapters/telemetry"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mlpot/internal/core/ports"
)

// NodeID is the unique identifier for the calculator builder Graft node.
const NodeID graft.ID = "engine.calculator_builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			descriptor.NodeID,
			model.NodeID,
			fingerprint.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			descriptors, err := graft.Dep[ports.DescriptorFactory](ctx)
			if err != nil {
				return nil, err
			}

			models, err := graft.Dep[ports.ModelLoader](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Fingerprinter](ctx)
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

			recorder, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}

			newCache := func() ports.ResultCache { return cache.NewSlot() }
			return NewBuilder(descriptors, models, hasher, newCache, log, tracer, recorder), nil
		},
	})
}
