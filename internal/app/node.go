package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mlpot/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/mlpot/internal/adapters/frames"    //nolint:depguard // Wired in app layer
	"go.trai.ch/mlpot/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/mlpot/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/mlpot/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/mlpot/internal/core/ports"
	"go.trai.ch/mlpot/internal/engine/calculator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components the CLI needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			calculator.NodeID,
			frames.NodeID,
			watcher.NodeID,
			logger.NodeID,
			metrics.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[*calculator.Builder](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.FrameReader](ctx)
	if err != nil {
		return nil, err
	}

	fileWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	recorder, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, builder, reader, fileWatcher, log, recorder), nil
}
