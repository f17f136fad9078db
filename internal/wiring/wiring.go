// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mlpot/internal/adapters/config"
	_ "go.trai.ch/mlpot/internal/adapters/descriptor"
	_ "go.trai.ch/mlpot/internal/adapters/fingerprint"
	_ "go.trai.ch/mlpot/internal/adapters/frames"
	_ "go.trai.ch/mlpot/internal/adapters/logger"
	_ "go.trai.ch/mlpot/internal/adapters/metrics"
	_ "go.trai.ch/mlpot/internal/adapters/model"
	_ "go.trai.ch/mlpot/internal/adapters/telemetry"
	_ "go.trai.ch/mlpot/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/mlpot/internal/app"
	_ "go.trai.ch/mlpot/internal/engine/calculator"
)
