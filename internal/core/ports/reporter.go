package ports

import "go.trai.ch/mlpot/internal/core/domain"

// FrameResult pairs an evaluated frame with its outcome.
type FrameResult struct {
	Source  string
	Frame   int
	Atoms   int
	Cached  bool
	Results domain.Results
}

// Reporter writes evaluation results for a human or a machine.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	Report(results []FrameResult) error
}
