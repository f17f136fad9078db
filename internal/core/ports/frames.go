package ports

import "go.trai.ch/mlpot/internal/core/domain"

// FrameReader reads atomic configurations from structure files.
//
//go:generate mockgen -source=frames.go -destination=mocks/mock_frames.go -package=mocks
type FrameReader interface {
	// ReadFrames returns every frame in the file, with Index set to its position.
	ReadFrames(path string) ([]*domain.Snapshot, error)
}
