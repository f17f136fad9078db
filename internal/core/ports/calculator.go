package ports

import (
	"context"

	"go.trai.ch/mlpot/internal/core/domain"
)

// Calculator is the capability set a host simulation uses to query properties.
type Calculator interface {
	// Calculate returns the requested properties of the snapshot.
	Calculate(ctx context.Context, s *domain.Snapshot, props ...domain.Property) (domain.Results, error)
	// GetProperty returns a single property: float64 for energy, []domain.Vec3 for forces.
	GetProperty(ctx context.Context, p domain.Property, s *domain.Snapshot) (any, error)
}
