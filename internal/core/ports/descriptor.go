package ports

import "go.trai.ch/mlpot/internal/core/domain"

// Descriptor turns a snapshot into a feature vector.
//
//go:generate mockgen -source=descriptor.go -destination=mocks/mock_descriptor.go -package=mocks
type Descriptor interface {
	// Compute returns the features of the snapshot. It must be deterministic.
	Compute(s *domain.Snapshot) ([]float64, error)
}

// AttributeRequirer is implemented by descriptors that read per-atom auxiliary attributes.
type AttributeRequirer interface {
	// Name labels the descriptor in validation messages.
	Name() string
	// RequiredAttributes lists the attributes every snapshot must carry.
	RequiredAttributes() []domain.AttributeSpec
}

// GradientDescriptor is implemented by descriptors that can report their
// derivatives with respect to atomic positions.
type GradientDescriptor interface {
	Descriptor
	// ComputeWithJacobian returns the features and jacobian[k][i] = d features[k] / d position[i].
	ComputeWithJacobian(s *domain.Snapshot) ([]float64, [][]domain.Vec3, error)
}

// DescriptorFunc adapts a plain function to the Descriptor interface.
type DescriptorFunc func(s *domain.Snapshot) ([]float64, error)

// Compute calls f(s).
func (f DescriptorFunc) Compute(s *domain.Snapshot) ([]float64, error) {
	return f(s)
}

// DescriptorFactory builds a descriptor from its configuration.
type DescriptorFactory interface {
	New(spec domain.DescriptorSpec) (Descriptor, error)
}
