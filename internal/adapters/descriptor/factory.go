package descriptor

import (
	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/mlpot/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DescriptorFactory = (*Factory)(nil)

// Factory builds the built-in descriptors by kind.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// New builds the descriptor named by spec.Kind.
func (f *Factory) New(spec domain.DescriptorSpec) (ports.Descriptor, error) {
	switch spec.Kind {
	case domain.DescriptorRadial:
		r, err := NewRadial(spec)
		if err != nil {
			return nil, err
		}
		return r, nil
	case domain.DescriptorEllipsoid:
		e, err := NewEllipsoid(spec)
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownDescriptor, "expected radial or ellipsoid"), "kind", spec.Kind)
	}
}
