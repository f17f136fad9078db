package descriptor

import (
	"fmt"
	"math"

	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/mlpot/internal/core/ports"
	"go.trai.ch/zerr"
)

// OrientationAttribute holds one unit quaternion (w, x, y, z) per particle.
const OrientationAttribute = "c_q"

var (
	_ ports.GradientDescriptor = (*Ellipsoid)(nil)
	_ ports.AttributeRequirer  = (*Ellipsoid)(nil)
)

// Ellipsoid describes anisotropic particles. Its features are the radial
// block followed by the same block weighted by the squared orientation
// overlap (q_i . q_j)^2 of every pair.
type Ellipsoid struct {
	radial *Radial
}

// NewEllipsoid builds an ellipsoid descriptor from its configuration.
func NewEllipsoid(spec domain.DescriptorSpec) (*Ellipsoid, error) {
	radial, err := NewRadial(spec)
	if err != nil {
		return nil, err
	}
	return &Ellipsoid{radial: radial}, nil
}

// Name labels the descriptor in validation messages.
func (e *Ellipsoid) Name() string {
	return "Ellipsoid descriptor"
}

// RequiredAttributes lists the orientation quaternion.
func (e *Ellipsoid) RequiredAttributes() []domain.AttributeSpec {
	return []domain.AttributeSpec{{Name: OrientationAttribute, Width: 4}}
}

// Len returns the number of features.
func (e *Ellipsoid) Len() int {
	return 2 * e.radial.Len()
}

// Compute returns the isotropic and orientation-weighted features of s.
func (e *Ellipsoid) Compute(s *domain.Snapshot) ([]float64, error) {
	features, _, err := e.evaluate(s, false)
	return features, err
}

// ComputeWithJacobian returns the features of s and their position derivatives.
// Orientations are held fixed.
func (e *Ellipsoid) ComputeWithJacobian(s *domain.Snapshot) ([]float64, [][]domain.Vec3, error) {
	return e.evaluate(s, true)
}

func (e *Ellipsoid) evaluate(s *domain.Snapshot, withJacobian bool) ([]float64, [][]domain.Vec3, error) {
	if err := s.RequireAttributes(e.Name(), e.RequiredAttributes()); err != nil {
		return nil, nil, err
	}
	quats, err := orientations(s)
	if err != nil {
		return nil, nil, err
	}

	iso, isoJac, err := e.radial.evaluate(s, nil, withJacobian)
	if err != nil {
		return nil, nil, err
	}
	overlap := func(i, j int) float64 {
		dot := quats[i][0]*quats[j][0] + quats[i][1]*quats[j][1] + quats[i][2]*quats[j][2] + quats[i][3]*quats[j][3]
		return dot * dot
	}
	aniso, anisoJac, err := e.radial.evaluate(s, overlap, withJacobian)
	if err != nil {
		return nil, nil, err
	}
	return append(iso, aniso...), append(isoJac, anisoJac...), nil
}

// orientations returns the normalized quaternion of every particle.
func orientations(s *domain.Snapshot) ([][4]float64, error) {
	raw, _ := s.Attribute(OrientationAttribute)
	out := make([][4]float64, s.Len())
	for i := range out {
		q := [4]float64{raw[4*i], raw[4*i+1], raw[4*i+2], raw[4*i+3]}
		length := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
		if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
			err := zerr.New(fmt.Sprintf("atom %d has a degenerate orientation quaternion", i))
			return nil, zerr.With(zerr.With(err, "index", s.Index), "atom", i)
		}
		for k := range q {
			out[i][k] = q[k] / length
		}
	}
	return out, nil
}
