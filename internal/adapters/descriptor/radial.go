// Package descriptor implements the built-in structural descriptors.
package descriptor

import (
	"fmt"
	"math"
	"slices"

	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/mlpot/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Descriptor         = (*Radial)(nil)
	_ ports.GradientDescriptor = (*Radial)(nil)
)

// pairWeight scales the contribution of the pair (i, j).
type pairWeight func(i, j int) float64

// Radial expands every species pair's distances in Gaussians centred on an
// even grid in [0, cutoff), damped by a cosine cutoff function.
//
// Features are laid out pair-major: for species indices a <= b the block
// of pair (a, b) holds one value per Gaussian.
type Radial struct {
	species []int
	index   map[int]int
	cutoff  float64
	width   float64
	centers []float64
}

// NewRadial builds a radial descriptor from its configuration.
func NewRadial(spec domain.DescriptorSpec) (*Radial, error) {
	if err := checkSpec(spec); err != nil {
		return nil, err
	}

	r := &Radial{
		species: slices.Clone(spec.Species),
		index:   make(map[int]int, len(spec.Species)),
		cutoff:  spec.Cutoff,
		width:   spec.Width,
		centers: make([]float64, spec.Basis),
	}
	for i, z := range spec.Species {
		r.index[z] = i
	}
	for m := range r.centers {
		r.centers[m] = spec.Cutoff * float64(m) / float64(spec.Basis)
	}
	return r, nil
}

// Len returns the number of features.
func (r *Radial) Len() int {
	n := len(r.species)
	return n * (n + 1) / 2 * len(r.centers)
}

// Species returns the atomic numbers the descriptor resolves.
func (r *Radial) Species() []int {
	return slices.Clone(r.species)
}

// Compute returns the radial features of s.
func (r *Radial) Compute(s *domain.Snapshot) ([]float64, error) {
	features, _, err := r.evaluate(s, nil, false)
	return features, err
}

// ComputeWithJacobian returns the features of s and their derivatives with respect to every position.
func (r *Radial) ComputeWithJacobian(s *domain.Snapshot) ([]float64, [][]domain.Vec3, error) {
	return r.evaluate(s, nil, true)
}

func (r *Radial) evaluate(s *domain.Snapshot, weight pairWeight, withJacobian bool) ([]float64, [][]domain.Vec3, error) {
	species, err := r.speciesIndices(s)
	if err != nil {
		return nil, nil, err
	}
	disp, err := newDisplacer(s)
	if err != nil {
		return nil, nil, err
	}

	n := s.Len()
	features := make([]float64, r.Len())
	var jacobian [][]domain.Vec3
	if withJacobian {
		jacobian = make([][]domain.Vec3, len(features))
		for k := range jacobian {
			jacobian[k] = make([]domain.Vec3, n)
		}
	}

	invVar := 1 / (r.width * r.width)
	for i := range n {
		for j := i + 1; j < n; j++ {
			delta := disp.between(i, j)
			dist := norm(delta)
			if dist >= r.cutoff {
				continue
			}
			if dist == 0 {
				err := zerr.New(fmt.Sprintf("atoms %d and %d overlap", i, j))
				return nil, nil, zerr.With(err, "index", s.Index)
			}

			w := 1.0
			if weight != nil {
				w = weight(i, j)
			}
			fc, dfc := cosineCutoff(dist, r.cutoff)
			unit := scale(delta, 1/dist)
			base := r.pairIndex(species[i], species[j]) * len(r.centers)

			for m, mu := range r.centers {
				x := dist - mu
				g := math.Exp(-0.5 * x * x * invVar)
				features[base+m] += w * g * fc
				if withJacobian {
					grad := scale(unit, w*g*(dfc-fc*x*invVar))
					jacobian[base+m][j] = add(jacobian[base+m][j], grad)
					jacobian[base+m][i] = sub(jacobian[base+m][i], grad)
				}
			}
		}
	}
	return features, jacobian, nil
}

func (r *Radial) speciesIndices(s *domain.Snapshot) ([]int, error) {
	out := make([]int, len(s.Numbers))
	for i, z := range s.Numbers {
		idx, ok := r.index[z]
		if !ok {
			err := zerr.New(fmt.Sprintf("species %s (Z=%d) of atom %d is not covered by the descriptor", domain.Symbol(z), z, i))
			return nil, zerr.With(zerr.With(err, "index", s.Index), "atom", i)
		}
		out[i] = idx
	}
	return out, nil
}

// pairIndex maps an unordered species pair to its block.
func (r *Radial) pairIndex(a, b int) int {
	if a > b {
		a, b = b, a
	}
	n := len(r.species)
	return a*n - a*(a-1)/2 + (b - a)
}

// cosineCutoff returns fc(r) = (cos(pi r / rc) + 1) / 2 and its derivative.
func cosineCutoff(r, rc float64) (float64, float64) {
	arg := math.Pi * r / rc
	return 0.5 * (math.Cos(arg) + 1), -0.5 * math.Pi / rc * math.Sin(arg)
}

func add(a, b domain.Vec3) domain.Vec3 {
	return domain.Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func checkSpec(spec domain.DescriptorSpec) error {
	invalid := func(msg, key string, value any) error {
		return zerr.With(zerr.Wrap(domain.ErrConfigInvalid, msg), key, value)
	}
	if len(spec.Species) == 0 {
		return invalid("descriptor needs at least one species", "kind", spec.Kind)
	}
	seen := make(map[int]bool, len(spec.Species))
	for _, z := range spec.Species {
		if z <= 0 {
			return invalid("descriptor species must be positive atomic numbers", "species", z)
		}
		if seen[z] {
			return invalid("descriptor species must be unique", "species", z)
		}
		seen[z] = true
	}
	if !(spec.Cutoff > 0) || math.IsInf(spec.Cutoff, 0) {
		return invalid("descriptor cutoff must be a finite positive number", "cutoff", spec.Cutoff)
	}
	if spec.Basis < 1 {
		return invalid("descriptor basis must be at least 1", "basis", spec.Basis)
	}
	if !(spec.Width > 0) || math.IsInf(spec.Width, 0) {
		return invalid("descriptor width must be a finite positive number", "width", spec.Width)
	}
	return nil
}
