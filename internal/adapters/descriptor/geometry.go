package descriptor

import (
	"math"

	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/zerr"
)

// displacer returns the displacement from atom i to atom j, applying the
// minimum-image convention along periodic axes.
type displacer struct {
	positions []domain.Vec3
	cell      domain.Mat3
	inverse   domain.Mat3
	periodic  [3]bool
	wrap      bool
}

func newDisplacer(s *domain.Snapshot) (*displacer, error) {
	d := &displacer{positions: s.Positions}
	if !s.Periodic() {
		return d, nil
	}
	inv, ok := invert(*s.Cell)
	if !ok {
		return nil, zerr.With(zerr.New("periodic cell is singular"), "index", s.Index)
	}
	d.cell = *s.Cell
	d.inverse = inv
	d.periodic = *s.PBC
	d.wrap = true
	return d, nil
}

func (d *displacer) between(i, j int) domain.Vec3 {
	delta := sub(d.positions[j], d.positions[i])
	if !d.wrap {
		return delta
	}
	// Fractional coordinates are row vectors: delta = frac . cell.
	frac := mulRow(delta, d.inverse)
	for k := range 3 {
		if d.periodic[k] {
			frac[k] -= math.Round(frac[k])
		}
	}
	return mulRow(frac, d.cell)
}

func sub(a, b domain.Vec3) domain.Vec3 {
	return domain.Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func norm(v domain.Vec3) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func scale(v domain.Vec3, f float64) domain.Vec3 {
	return domain.Vec3{v[0] * f, v[1] * f, v[2] * f}
}

func mulRow(v domain.Vec3, m domain.Mat3) domain.Vec3 {
	var out domain.Vec3
	for k := range 3 {
		out[k] = v[0]*m[0][k] + v[1]*m[1][k] + v[2]*m[2][k]
	}
	return out
}

func invert(m domain.Mat3) (domain.Mat3, bool) {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	if det == 0 || math.IsNaN(det) {
		return domain.Mat3{}, false
	}
	inv := domain.Mat3{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) / det,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) / det,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) / det,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) / det,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) / det,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) / det,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) / det,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) / det,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) / det,
		},
	}
	return inv, true
}
