package fingerprint_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mlpot/internal/adapters/fingerprint"
	"go.trai.ch/mlpot/internal/core/domain"
)

func water() *domain.Snapshot {
	cell := domain.Mat3{{10, 0, 0}, {0, 10, 0}, {0, 0, 10}}
	pbc := [3]bool{true, true, true}
	return &domain.Snapshot{
		Numbers:   []int{8, 1, 1},
		Positions: []domain.Vec3{{0, 0, 0}, {0.757, 0.586, 0}, {-0.757, 0.586, 0}},
		Cell:      &cell,
		PBC:       &pbc,
		Arrays: map[string][]float64{
			"c_q": {1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
		},
	}
}

func TestHasher_EqualSnapshotsMatch(t *testing.T) {
	h := fingerprint.NewHasher()

	a := water()
	b := water()
	b.Index = 42

	fa := h.Fingerprint(a)
	fb := h.Fingerprint(b)

	assert.True(t, fa.Equal(fb))
	assert.Equal(t, fa, fb)
	assert.False(t, fa.IsZero())
	assert.Len(t, fa.String(), 16)
}

func TestHasher_Deterministic(t *testing.T) {
	h := fingerprint.NewHasher()
	s := water()

	first := h.Fingerprint(s)
	for range 10 {
		assert.Equal(t, first, h.Fingerprint(s))
	}
	assert.Equal(t, water(), s, "fingerprinting must not mutate the snapshot")
}

func TestHasher_AnyChangeMisses(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *domain.Snapshot)
	}{
		{"position by one ulp", func(s *domain.Snapshot) {
			s.Positions[1][0] = math.Nextafter(s.Positions[1][0], math.Inf(1))
		}},
		{"species", func(s *domain.Snapshot) { s.Numbers[0] = 16 }},
		{"atom order", func(s *domain.Snapshot) {
			s.Positions[1], s.Positions[2] = s.Positions[2], s.Positions[1]
		}},
		{"cell entry", func(s *domain.Snapshot) { s.Cell[2][2] = 11 }},
		{"no cell", func(s *domain.Snapshot) { s.Cell = nil }},
		{"pbc flag", func(s *domain.Snapshot) { s.PBC[1] = false }},
		{"no pbc", func(s *domain.Snapshot) { s.PBC = nil }},
		{"attribute value", func(s *domain.Snapshot) { s.Arrays["c_q"][5] = 0.5 }},
		{"attribute removed", func(s *domain.Snapshot) { delete(s.Arrays, "c_q") }},
		{"attribute renamed", func(s *domain.Snapshot) {
			s.Arrays["c_r"] = s.Arrays["c_q"]
			delete(s.Arrays, "c_q")
		}},
		{"attribute added", func(s *domain.Snapshot) { s.Arrays["charge"] = []float64{-0.8, 0.4, 0.4} }},
		{"negative zero", func(s *domain.Snapshot) { s.Positions[0][2] = math.Copysign(0, -1) }},
	}

	h := fingerprint.NewHasher()
	base := h.Fingerprint(water())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := water()
			tt.mutate(s)
			assert.False(t, base.Equal(h.Fingerprint(s)))
		})
	}
}

func TestEncode_LengthPrefixesSeparateSections(t *testing.T) {
	// Moving a value from one attribute to another must change the encoding
	// even though the concatenated values are the same.
	a := &domain.Snapshot{
		Numbers:   []int{1},
		Positions: []domain.Vec3{{0, 0, 0}},
		Arrays:    map[string][]float64{"a": {1, 2}, "b": {3}},
	}
	b := &domain.Snapshot{
		Numbers:   []int{1},
		Positions: []domain.Vec3{{0, 0, 0}},
		Arrays:    map[string][]float64{"a": {1}, "b": {2, 3}},
	}

	require.NotEqual(t, fingerprint.Encode(a), fingerprint.Encode(b))
}
