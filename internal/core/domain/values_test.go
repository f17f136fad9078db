package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mlpot/internal/core/domain"
)

func TestParseProperties(t *testing.T) {
	props, err := domain.ParseProperties([]string{"forces", " Energy ", "forces"})
	require.NoError(t, err)
	assert.Equal(t, []domain.Property{domain.PropertyForces, domain.PropertyEnergy}, props)

	props, err = domain.ParseProperties(nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.Property{domain.PropertyEnergy}, props)

	_, err = domain.ParseProperties([]string{"stress"})
	require.ErrorIs(t, err, domain.ErrPropertyNotImplemented)
	assert.Contains(t, err.Error(), "property 'stress' is not available")
}

func TestResults(t *testing.T) {
	e := 1.5
	r := domain.Results{Energy: &e, Forces: []domain.Vec3{{1, 2, 3}}}

	assert.True(t, r.HasAll(domain.KnownProperties))
	assert.Equal(t, domain.KnownProperties, r.Properties())

	energyOnly := r.Subset([]domain.Property{domain.PropertyEnergy})
	assert.True(t, energyOnly.Has(domain.PropertyEnergy))
	assert.False(t, energyOnly.Has(domain.PropertyForces))
	assert.False(t, energyOnly.HasAll(domain.KnownProperties))

	*energyOnly.Energy = 99
	assert.InDelta(t, 1.5, *r.Energy, 1e-15)

	v, ok := r.Value(domain.PropertyForces)
	require.True(t, ok)
	v.([]domain.Vec3)[0][0] = 99
	assert.InDelta(t, 1.0, r.Forces[0][0], 1e-15)

	_, ok = domain.Results{}.Value(domain.PropertyEnergy)
	assert.False(t, ok)
	assert.False(t, r.Has("stress"))
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Backend
	}{
		{"", domain.BackendPlain},
		{"plain", domain.BackendPlain},
		{"NumPy", domain.BackendPlain},
		{"gradient", domain.BackendGradient},
		{"torch", domain.BackendGradient},
	}
	for _, tt := range tests {
		got, err := domain.ParseBackend(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := domain.ParseBackend("jax")
	require.ErrorIs(t, err, domain.ErrUnknownBackend)
	assert.True(t, domain.BackendGradient.TracksGradients())
	assert.False(t, domain.BackendPlain.TracksGradients())
}

func TestSettings_Validate(t *testing.T) {
	require.NoError(t, domain.DefaultSettings().Validate())

	tests := []struct {
		name   string
		mutate func(s *domain.Settings)
	}{
		{"zero energy unit", func(s *domain.Settings) { s.EnergyUnitsToEV = 0 }},
		{"negative length unit", func(s *domain.Settings) { s.LengthUnitsToA = -1 }},
		{"NaN step", func(s *domain.Settings) { s.FiniteDifferenceStep = math.NaN() }},
		{"infinite step", func(s *domain.Settings) { s.FiniteDifferenceStep = math.Inf(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.DefaultSettings()
			tt.mutate(&s)
			require.ErrorIs(t, s.Validate(), domain.ErrInvalidSettings)
		})
	}
}

func TestSettings_ForceUnit(t *testing.T) {
	s := domain.DefaultSettings()
	s.EnergyUnitsToEV = 27.2
	s.LengthUnitsToA = 0.5
	assert.InDelta(t, 54.4, s.ForceUnit(), 1e-12)
}

func TestElements(t *testing.T) {
	z, err := domain.AtomicNumber("o")
	require.NoError(t, err)
	assert.Equal(t, 8, z)

	z, err = domain.AtomicNumber("Og")
	require.NoError(t, err)
	assert.Equal(t, 118, z)

	_, err = domain.AtomicNumber("Xx")
	require.ErrorIs(t, err, domain.ErrUnknownElement)

	assert.Equal(t, "Fe", domain.Symbol(26))
	assert.Equal(t, "X", domain.Symbol(500))
}

func TestFingerprint(t *testing.T) {
	a := domain.NewFingerprint(0xabc, []byte("key"))
	b := domain.NewFingerprint(0xabc, []byte("key"))
	c := domain.NewFingerprint(0xabc, []byte("other"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, "0000000000000abc", a.String())
	assert.True(t, domain.Fingerprint{}.IsZero())
	assert.False(t, a.IsZero())
}
