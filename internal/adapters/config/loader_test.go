package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mlpot/internal/adapters/config"
	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/mlpot/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoader(log), log
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `
backend: torch
enable_forces: true
cache_results: false
energy_units_to_eV: 27.2
length_units_to_A: 0.529
finite_difference_step: 1.0e-4
descriptor:
  kind: ellipsoid
  species: [H, O]
  cutoff: 4.0
  basis: 6
  width: 0.3
model:
  path: weights/model.yaml
  pad: true
logging:
  json: true
  verbose: true
`)
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.BackendGradient, cfg.Settings.Backend)
	assert.True(t, cfg.Settings.EnableForces)
	assert.False(t, cfg.Settings.CacheResults)
	assert.InDelta(t, 27.2, cfg.Settings.EnergyUnitsToEV, 1e-12)
	assert.InDelta(t, 0.529, cfg.Settings.LengthUnitsToA, 1e-12)
	assert.InDelta(t, 1e-4, cfg.Settings.FiniteDifferenceStep, 1e-18)

	assert.Equal(t, domain.DescriptorSpec{
		Kind: domain.DescriptorEllipsoid, Species: []int{1, 8}, Cutoff: 4, Basis: 6, Width: 0.3,
	}, cfg.Descriptor)

	assert.Equal(t, filepath.Join(filepath.Dir(path), "weights", "model.yaml"), cfg.Model.Path)
	assert.True(t, cfg.Model.Pad)
	assert.Equal(t, domain.LoggingSpec{JSON: true, Verbose: true}, cfg.Logging)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
descriptor:
  kind: radial
  species: [C]
model:
  coef: [1.0, 2.0]
  intercept: -0.5
`)
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSettings(), cfg.Settings)
	assert.InDelta(t, config.DefaultCutoff, cfg.Descriptor.Cutoff, 1e-12)
	assert.Equal(t, config.DefaultBasis, cfg.Descriptor.Basis)
	assert.InDelta(t, config.DefaultWidth, cfg.Descriptor.Width, 1e-12)
	assert.Equal(t, []float64{1, 2}, cfg.Model.Coef)
	assert.InDelta(t, -0.5, cfg.Model.Intercept, 1e-12)
	assert.Empty(t, cfg.Model.Path)
}

func TestLoad_GradientWithoutForcesWarns(t *testing.T) {
	path := writeConfig(t, `
backend: gradient
descriptor:
  kind: radial
  species: [H]
`)
	loader, log := newLoader(t)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	_, err := loader.Load(path)
	require.NoError(t, err)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		want        error
		errContains string
	}{
		{
			name:    "malformed yaml",
			content: "descriptor: [",
			want:    domain.ErrConfigParseFailed,
		},
		{
			name:        "missing descriptor kind",
			content:     "descriptor:\n  species: [H]\n",
			want:        domain.ErrConfigInvalid,
			errContains: "descriptor.kind: failed 'required'",
		},
		{
			name:        "unknown descriptor kind",
			content:     "descriptor:\n  kind: soap\n  species: [H]\n",
			want:        domain.ErrConfigInvalid,
			errContains: "descriptor.kind: failed 'oneof=radial ellipsoid'",
		},
		{
			name:        "duplicate species",
			content:     "descriptor:\n  kind: radial\n  species: [H, H]\n",
			want:        domain.ErrConfigInvalid,
			errContains: "descriptor.species: failed 'unique'",
		},
		{
			name:    "unknown element",
			content: "descriptor:\n  kind: radial\n  species: [Hq]\n",
			want:    domain.ErrUnknownElement,
		},
		{
			name:        "unknown backend",
			content:     "backend: jax\ndescriptor:\n  kind: radial\n  species: [H]\n",
			want:        domain.ErrConfigInvalid,
			errContains: "backend: failed 'oneof",
		},
		{
			name:        "non-positive unit",
			content:     "length_units_to_A: 0\ndescriptor:\n  kind: radial\n  species: [H]\n",
			want:        domain.ErrConfigInvalid,
			errContains: "length_units_to_A: failed 'gt=0'",
		},
		{
			name:    "negative cutoff",
			content: "descriptor:\n  kind: radial\n  species: [H]\n  cutoff: -1\n",
			want:    domain.ErrConfigInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)
			_, err := loader.Load(writeConfig(t, tt.content))
			require.ErrorIs(t, err, tt.want)
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}
