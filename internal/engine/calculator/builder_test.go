package calculator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mlpot/internal/adapters/cache"
	"go.trai.ch/mlpot/internal/adapters/descriptor"
	"go.trai.ch/mlpot/internal/adapters/fingerprint"
	"go.trai.ch/mlpot/internal/adapters/model"
	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/mlpot/internal/core/ports"
	"go.trai.ch/mlpot/internal/engine/calculator"
)

func newBuilder() *calculator.Builder {
	return calculator.NewBuilder(
		descriptor.NewFactory(),
		model.NewLoader(),
		fingerprint.NewHasher(),
		func() ports.ResultCache { return cache.NewSlot() },
		nil, nil, nil,
	)
}

func TestBuilder_Build(t *testing.T) {
	cfg := &domain.Config{
		Settings: domain.DefaultSettings(),
		Descriptor: domain.DescriptorSpec{
			Kind: domain.DescriptorRadial, Species: []int{1, 8}, Cutoff: 4, Basis: 2, Width: 0.5,
		},
		Model: domain.ModelSpec{Intercept: 0.01, Pad: true},
	}

	b := newBuilder()
	first, err := b.Build(cfg)
	require.NoError(t, err)
	second, err := b.Build(cfg)
	require.NoError(t, err)

	e, err := first.PotentialEnergy(context.Background(), water())
	require.NoError(t, err)
	assert.InDelta(t, 0.01, e, 1e-12)

	// Each calculator owns its cache.
	_, ok := first.Cached()
	assert.True(t, ok)
	_, ok = second.Cached()
	assert.False(t, ok)
}

func TestBuilder_Errors(t *testing.T) {
	b := newBuilder()

	_, err := b.Build(&domain.Config{
		Settings:   domain.DefaultSettings(),
		Descriptor: domain.DescriptorSpec{Kind: "soap"},
	})
	require.ErrorIs(t, err, domain.ErrUnknownDescriptor)

	_, err = b.Build(&domain.Config{
		Settings: domain.DefaultSettings(),
		Descriptor: domain.DescriptorSpec{
			Kind: domain.DescriptorRadial, Species: []int{1}, Cutoff: 4, Basis: 2, Width: 0.5,
		},
	})
	require.ErrorIs(t, err, domain.ErrModelLoadFailed)
}
