package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mlpot/internal/adapters/cache"
	"go.trai.ch/mlpot/internal/core/domain"
)

func energy(v float64) domain.Results {
	return domain.Results{Energy: &v}
}

func TestSlot_EmptyMisses(t *testing.T) {
	s := cache.NewSlot()

	_, ok := s.Lookup(domain.NewFingerprint(1, []byte("a")))
	assert.False(t, ok)

	_, ok = s.Fingerprint()
	assert.False(t, ok)
}

func TestSlot_StoreAndLookup(t *testing.T) {
	s := cache.NewSlot()
	fp := domain.NewFingerprint(1, []byte("a"))

	s.Store(fp, energy(0.01))

	got, ok := s.Lookup(fp)
	require.True(t, ok)
	require.NotNil(t, got.Energy)
	assert.InDelta(t, 0.01, *got.Energy, 1e-12)

	tag, ok := s.Fingerprint()
	require.True(t, ok)
	assert.True(t, tag.Equal(fp))
}

func TestSlot_DigestCollisionMisses(t *testing.T) {
	s := cache.NewSlot()
	s.Store(domain.NewFingerprint(7, []byte("a")), energy(1))

	_, ok := s.Lookup(domain.NewFingerprint(7, []byte("b")))
	assert.False(t, ok)
}

func TestSlot_StoreReplaces(t *testing.T) {
	s := cache.NewSlot()
	first := domain.NewFingerprint(1, []byte("a"))
	second := domain.NewFingerprint(2, []byte("b"))

	s.Store(first, energy(1))
	s.Store(second, energy(2))

	_, ok := s.Lookup(first)
	assert.False(t, ok, "only one entry is retained")

	got, ok := s.Lookup(second)
	require.True(t, ok)
	assert.InDelta(t, 2.0, *got.Energy, 1e-12)
}

func TestSlot_Clear(t *testing.T) {
	s := cache.NewSlot()
	fp := domain.NewFingerprint(1, []byte("a"))
	s.Store(fp, energy(1))

	s.Clear()

	_, ok := s.Lookup(fp)
	assert.False(t, ok)
	_, ok = s.Fingerprint()
	assert.False(t, ok)
}

func TestSlot_ReturnsCopies(t *testing.T) {
	s := cache.NewSlot()
	fp := domain.NewFingerprint(1, []byte("a"))
	e := 1.0
	stored := domain.Results{Energy: &e, Forces: []domain.Vec3{{1, 2, 3}}}
	s.Store(fp, stored)

	// Mutating the caller's value after Store must not reach the slot.
	stored.Forces[0][0] = 99
	e = 99

	got, ok := s.Lookup(fp)
	require.True(t, ok)
	assert.InDelta(t, 1.0, *got.Energy, 1e-12)
	assert.Equal(t, domain.Vec3{1, 2, 3}, got.Forces[0])

	got.Forces[0][1] = 99
	again, _ := s.Lookup(fp)
	assert.Equal(t, domain.Vec3{1, 2, 3}, again.Forces[0])
}

func TestSlot_ConcurrentAccess(t *testing.T) {
	s := cache.NewSlot()
	fp := domain.NewFingerprint(1, []byte("a"))

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Go(func() {
			for j := range 100 {
				if (i+j)%3 == 0 {
					s.Clear()
				}
				s.Store(fp, energy(float64(j)))
				_, _ = s.Lookup(fp)
			}
		})
	}
	wg.Wait()

	_, ok := s.Fingerprint()
	assert.True(t, ok)
}
