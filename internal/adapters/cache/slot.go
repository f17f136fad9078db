// Package cache implements the single-slot result cache.
package cache

import (
	"sync"

	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/mlpot/internal/core/ports"
)

var _ ports.ResultCache = (*Slot)(nil)

// Slot holds the results of at most one configuration.
type Slot struct {
	mu      sync.RWMutex
	fp      domain.Fingerprint
	results domain.Results
	full    bool
}

// NewSlot creates an empty Slot.
func NewSlot() *Slot {
	return &Slot{}
}

// Lookup returns a copy of the stored results if they were stored under fp.
func (s *Slot) Lookup(fp domain.Fingerprint) (domain.Results, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.full || !s.fp.Equal(fp) {
		return domain.Results{}, false
	}
	return s.results.Clone(), true
}

// Store replaces the slot content.
func (s *Slot) Store(fp domain.Fingerprint, results domain.Results) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fp = fp
	s.results = results.Clone()
	s.full = true
}

// Clear empties the slot.
func (s *Slot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fp = domain.Fingerprint{}
	s.results = domain.Results{}
	s.full = false
}

// Fingerprint returns the tag of the stored entry.
func (s *Slot) Fingerprint() (domain.Fingerprint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.fp, s.full
}
