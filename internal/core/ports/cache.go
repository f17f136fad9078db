package ports

import "go.trai.ch/mlpot/internal/core/domain"

// ResultCache stores the results of the most recent evaluation.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ResultCache interface {
	// Lookup returns the stored results only if they were stored under fp.
	Lookup(fp domain.Fingerprint) (domain.Results, bool)
	// Store replaces whatever was stored before.
	Store(fp domain.Fingerprint, results domain.Results)
	// Clear removes the stored entry, if any.
	Clear()
	// Fingerprint returns the tag of the stored entry.
	Fingerprint() (domain.Fingerprint, bool)
}
