package ports

import "go.trai.ch/mlpot/internal/core/domain"

// Fingerprinter derives the comparison key of a snapshot.
type Fingerprinter interface {
	// Fingerprint must be a pure function of the snapshot's physically relevant fields.
	Fingerprint(s *domain.Snapshot) domain.Fingerprint
}
