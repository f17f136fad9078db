package domain

import "fmt"

// Fingerprint identifies the physically relevant content of a Snapshot.
//
// Two fingerprints are equal only when both the digest and the canonical
// encoding match, so a digest collision never makes distinct snapshots equal.
// Fingerprint is comparable with ==.
type Fingerprint struct {
	digest uint64
	key    string
}

// NewFingerprint builds a Fingerprint from a digest and the canonical encoding it was computed over.
func NewFingerprint(digest uint64, key []byte) Fingerprint {
	return Fingerprint{digest: digest, key: string(key)}
}

// Digest returns the 64-bit digest.
func (f Fingerprint) Digest() uint64 {
	return f.digest
}

// Equal reports whether f and other describe the same configuration.
func (f Fingerprint) Equal(other Fingerprint) bool {
	return f.digest == other.digest && f.key == other.key
}

// IsZero reports whether f is the zero Fingerprint.
func (f Fingerprint) IsZero() bool {
	return f.key == ""
}

// String returns the digest as 16 hex digits.
func (f Fingerprint) String() string {
	return fmt.Sprintf("%016x", f.digest)
}
