// Package fingerprint derives exact-match cache keys for atomic configurations.
package fingerprint

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/mlpot/internal/core/ports"
)

var _ ports.Fingerprinter = (*Hasher)(nil)

// Hasher fingerprints snapshots with xxhash over a canonical byte encoding.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint encodes every physically relevant field of s and digests the result.
// The frame index is not part of the encoding.
func (h *Hasher) Fingerprint(s *domain.Snapshot) domain.Fingerprint {
	key := Encode(s)
	return domain.NewFingerprint(xxhash.Sum64(key), key)
}

// Encode returns the canonical encoding of s. Every variable-length section is
// length-prefixed so distinct snapshots never share an encoding.
func Encode(s *domain.Snapshot) []byte {
	size := 8 + 8*len(s.Numbers) + 24*len(s.Positions) + 1 + 72 + 1 + 3
	for name, values := range s.Arrays {
		size += 16 + len(name) + 8*len(values)
	}
	buf := make([]byte, 0, size)

	// Atoms
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(s.Positions)))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(s.Numbers)))
	for _, z := range s.Numbers {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(z)))
	}
	for _, p := range s.Positions {
		buf = appendVec(buf, p)
	}

	// Cell
	if s.Cell == nil {
		buf = append(buf, 0)
	} else {
		buf = append(buf, 1)
		for _, row := range s.Cell {
			buf = appendVec(buf, row)
		}
	}

	// Periodicity
	if s.PBC == nil {
		buf = append(buf, 0)
	} else {
		buf = append(buf, 1)
		for _, periodic := range s.PBC {
			buf = append(buf, boolByte(periodic))
		}
	}

	// Auxiliary arrays
	names := s.AttributeNames()
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(names)))
	for _, name := range names {
		values := s.Arrays[name]
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(name)))
		buf = append(buf, name...)
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(values)))
		for _, v := range values {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
		}
	}

	return buf
}

func appendVec(buf []byte, v domain.Vec3) []byte {
	for _, x := range v {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(x))
	}
	return buf
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
