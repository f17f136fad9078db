package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Backend selects the execution pathway of the descriptor stage.
type Backend string

const (
	// BackendPlain evaluates descriptors numerically; forces use finite differences.
	BackendPlain Backend = "plain"
	// BackendGradient tracks descriptor gradients so forces follow from the chain rule.
	BackendGradient Backend = "gradient"
)

// ParseBackend normalizes a backend name. The empty name selects BackendPlain.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "plain", "numpy":
		return BackendPlain, nil
	case "gradient", "torch", "autograd":
		return BackendGradient, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownBackend, "expected plain or gradient"), "backend", name)
	}
}

// TracksGradients reports whether the backend computes analytic gradients.
func (b Backend) TracksGradients() bool {
	return b == BackendGradient
}

func (b Backend) String() string {
	return string(b)
}
