package domain

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Property names a physical quantity the calculator can report.
type Property string

const (
	// PropertyEnergy is the total potential energy, in eV.
	PropertyEnergy Property = "energy"
	// PropertyForces is the per-atom force, in eV/Å.
	PropertyForces Property = "forces"
)

// KnownProperties lists every property the calculator can compute.
var KnownProperties = []Property{PropertyEnergy, PropertyForces}

// ParseProperty converts a name into a Property.
func ParseProperty(name string) (Property, error) {
	p := Property(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(KnownProperties, p) {
		return "", NotImplemented(p, "unknown property")
	}
	return p, nil
}

// ParseProperties converts a list of names into Properties.
func ParseProperties(names []string) ([]Property, error) {
	props := make([]Property, 0, len(names))
	for _, name := range names {
		p, err := ParseProperty(name)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	return NormalizeProperties(props), nil
}

// NormalizeProperties deduplicates props, keeping first-seen order.
// An empty request means energy.
func NormalizeProperties(props []Property) []Property {
	if len(props) == 0 {
		return []Property{PropertyEnergy}
	}
	out := make([]Property, 0, len(props))
	for _, p := range props {
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}

// NotImplemented builds the error returned for a property outside the configured capability set.
func NotImplemented(p Property, reason string) error {
	err := zerr.Wrap(ErrPropertyNotImplemented, fmt.Sprintf("property '%s' is not available: %s", p, reason))
	return zerr.With(err, "property", string(p))
}
