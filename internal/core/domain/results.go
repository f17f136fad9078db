package domain

import "slices"

// Results holds computed properties. A property is present when its field is non-nil.
type Results struct {
	Energy *float64 `json:"energy,omitempty"`
	Forces []Vec3   `json:"forces,omitempty"`
}

// Has reports whether p is present.
func (r Results) Has(p Property) bool {
	switch p {
	case PropertyEnergy:
		return r.Energy != nil
	case PropertyForces:
		return r.Forces != nil
	default:
		return false
	}
}

// HasAll reports whether every property in props is present.
func (r Results) HasAll(props []Property) bool {
	for _, p := range props {
		if !r.Has(p) {
			return false
		}
	}
	return true
}

// Properties lists the present properties.
func (r Results) Properties() []Property {
	var props []Property
	for _, p := range KnownProperties {
		if r.Has(p) {
			props = append(props, p)
		}
	}
	return props
}

// Subset returns a deep copy holding only the requested properties.
func (r Results) Subset(props []Property) Results {
	var out Results
	for _, p := range props {
		switch p {
		case PropertyEnergy:
			if r.Energy != nil {
				e := *r.Energy
				out.Energy = &e
			}
		case PropertyForces:
			if r.Forces != nil {
				out.Forces = slices.Clone(r.Forces)
			}
		}
	}
	return out
}

// Clone returns a deep copy.
func (r Results) Clone() Results {
	return r.Subset(KnownProperties)
}

// Value returns the value of p as reported to a host: float64 for energy, []Vec3 for forces.
func (r Results) Value(p Property) (any, bool) {
	switch p {
	case PropertyEnergy:
		if r.Energy == nil {
			return nil, false
		}
		return *r.Energy, true
	case PropertyForces:
		if r.Forces == nil {
			return nil, false
		}
		return slices.Clone(r.Forces), true
	default:
		return nil, false
	}
}
