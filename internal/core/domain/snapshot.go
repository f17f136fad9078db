package domain

import (
	"fmt"
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// Vec3 is a Cartesian 3-vector.
type Vec3 [3]float64

// Mat3 is a 3x3 matrix whose rows are lattice vectors.
type Mat3 [3]Vec3

// Snapshot is a view of an atomic configuration at one instant.
//
// The calculator only reads a Snapshot. Anything that needs to move atoms
// works on a Clone.
type Snapshot struct {
	// Index is the position of the frame in its source trajectory.
	// It is reported in error messages and takes no part in fingerprinting.
	Index int
	// Numbers holds the atomic number of every atom, in descriptor order.
	Numbers []int
	// Positions holds the Cartesian position of every atom.
	Positions []Vec3
	// Cell is the optional simulation cell.
	Cell *Mat3
	// PBC holds the optional per-axis periodicity flags.
	PBC *[3]bool
	// Arrays holds auxiliary per-atom attributes, flattened row-major.
	// A width-w attribute has len(Positions)*w values.
	Arrays map[string][]float64
}

// AttributeSpec names a per-atom attribute and the number of values per atom.
type AttributeSpec struct {
	Name  string
	Width int
}

// Len returns the number of atoms.
func (s *Snapshot) Len() int {
	return len(s.Positions)
}

// Attribute returns the flattened values of the named per-atom attribute.
func (s *Snapshot) Attribute(name string) ([]float64, bool) {
	values, ok := s.Arrays[name]
	return values, ok
}

// AttributeNames returns the auxiliary attribute names in sorted order.
func (s *Snapshot) AttributeNames() []string {
	return slices.Sorted(maps.Keys(s.Arrays))
}

// Periodic reports whether the snapshot has a cell and at least one periodic axis.
func (s *Snapshot) Periodic() bool {
	if s.Cell == nil || s.PBC == nil {
		return false
	}
	return s.PBC[0] || s.PBC[1] || s.PBC[2]
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Index:     s.Index,
		Numbers:   slices.Clone(s.Numbers),
		Positions: slices.Clone(s.Positions),
	}
	if s.Cell != nil {
		cell := *s.Cell
		out.Cell = &cell
	}
	if s.PBC != nil {
		pbc := *s.PBC
		out.PBC = &pbc
	}
	if s.Arrays != nil {
		out.Arrays = make(map[string][]float64, len(s.Arrays))
		for name, values := range s.Arrays {
			out.Arrays[name] = slices.Clone(values)
		}
	}
	return out
}

// Scaled returns a copy with positions and cell divided by lengthUnit.
// A unit of 1 returns the receiver unchanged.
func (s *Snapshot) Scaled(lengthUnit float64) *Snapshot {
	if lengthUnit == 1 {
		return s
	}
	out := s.Clone()
	for i := range out.Positions {
		for k := range 3 {
			out.Positions[i][k] /= lengthUnit
		}
	}
	if out.Cell != nil {
		for i := range 3 {
			for k := range 3 {
				out.Cell[i][k] /= lengthUnit
			}
		}
	}
	return out
}

// Validate checks the structural consistency of the snapshot.
func (s *Snapshot) Validate() error {
	n := len(s.Positions)
	if n == 0 {
		return zerr.With(zerr.Wrap(ErrValidation, fmt.Sprintf("frame at index %d has no atoms", s.Index)), "index", s.Index)
	}
	if len(s.Numbers) != n {
		err := zerr.Wrap(ErrValidation, fmt.Sprintf(
			"frame at index %d has %d atomic numbers for %d positions", s.Index, len(s.Numbers), n))
		return zerr.With(err, "index", s.Index)
	}
	for _, name := range s.AttributeNames() {
		if len(s.Arrays[name])%n != 0 {
			err := zerr.Wrap(ErrValidation, fmt.Sprintf(
				"frame at index %d has attribute '%s' with %d values for %d atoms",
				s.Index, name, len(s.Arrays[name]), n))
			return zerr.With(zerr.With(err, "index", s.Index), "attribute", name)
		}
	}
	return nil
}

// RequireAttributes checks that every listed attribute is present with the
// expected width. label describes the consumer in the error message.
func (s *Snapshot) RequireAttributes(label string, specs []AttributeSpec) error {
	n := s.Len()
	for _, spec := range specs {
		values, ok := s.Arrays[spec.Name]
		if !ok {
			err := zerr.Wrap(ErrValidation, fmt.Sprintf(
				"%s expects frames with attributes %s: frame at index %d is missing a required attribute '%s'",
				label, attributeList(specs), s.Index, spec.Name))
			return zerr.With(zerr.With(err, "index", s.Index), "attribute", spec.Name)
		}
		if len(values) != n*spec.Width {
			err := zerr.Wrap(ErrValidation, fmt.Sprintf(
				"%s expects attribute '%s' with %d values per atom: frame at index %d has %d values for %d atoms",
				label, spec.Name, spec.Width, s.Index, len(values), n))
			return zerr.With(zerr.With(err, "index", s.Index), "attribute", spec.Name)
		}
	}
	return nil
}

func attributeList(specs []AttributeSpec) string {
	names := make([]string, len(specs))
	for i, spec := range specs {
		names[i] = "'" + spec.Name + "'"
	}
	return fmt.Sprint(names)
}
