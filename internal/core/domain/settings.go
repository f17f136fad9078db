package domain

import (
	"fmt"
	"math"

	"go.trai.ch/zerr"
)

// DefaultFiniteDifferenceStep is the coordinate displacement, in Å, used for finite-difference forces.
const DefaultFiniteDifferenceStep = 1e-5

// Settings configures a calculator.
type Settings struct {
	Backend              Backend
	EnableForces         bool
	CacheResults         bool
	EnergyUnitsToEV      float64
	LengthUnitsToA       float64
	FiniteDifferenceStep float64
}

// DefaultSettings returns plain-backend, energy-only settings with caching on and unit factors of 1.
func DefaultSettings() Settings {
	return Settings{
		Backend:              BackendPlain,
		CacheResults:         true,
		EnergyUnitsToEV:      1,
		LengthUnitsToA:       1,
		FiniteDifferenceStep: DefaultFiniteDifferenceStep,
	}
}

// ForceUnit returns the factor that converts model-native forces to eV/Å.
func (s Settings) ForceUnit() float64 {
	return s.EnergyUnitsToEV / s.LengthUnitsToA
}

// Validate checks that every factor is finite and positive and the backend is known.
func (s Settings) Validate() error {
	if _, err := ParseBackend(string(s.Backend)); err != nil {
		return err
	}
	checks := []struct {
		name  string
		value float64
	}{
		{"energy_units_to_eV", s.EnergyUnitsToEV},
		{"length_units_to_A", s.LengthUnitsToA},
		{"finite_difference_step", s.FiniteDifferenceStep},
	}
	for _, c := range checks {
		if !(c.value > 0) || math.IsInf(c.value, 0) {
			err := zerr.Wrap(ErrInvalidSettings, fmt.Sprintf("%s must be a finite positive number, got %g", c.name, c.value))
			return zerr.With(err, "setting", c.name)
		}
	}
	return nil
}
