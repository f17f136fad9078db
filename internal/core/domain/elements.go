package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// elementSymbols is indexed by atomic number; index 0 is the placeholder "X".
var elementSymbols = [...]string{
	"X",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba",
	"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra",
	"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn",
	"Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

var atomicNumbers = func() map[string]int {
	m := make(map[string]int, len(elementSymbols))
	for z, sym := range elementSymbols {
		m[strings.ToLower(sym)] = z
	}
	return m
}()

// AtomicNumber returns the atomic number of a chemical symbol. Matching is case-insensitive.
func AtomicNumber(symbol string) (int, error) {
	z, ok := atomicNumbers[strings.ToLower(strings.TrimSpace(symbol))]
	if !ok {
		return 0, zerr.With(zerr.Wrap(ErrUnknownElement, "unknown chemical symbol"), "symbol", symbol)
	}
	return z, nil
}

// Symbol returns the chemical symbol of an atomic number, or "X" when out of range.
func Symbol(z int) string {
	if z < 0 || z >= len(elementSymbols) {
		return elementSymbols[0]
	}
	return elementSymbols[z]
}
