package unit

import (
	"gonum.org/v1/gonum/floats/scalar"

	"strongtype/internal/config"
)

// Near reports whether a and b agree within the configured tolerance
// (config.Get().Tolerance): absolute or relative, whichever is looser.
// Ratio and formula round trips are only guaranteed in this sense.
func Near[Tag Unit](a, b Quantity[Tag]) bool {
	tol := config.Get().Tolerance
	return NearWithin(a, b, tol.Absolute, tol.Relative)
}

// NearWithin is Near with explicit bounds.
func NearWithin[Tag Unit](a, b Quantity[Tag], absolute, relative float64) bool {
	return scalar.EqualWithinAbsOrRel(a.Get(), b.Get(), absolute, relative)
}
