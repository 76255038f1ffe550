package euclid

import "gonum.org/v1/gonum/floats/scalar"

// Epsilon is the absolute tolerance used by every equality test in this
// package. Two quantities whose difference is at most Epsilon are considered
// equal.
const Epsilon = 1e-10

func approxEqual(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Epsilon)
}

// proportional reports whether x:y equals s:t, cross-multiplied so that zero
// components need no special case.
func proportional(x, y, s, t float64) bool {
	return approxEqual(x*t, y*s)
}
