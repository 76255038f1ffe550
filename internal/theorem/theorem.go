// Package theorem is a catalogue of classical theorems of plane geometry,
// each checked numerically on a fixed configuration.
package theorem

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Tolerance is the largest residual a passing check may have.
const Tolerance = 1e-9

// Theorem is a named numeric check.
type Theorem struct {
	Name string
	// Check builds the configuration and measures how far it is from
	// satisfying the theorem. An error means the construction itself failed.
	Check func() (Result, error)
}

// Result holds the residuals of a check, quantities that vanish when the
// theorem holds exactly.
type Result struct {
	Residuals []float64
}

func residuals(rs ...float64) Result {
	return Result{Residuals: rs}
}

func (r Result) abs() []float64 {
	out := make([]float64, len(r.Residuals))
	for i, v := range r.Residuals {
		out[i] = math.Abs(v)
	}
	return out
}

// Max returns the largest absolute residual.
func (r Result) Max() float64 {
	if len(r.Residuals) == 0 {
		return 0
	}
	return floats.Max(r.abs())
}

// Mean returns the mean absolute residual.
func (r Result) Mean() float64 {
	if len(r.Residuals) == 0 {
		return 0
	}
	return stat.Mean(r.abs(), nil)
}

// OK reports whether every residual is within [Tolerance]. NaN residuals
// never pass.
func (r Result) OK() bool {
	for _, v := range r.Residuals {
		if !(math.Abs(v) <= Tolerance) {
			return false
		}
	}
	return true
}
