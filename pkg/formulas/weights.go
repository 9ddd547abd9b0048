// Package formulas holds the numeric helpers shared by the scoring code.
package formulas

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Clamp bounds v to [lo, hi]. NaN maps to lo so that malformed input always
// lands inside the range.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// ClampRound clamps v to [lo, hi] and rounds half away from zero.
func ClampRound(v, lo, hi float64) int {
	return int(math.Round(Clamp(v, lo, hi)))
}

// WeightsValid reports whether every weight is a finite, non-negative number
// and at least one weight is positive.
func WeightsValid(weights []float64) bool {
	if len(weights) == 0 {
		return false
	}
	for _, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return false
		}
	}
	return floats.Max(weights) > 0
}

// NormalizeWeights returns a copy of weights scaled so they sum to 1.
// Callers must check WeightsValid first.
func NormalizeWeights(weights []float64) []float64 {
	out := make([]float64, len(weights))
	copy(out, weights)
	// Dividing by the largest weight first keeps the sum finite.
	floats.Scale(1/floats.Max(out), out)
	floats.Scale(1/floats.Sum(out), out)
	return out
}

// WeightedSum returns sum(values[i] * weights[i]).
// Panics if the slices differ in length.
func WeightedSum(values, weights []float64) float64 {
	return floats.Dot(values, weights)
}
