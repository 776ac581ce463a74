// SPDX-License-Identifier: MIT
// Package: percolate/montecarlo
//
// stats.go: sample mean, Bessel-corrected deviation and the 95% interval.

package montecarlo

import (
	"fmt"
	"math"
)

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// SampleStdDev returns sqrt(Σ(x-mean)² / (len(xs)-1)).
// Returns ErrInvalidTrialCount when len(xs) < 2.
func SampleStdDev(xs []float64, mean float64) (float64, error) {
	if len(xs) < MinTrials {
		return 0, fmt.Errorf("%w: got %d samples", ErrInvalidTrialCount, len(xs))
	}
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1)), nil
}

// ConfidenceInterval95 returns mean ± Z95·stddev/√t.
func ConfidenceInterval95(mean, stddev float64, t int) Interval {
	half := Z95 * stddev / math.Sqrt(float64(t))
	return Interval{Low: mean - half, High: mean + half}
}
