// Package formulas provides the shared statistics helpers used across
// the analysis pipeline.
package formulas

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the sample standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// Compound compounds a series of fractional returns:
// Π(1 + rᵢ) − 1 in the order given. Callers that need reproducible
// floating-point results must pass the series in a fixed order.
func Compound(returns []float64) float64 {
	product := 1.0
	for _, r := range returns {
		product *= 1 + r
	}
	return product - 1
}

// Percentile returns the p-th percentile (p in [0, 100]) of data using
// linear interpolation between order statistics: the value at fractional
// rank p/100 × (n−1) in the sorted sample. This matches the conventional
// inclusive definition (numpy's default "linear" method), which is what
// the bucketing semantics depend on. The input slice is not modified.
func Percentile(data []float64, p float64) float64 {
	n := len(data)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return data[0]
	}

	sorted := make([]float64, n)
	copy(sorted, data)
	sort.Float64s(sorted)

	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
