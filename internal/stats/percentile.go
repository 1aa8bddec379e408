package stats

import (
	"math"
	"slices"
)

type PercentileMethod int

const (
	// NearestRank selects the sorted value at floor(p*(n-1)).
	NearestRank PercentileMethod = iota
	// Linear interpolates between the two sorted values around p*(n-1).
	Linear
)

// ComputePercentile returns the p-quantile (p in [0, 1]) of results. The
// second value is false for an empty input.
func ComputePercentile(results []float64, p float64, m PercentileMethod) (float64, bool) {
	if len(results) == 0 {
		return 0, false
	}

	sorted := slices.Clone(results)
	slices.Sort(sorted)

	return quantile(sorted, p, m), true
}

func quantile(sorted []float64, p float64, m PercentileMethod) float64 {
	p = math.Max(0, math.Min(1, p))
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))

	if m == NearestRank || lo == len(sorted)-1 {
		return sorted[lo]
	}

	frac := pos - float64(lo)
	return sorted[lo] + (sorted[lo+1]-sorted[lo])*frac
}

// ValueAtRisk is the result percentile at 1-confidence, a loss bound that
// holds with the given confidence.
func ValueAtRisk(results []float64, confidence float64, m PercentileMethod) (float64, bool) {
	return ComputePercentile(results, 1-confidence, m)
}
