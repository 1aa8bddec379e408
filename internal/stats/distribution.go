package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const MaxBins = 15

type Bin struct {
	Lower float64
	Upper float64
	Count int
}

type Distribution struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
	Bins   []Bin
}

// DefaultBins is ceil(sqrt(n)) capped at MaxBins.
func DefaultBins(n int) int {
	if n <= 0 {
		return 1
	}
	return min(MaxBins, int(math.Ceil(math.Sqrt(float64(n)))))
}

// ComputeDistributionStats summarizes results into moments and a fixed width
// histogram. A non-positive bins uses DefaultBins. The last bin includes the
// maximum; a series of equal values gets a single bin.
func ComputeDistributionStats(results []float64, bins int) (Distribution, bool) {
	if len(results) == 0 {
		return Distribution{}, false
	}

	sorted := slices.Clone(results)
	slices.Sort(sorted)

	d := Distribution{
		Count:  len(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: quantile(sorted, 0.5, Linear),
	}
	if len(sorted) > 1 {
		d.Mean, d.StdDev = stat.MeanStdDev(sorted, nil)
	} else {
		d.Mean = sorted[0]
	}

	if bins <= 0 {
		bins = DefaultBins(len(sorted))
	}
	if d.Min == d.Max {
		bins = 1
	}

	dividers := make([]float64, bins+1)
	floats.Span(dividers, d.Min, d.Max)
	dividers[bins] = math.Nextafter(d.Max, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)
	d.Bins = make([]Bin, bins)
	for i, c := range counts {
		d.Bins[i] = Bin{
			Lower: dividers[i],
			Upper: dividers[i+1],
			Count: int(c),
		}
	}
	d.Bins[bins-1].Upper = d.Max

	return d, true
}
