package stats

import (
	"math"

	"github.com/gamma-omg/tradeview/internal/aggregate"
)

type DrawdownSample struct {
	Index           int
	PeakSoFar       float64
	DrawdownPercent float64
	DrawdownPoints  float64
}

type Drawdown struct {
	Samples         []DrawdownSample
	MaxPercent      float64
	MaxPoints       float64
	CurrentPercent  float64
	MaxDuration     int
	CurrentDuration int
}

// ComputeDrawdown measures the decline of every point from the highest
// cumulative value seen before it. Percentages are relative to the magnitude
// of the peak so they are never positive; a zero peak yields zero. Durations
// count consecutive points below the running peak.
func ComputeDrawdown(curve []aggregate.EquityPoint) Drawdown {
	var dd Drawdown
	if len(curve) == 0 {
		return dd
	}

	dd.Samples = make([]DrawdownSample, len(curve))
	peak := curve[0].Cumulative
	for i, p := range curve {
		if p.Cumulative >= peak {
			peak = p.Cumulative
			dd.CurrentDuration = 0
		} else {
			dd.CurrentDuration++
		}

		pct := 0.0
		if peak != 0 {
			pct = (p.Cumulative - peak) / math.Abs(peak) * 100
		}
		pts := p.Cumulative - peak

		dd.Samples[i] = DrawdownSample{
			Index:           i,
			PeakSoFar:       peak,
			DrawdownPercent: pct,
			DrawdownPoints:  pts,
		}

		dd.MaxPercent = min(dd.MaxPercent, pct)
		dd.MaxPoints = min(dd.MaxPoints, pts)
		dd.MaxDuration = max(dd.MaxDuration, dd.CurrentDuration)
	}

	dd.CurrentPercent = dd.Samples[len(dd.Samples)-1].DrawdownPercent
	return dd
}
