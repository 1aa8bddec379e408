package geometry

import (
	"math"
)

const (
	barFill = 0.8
	barGap  = 1 - barFill
)

type BarRect struct {
	X        float64
	Y        float64
	W        float64
	H        float64
	Value    float64
	Negative bool
}

type BarLayout struct {
	Geometry
	Slot float64
	Bars []BarRect
}

// Bar lays out one bar per value in equal slots. The domain always includes
// zero so every bar grows from the baseline: the plot bottom when no value is
// negative, the plot top when no value is positive, an inner row otherwise.
func Bar(values []float64, vp Viewport) (BarLayout, bool) {
	if len(values) == 0 {
		return BarLayout{}, false
	}

	lo, hi := bounds(values)
	g := newGeometry(vp, math.Min(lo, 0), math.Max(hi, 0))
	if !g.HasBaseline {
		if lo >= 0 {
			g.Baseline = g.Bottom()
		} else {
			g.Baseline = g.Top()
		}
	}

	slot := g.Extent.W / float64(len(values))
	bars := make([]BarRect, len(values))
	for i, v := range values {
		h := math.Abs(v) / g.Range * g.Extent.H
		b := BarRect{
			X:        g.Origin.X + float64(i)*slot + slot*barGap/2,
			W:        slot * barFill,
			H:        h,
			Value:    v,
			Negative: v < 0,
		}
		if b.Negative {
			b.Y = g.Baseline
		} else {
			b.Y = g.Baseline - h
		}
		bars[i] = b
	}

	return BarLayout{Geometry: g, Slot: slot, Bars: bars}, true
}

// Center is the horizontal middle of bar i's slot.
func (l BarLayout) Center(i int) float64 {
	return l.Origin.X + (float64(i)+0.5)*l.Slot
}
