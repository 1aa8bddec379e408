package geometry

import (
	"math"
	"slices"
)

type Viewport struct {
	Width   float64
	Height  float64
	Padding float64
}

func (v Viewport) PlotWidth() float64 {
	return math.Max(0, v.Width-2*v.Padding)
}

func (v Viewport) PlotHeight() float64 {
	return math.Max(0, v.Height-2*v.Padding)
}

type Point struct {
	X float64
	Y float64
}

type Size struct {
	W float64
	H float64
}

// Geometry maps a value domain onto the plot rectangle of a viewport. Range is
// never below 1. Baseline is the pixel row of the value zero; HasBaseline is
// set when the domain straddles zero and a zero line should be drawn.
type Geometry struct {
	DomainMin   float64
	DomainMax   float64
	Range       float64
	Origin      Point
	Extent      Size
	Baseline    float64
	HasBaseline bool
}

func newGeometry(vp Viewport, lo, hi float64) Geometry {
	g := Geometry{
		DomainMin: lo,
		DomainMax: hi,
		Range:     math.Max(hi-lo, 1),
		Origin:    Point{vp.Padding, vp.Padding},
		Extent:    Size{vp.PlotWidth(), vp.PlotHeight()},
	}

	if lo < 0 && hi > 0 {
		g.HasBaseline = true
		g.Baseline = g.Y(0)
	}

	return g
}

// Y is the pixel row of v; pixel rows grow downwards.
func (g Geometry) Y(v float64) float64 {
	return g.Origin.Y + (g.DomainMax-v)/g.Range*g.Extent.H
}

func (g Geometry) Top() float64 {
	return g.Origin.Y
}

func (g Geometry) Bottom() float64 {
	return g.Origin.Y + g.Extent.H
}

func (g Geometry) Left() float64 {
	return g.Origin.X
}

func (g Geometry) Right() float64 {
	return g.Origin.X + g.Extent.W
}

// ZeroRow is the pixel row of zero clamped to the plot rectangle.
func (g Geometry) ZeroRow() float64 {
	return math.Min(math.Max(g.Y(0), g.Top()), g.Bottom())
}

type Tick struct {
	Value float64
	Y     float64
}

// Ticks returns n+1 evenly spaced value labels from DomainMin to
// DomainMin+Range, top to bottom.
func Ticks(g Geometry, n int) []Tick {
	if n <= 0 {
		return nil
	}

	res := make([]Tick, n+1)
	for i := range res {
		frac := float64(i) / float64(n)
		v := g.DomainMax - frac*g.Range
		res[i] = Tick{Value: v, Y: g.Origin.Y + frac*g.Extent.H}
	}

	return res
}

func bounds(values []float64) (float64, float64) {
	return slices.Min(values), slices.Max(values)
}

func maxAbs(values []float64) float64 {
	m := 0.0
	for _, v := range values {
		m = math.Max(m, math.Abs(v))
	}
	return m
}
