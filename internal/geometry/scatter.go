package geometry

import (
	"math"

	"github.com/gamma-omg/tradeview/internal/aggregate"
)

type ScatterOptions struct {
	Window    aggregate.Window
	MinRadius float64
	MaxRadius float64
}

var DefaultScatterOptions = ScatterOptions{
	Window:    aggregate.DefaultWindow,
	MinRadius: 2,
	MaxRadius: 12,
}

type Dot struct {
	Center  Point
	Radius  float64
	Opacity float64
	Value   float64
}

type ScatterLayout struct {
	Geometry
	Window aggregate.Window
	Dots   []Dot
}

// Scatter places each point by time of day across the window, whose last
// hour is included in full, and by value as in Line. Radius and opacity grow
// with the magnitude of the value so zero values stay visible.
func Scatter(points []aggregate.ScatterPoint, vp Viewport, opt ScatterOptions) (ScatterLayout, bool) {
	if len(points) == 0 {
		return ScatterLayout{}, false
	}

	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Result
	}

	lo, hi := bounds(values)
	g := newGeometry(vp, lo, hi)
	peak := maxAbs(values)
	span := float64(max(opt.Window.End-opt.Window.Start+1, 1) * 60)

	dots := make([]Dot, len(points))
	for i, p := range points {
		offset := float64((p.Hour-opt.Window.Start)*60 + p.Minute)
		rel := 0.0
		if peak > 0 {
			rel = math.Abs(p.Result) / peak
		}

		dots[i] = Dot{
			Center: Point{
				X: g.Origin.X + offset/span*g.Extent.W,
				Y: g.Y(p.Result),
			},
			Radius:  opt.MinRadius + (opt.MaxRadius-opt.MinRadius)*rel,
			Opacity: 0.2 + 0.8*rel,
			Value:   p.Result,
		}
	}

	return ScatterLayout{Geometry: g, Window: opt.Window, Dots: dots}, true
}

// HourX is the pixel column where hour h of the window starts.
func (l ScatterLayout) HourX(h int) float64 {
	span := float64(max(l.Window.End-l.Window.Start+1, 1))
	return l.Origin.X + float64(h-l.Window.Start)/span*l.Extent.W
}
