package geometry

import (
	"math"
)

// StartAngle is the reference angle of the first slice, pointing up.
const StartAngle = -90.0

type Slice struct {
	Value      float64
	Fraction   float64
	StartAngle float64
	EndAngle   float64
	LargeArc   bool
	Start      Point
	End        Point
}

type PieLayout struct {
	Center Point
	Radius float64
	Total  float64
	Slices []Slice
}

// Pie sizes slices by magnitude in input order, clockwise from the top.
// Angles are in degrees in pixel space. A zero total yields no layout.
func Pie(values []float64, vp Viewport) (PieLayout, bool) {
	total := 0.0
	for _, v := range values {
		total += math.Abs(v)
	}
	if total == 0 {
		return PieLayout{}, false
	}

	l := PieLayout{
		Center: Point{vp.Width / 2, vp.Height / 2},
		Radius: math.Max(0, math.Min(vp.Width, vp.Height)/2-vp.Padding),
		Total:  total,
		Slices: make([]Slice, len(values)),
	}

	angle := StartAngle
	for i, v := range values {
		frac := math.Abs(v) / total
		sweep := frac * 360
		l.Slices[i] = Slice{
			Value:      v,
			Fraction:   frac,
			StartAngle: angle,
			EndAngle:   angle + sweep,
			LargeArc:   sweep > 180,
			Start:      l.at(angle),
			End:        l.at(angle + sweep),
		}
		angle += sweep
	}

	return l, true
}

func (l PieLayout) at(deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{
		X: l.Center.X + l.Radius*math.Cos(rad),
		Y: l.Center.Y + l.Radius*math.Sin(rad),
	}
}
