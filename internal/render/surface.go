package render

import (
	"image/color"

	"github.com/gamma-omg/tradeview/internal/geometry"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Style describes how a primitive is painted. A nil color skips that part.
type Style struct {
	Stroke  color.Color
	Fill    color.Color
	Width   float64
	Opacity float64
}

// Surface receives drawing primitives in pixel coordinates with the origin at
// the top-left corner. Angles are in degrees, clockwise from the x axis.
type Surface interface {
	Polyline(points []geometry.Point, s Style)
	Polygon(points []geometry.Point, s Style)
	Rect(x, y, w, h float64, s Style)
	Wedge(center geometry.Point, radius, startDeg, endDeg float64, s Style)
	Circle(center geometry.Point, radius float64, s Style)
	Text(at geometry.Point, txt string, size float64, c color.Color, align Align)
}

func withOpacity(c color.Color, opacity float64) color.Color {
	if c == nil || opacity <= 0 || opacity >= 1 {
		return c
	}

	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * opacity)
	return n
}
