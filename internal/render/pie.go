package render

import (
	"math"

	"github.com/gamma-omg/tradeview/internal/geometry"
)

// labelPoint is the point at 70% of the radius along angle deg.
func labelPoint(l geometry.PieLayout, deg float64) geometry.Point {
	rad := deg * math.Pi / 180
	return geometry.Point{
		X: l.Center.X + 0.7*l.Radius*math.Cos(rad),
		Y: l.Center.Y + 0.7*l.Radius*math.Sin(rad),
	}
}
