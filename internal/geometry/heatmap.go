package geometry

import (
	"math"
	"time"

	"github.com/gamma-omg/tradeview/internal/aggregate"
)

const (
	heatmapDays  = 7
	heatmapHours = 24
)

type Cell struct {
	Weekday   time.Weekday
	Hour      int
	X         float64
	Y         float64
	W         float64
	H         float64
	Value     float64
	Count     int
	Intensity float64
	Positive  bool
}

type HeatmapLayout struct {
	Origin Point
	CellW  float64
	CellH  float64
	MaxAbs float64
	Cells  []Cell
}

// Heatmap places weekday rows, Sunday first, against 24 hour columns. Only
// cells with records are returned. Intensity is the magnitude relative to the
// largest one.
func Heatmap(cells []aggregate.HeatmapCell, vp Viewport) (HeatmapLayout, bool) {
	if len(cells) == 0 {
		return HeatmapLayout{}, false
	}

	l := HeatmapLayout{
		Origin: Point{vp.Padding, vp.Padding},
		CellW:  vp.PlotWidth() / heatmapHours,
		CellH:  vp.PlotHeight() / heatmapDays,
		Cells:  make([]Cell, len(cells)),
	}
	for _, c := range cells {
		l.MaxAbs = math.Max(l.MaxAbs, math.Abs(c.Total))
	}

	for i, c := range cells {
		intensity := 0.0
		if l.MaxAbs > 0 {
			intensity = math.Abs(c.Total) / l.MaxAbs
		}

		l.Cells[i] = Cell{
			Weekday:   c.Weekday,
			Hour:      c.Hour,
			X:         l.Origin.X + float64(c.Hour)*l.CellW,
			Y:         l.Origin.Y + float64(c.Weekday)*l.CellH,
			W:         l.CellW,
			H:         l.CellH,
			Value:     c.Total,
			Count:     c.Count,
			Intensity: intensity,
			Positive:  c.Total >= 0,
		}
	}

	return l, true
}
