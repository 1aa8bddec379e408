package geometry

type LineLayout struct {
	Geometry
	Points []Point
}

// Line spreads values evenly across the plot width. A single value is placed
// at the horizontal center.
func Line(values []float64, vp Viewport) (LineLayout, bool) {
	if len(values) == 0 {
		return LineLayout{}, false
	}

	lo, hi := bounds(values)
	g := newGeometry(vp, lo, hi)

	points := make([]Point, len(values))
	for i, v := range values {
		x := g.Origin.X + g.Extent.W/2
		if len(values) > 1 {
			x = g.Origin.X + float64(i)/float64(len(values)-1)*g.Extent.W
		}
		points[i] = Point{X: x, Y: g.Y(v)}
	}

	return LineLayout{Geometry: g, Points: points}, true
}

// Area closes a line layout on the zero row, so the fill lies between the
// curve and zero. The row is clamped to the plot when zero is outside the
// domain.
func (l LineLayout) Area() []Point {
	if len(l.Points) == 0 {
		return nil
	}

	res := make([]Point, 0, len(l.Points)+2)
	res = append(res, l.Points...)
	res = append(res,
		Point{X: l.Points[len(l.Points)-1].X, Y: l.ZeroRow()},
		Point{X: l.Points[0].X, Y: l.ZeroRow()})

	return res
}

type MultiLineLayout struct {
	Geometry
	Series [][]Point
}

// Lines lays out several series over one shared domain. The x axis is the
// position within a series, scaled to the longest one, so every series
// starts at the left edge. Empty series keep their slot with no points.
func Lines(series [][]float64, vp Viewport) (MultiLineLayout, bool) {
	var all []float64
	longest := 0
	for _, s := range series {
		all = append(all, s...)
		longest = max(longest, len(s))
	}
	if len(all) == 0 {
		return MultiLineLayout{}, false
	}

	lo, hi := bounds(all)
	g := newGeometry(vp, lo, hi)

	res := make([][]Point, len(series))
	for i, s := range series {
		res[i] = make([]Point, len(s))
		for j, v := range s {
			x := g.Origin.X + g.Extent.W/2
			if longest > 1 {
				x = g.Origin.X + float64(j)/float64(longest-1)*g.Extent.W
			}
			res[i][j] = Point{X: x, Y: g.Y(v)}
		}
	}

	return MultiLineLayout{Geometry: g, Series: res}, true
}
