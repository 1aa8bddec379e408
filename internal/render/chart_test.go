package render

import (
	"bytes"
	"fmt"
	"image/color"
	"testing"
	"time"

	"github.com/gamma-omg/tradeview/internal/aggregate"
	"github.com/gamma-omg/tradeview/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type primitive struct {
	kind  string
	pts   []geometry.Point
	rect  [4]float64
	angle [2]float64
	r     float64
	text  string
	style Style
}

type recordingSurface struct {
	prims []primitive
}

func (r *recordingSurface) Polyline(points []geometry.Point, s Style) {
	r.prims = append(r.prims, primitive{kind: "polyline", pts: points, style: s})
}

func (r *recordingSurface) Polygon(points []geometry.Point, s Style) {
	r.prims = append(r.prims, primitive{kind: "polygon", pts: points, style: s})
}

func (r *recordingSurface) Rect(x, y, w, h float64, s Style) {
	r.prims = append(r.prims, primitive{kind: "rect", rect: [4]float64{x, y, w, h}, style: s})
}

func (r *recordingSurface) Wedge(center geometry.Point, radius, startDeg, endDeg float64, s Style) {
	r.prims = append(r.prims, primitive{kind: "wedge", pts: []geometry.Point{center}, r: radius, angle: [2]float64{startDeg, endDeg}, style: s})
}

func (r *recordingSurface) Circle(center geometry.Point, radius float64, s Style) {
	r.prims = append(r.prims, primitive{kind: "circle", pts: []geometry.Point{center}, r: radius, style: s})
}

func (r *recordingSurface) Text(at geometry.Point, txt string, _ float64, _ color.Color, _ Align) {
	r.prims = append(r.prims, primitive{kind: "text", pts: []geometry.Point{at}, text: txt})
}

func (r *recordingSurface) only(kind string) []primitive {
	var res []primitive
	for _, p := range r.prims {
		if p.kind == kind {
			res = append(res, p)
		}
	}
	return res
}

func (r *recordingSurface) hasText(txt string) bool {
	for _, p := range r.only("text") {
		if p.text == txt {
			return true
		}
	}
	return false
}

var vp = geometry.Viewport{Width: 800, Height: 300, Padding: 50}

func TestDrawPlaceholder(t *testing.T) {
	tbl := []Chart{
		{Kind: KindLine},
		{Kind: KindArea},
		{Kind: KindBar},
		{Kind: KindPie, Values: []float64{0, 0}},
		{Kind: KindScatter},
		{Kind: KindHeatmap},
		{Kind: KindMultiLine, Series: [][]float64{{}, nil}},
	}

	for i, c := range tbl {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			s := &recordingSurface{}
			assert.False(t, Draw(s, c, vp, DefaultOptions))
			assert.True(t, s.hasText("no data"))
		})
	}
}

func TestDrawBars(t *testing.T) {
	s := &recordingSurface{}
	c := Chart{Kind: KindBar, Title: "Monthly", Values: []float64{-5, 3, -2}, Labels: []string{"a", "b", "c"}}
	require.True(t, Draw(s, c, vp, DefaultOptions))

	l, _ := geometry.Bar(c.Values, vp)

	rects := s.only("rect")
	require.Len(t, rects, 4)
	for i, b := range l.Bars {
		assert.Equal(t, [4]float64{b.X, b.Y, b.W, b.H}, rects[i+1].rect)
	}
	assert.Equal(t, DefaultTheme.Negative, rects[1].style.Fill)
	assert.Equal(t, DefaultTheme.Positive, rects[2].style.Fill)

	assert.True(t, s.hasText("Monthly"))
	assert.True(t, s.hasText("b"))

	zero := false
	for _, p := range s.only("polyline") {
		if p.pts[0].Y == l.Baseline && p.style.Stroke == DefaultTheme.Text {
			zero = true
		}
	}
	assert.True(t, zero)
}

func TestDrawLine(t *testing.T) {
	s := &recordingSurface{}
	c := Chart{Kind: KindArea, Values: []float64{100, 60, 85}}
	require.True(t, Draw(s, c, vp, DefaultOptions))

	l, _ := geometry.Line(c.Values, vp)
	lines := s.only("polyline")
	assert.Equal(t, l.Points, lines[len(lines)-1].pts)
	assert.Len(t, s.only("polygon"), 1)
	assert.Len(t, s.only("circle"), 3)
}

func TestDrawAreaFillsToZero(t *testing.T) {
	s := &recordingSurface{}
	c := Chart{Kind: KindArea, Values: []float64{0, -40, -15}}
	require.True(t, Draw(s, c, vp, DefaultOptions))

	l, _ := geometry.Line(c.Values, vp)
	polys := s.only("polygon")
	require.Len(t, polys, 1)

	fill := polys[0].pts
	assert.Equal(t, l.Y(0), fill[len(fill)-1].Y)
	assert.Equal(t, l.Top(), fill[len(fill)-1].Y)
}

func TestDrawMultiLine(t *testing.T) {
	s := &recordingSurface{}
	c := Chart{
		Kind:   KindMultiLine,
		Series: [][]float64{{10, 30, 20}, {-5, 5}},
		Labels: []string{"robot 1", "robot 2"},
	}
	require.True(t, Draw(s, c, vp, DefaultOptions))

	l, _ := geometry.Lines(c.Series, vp)
	lines := s.only("polyline")
	require.GreaterOrEqual(t, len(lines), 2)

	first, second := lines[len(lines)-2], lines[len(lines)-1]
	assert.Equal(t, l.Series[0], first.pts)
	assert.Equal(t, l.Series[1], second.pts)
	assert.Equal(t, DefaultTheme.Palette[0], first.style.Stroke)
	assert.Equal(t, DefaultTheme.Palette[1], second.style.Stroke)
	assert.True(t, s.hasText("robot 1"))
	assert.True(t, s.hasText("robot 2"))
}

func TestDrawPie(t *testing.T) {
	s := &recordingSurface{}
	c := Chart{Kind: KindPie, Values: []float64{1, -1}, Labels: []string{"WIN", "WDO"}}
	require.True(t, Draw(s, c, vp, DefaultOptions))

	wedges := s.only("wedge")
	require.Len(t, wedges, 2)
	assert.Equal(t, [2]float64{-90, 90}, wedges[0].angle)
	assert.Equal(t, [2]float64{90, 270}, wedges[1].angle)
	assert.Equal(t, DefaultTheme.Negative, wedges[1].style.Fill)
	assert.True(t, s.hasText("WIN 50.0%"))
}

func TestDrawScatterAndHeatmap(t *testing.T) {
	s := &recordingSurface{}
	c := Chart{Kind: KindScatter, Points: []aggregate.ScatterPoint{{Hour: 10, Minute: 15, Result: 4}}}
	require.True(t, Draw(s, c, vp, DefaultOptions))
	assert.Len(t, s.only("circle"), 1)
	assert.True(t, s.hasText("09h"))

	s = &recordingSurface{}
	c = Chart{Kind: KindHeatmap, Cells: []aggregate.HeatmapCell{{Weekday: time.Friday, Hour: 10, Total: -3, Count: 1}}}
	require.True(t, Draw(s, c, vp, DefaultOptions))
	rects := s.only("rect")
	require.Len(t, rects, 2)
	assert.Equal(t, DefaultTheme.Negative, rects[1].style.Fill)
}

func TestSave(t *testing.T) {
	c := Chart{Name: "equity", Kind: KindLine, Values: []float64{1, 3, 2}}

	var svg bytes.Buffer
	require.NoError(t, Save(&svg, c, vp, DefaultOptions, SVG))
	assert.Contains(t, svg.String(), "<svg")

	var png bytes.Buffer
	require.NoError(t, Save(&png, c, vp, DefaultOptions, PNG))
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, SVG, f)

	f, err = ParseFormat("png")
	require.NoError(t, err)
	assert.Equal(t, PNG, f)

	_, err = ParseFormat("gif")
	assert.Error(t, err)
}

func TestWithOpacity(t *testing.T) {
	c := withOpacity(color.NRGBA{R: 10, A: 200}, 0.5)
	assert.Equal(t, color.NRGBA{R: 10, A: 100}, c)

	assert.Nil(t, withOpacity(nil, 0.5))
	assert.Equal(t, color.White, withOpacity(color.White, 0))
}
