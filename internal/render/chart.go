package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/gamma-omg/tradeview/internal/aggregate"
	"github.com/gamma-omg/tradeview/internal/geometry"
)

type Kind int

const (
	KindLine Kind = iota
	KindArea
	KindBar
	KindPie
	KindScatter
	KindHeatmap
	KindMultiLine
)

type Chart struct {
	Name   string
	Title  string
	Kind   Kind
	Values []float64
	Labels []string
	Points []aggregate.ScatterPoint
	Cells  []aggregate.HeatmapCell
	Series [][]float64
}

type Theme struct {
	Background color.Color
	Line       color.Color
	Positive   color.Color
	Negative   color.Color
	Grid       color.Color
	Text       color.Color
	Palette    []color.Color
}

var DefaultTheme = Theme{
	Background: color.White,
	Line:       color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff},
	Positive:   color.NRGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff},
	Negative:   color.NRGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff},
	Grid:       color.NRGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff},
	Text:       color.NRGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xff},
	Palette: []color.Color{
		color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff},
		color.NRGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff},
		color.NRGBA{R: 0x8b, G: 0x5c, B: 0xf6, A: 0xff},
		color.NRGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff},
		color.NRGBA{R: 0xec, G: 0x48, B: 0x99, A: 0xff},
		color.NRGBA{R: 0x06, G: 0xb6, B: 0xd4, A: 0xff},
	},
}

type Options struct {
	Theme   Theme
	Scatter geometry.ScatterOptions
	Ticks   int
}

var DefaultOptions = Options{
	Theme:   DefaultTheme,
	Scatter: geometry.DefaultScatterOptions,
	Ticks:   4,
}

// Draw lays out c for the viewport and paints it on s. When there is nothing
// to plot a placeholder is painted instead and false is returned.
func Draw(s Surface, c Chart, vp geometry.Viewport, opt Options) bool {
	th := opt.Theme
	s.Rect(0, 0, vp.Width, vp.Height, Style{Fill: th.Background})
	if c.Title != "" {
		s.Text(geometry.Point{X: vp.Width / 2, Y: vp.Padding / 2}, c.Title, 12, th.Text, AlignCenter)
	}

	ok := false
	switch c.Kind {
	case KindLine, KindArea:
		var l geometry.LineLayout
		if l, ok = geometry.Line(c.Values, vp); ok {
			drawLine(s, l, c.Kind == KindArea, opt)
		}
	case KindMultiLine:
		var l geometry.MultiLineLayout
		if l, ok = geometry.Lines(c.Series, vp); ok {
			drawLines(s, l, c.Labels, opt)
		}
	case KindBar:
		var l geometry.BarLayout
		if l, ok = geometry.Bar(c.Values, vp); ok {
			drawBars(s, l, c.Labels, opt)
		}
	case KindPie:
		var l geometry.PieLayout
		if l, ok = geometry.Pie(c.Values, vp); ok {
			drawPie(s, l, c.Labels, th)
		}
	case KindScatter:
		var l geometry.ScatterLayout
		if l, ok = geometry.Scatter(c.Points, vp, opt.Scatter); ok {
			drawScatter(s, l, opt)
		}
	case KindHeatmap:
		var l geometry.HeatmapLayout
		if l, ok = geometry.Heatmap(c.Cells, vp); ok {
			drawHeatmap(s, l, th)
		}
	}

	if !ok {
		Placeholder(s, vp, "no data", th)
	}
	return ok
}

// Save draws c on a new canvas of the given format and writes it to w.
func Save(w io.Writer, c Chart, vp geometry.Viewport, opt Options, f Format) error {
	cv := NewCanvas(vp.Width, vp.Height, f)
	Draw(cv, c, vp, opt)

	if _, err := cv.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s chart: %w", c.Name, err)
	}

	return nil
}

func Placeholder(s Surface, vp geometry.Viewport, msg string, th Theme) {
	s.Rect(vp.Padding, vp.Padding, vp.PlotWidth(), vp.PlotHeight(), Style{Stroke: th.Grid})
	s.Text(geometry.Point{X: vp.Width / 2, Y: vp.Height / 2}, msg, 12, th.Text, AlignCenter)
}

func drawAxes(s Surface, g geometry.Geometry, opt Options) {
	th := opt.Theme
	for _, t := range geometry.Ticks(g, opt.Ticks) {
		s.Polyline([]geometry.Point{{X: g.Left(), Y: t.Y}, {X: g.Right(), Y: t.Y}}, Style{Stroke: th.Grid, Width: 0.5})
		s.Text(geometry.Point{X: g.Left() - 5, Y: t.Y}, fmt.Sprintf("%.0f", t.Value), 9, th.Text, AlignRight)
	}

	if g.HasBaseline {
		s.Polyline([]geometry.Point{{X: g.Left(), Y: g.Baseline}, {X: g.Right(), Y: g.Baseline}}, Style{Stroke: th.Text, Width: 1})
	}
}

func drawLine(s Surface, l geometry.LineLayout, area bool, opt Options) {
	drawAxes(s, l.Geometry, opt)
	if area {
		s.Polygon(l.Area(), Style{Fill: opt.Theme.Line, Opacity: 0.2})
	}
	s.Polyline(l.Points, Style{Stroke: opt.Theme.Line, Width: 2})
	for _, p := range l.Points {
		s.Circle(p, 3, Style{Fill: opt.Theme.Line})
	}
}

func drawLines(s Surface, l geometry.MultiLineLayout, labels []string, opt Options) {
	drawAxes(s, l.Geometry, opt)
	for i, pts := range l.Series {
		clr := seriesColor(opt.Theme, i)
		s.Polyline(pts, Style{Stroke: clr, Width: 2})

		if i < len(labels) {
			at := geometry.Point{X: l.Right() + 5, Y: l.Top() + float64(i)*12}
			s.Text(at, labels[i], 9, clr, AlignLeft)
		}
	}
}

func seriesColor(th Theme, i int) color.Color {
	if len(th.Palette) == 0 {
		return th.Line
	}
	return th.Palette[i%len(th.Palette)]
}

func drawBars(s Surface, l geometry.BarLayout, labels []string, opt Options) {
	drawAxes(s, l.Geometry, opt)
	for i, b := range l.Bars {
		fill := opt.Theme.Positive
		if b.Negative {
			fill = opt.Theme.Negative
		}
		s.Rect(b.X, b.Y, b.W, b.H, Style{Fill: fill})

		if i < len(labels) {
			s.Text(geometry.Point{X: l.Center(i), Y: l.Bottom() + 15}, labels[i], 9, opt.Theme.Text, AlignCenter)
		}
	}
}

func drawPie(s Surface, l geometry.PieLayout, labels []string, th Theme) {
	for i, sl := range l.Slices {
		fill := th.Positive
		if sl.Value < 0 {
			fill = th.Negative
		}
		s.Wedge(l.Center, l.Radius, sl.StartAngle, sl.EndAngle, Style{Fill: fill, Stroke: th.Background, Width: 2})

		if i < len(labels) {
			mid := sl.StartAngle + (sl.EndAngle-sl.StartAngle)/2
			at := labelPoint(l, mid)
			s.Text(at, fmt.Sprintf("%s %.1f%%", labels[i], sl.Fraction*100), 9, th.Text, AlignCenter)
		}
	}
}

func drawScatter(s Surface, l geometry.ScatterLayout, opt Options) {
	drawAxes(s, l.Geometry, opt)
	for h := l.Window.Start; h <= l.Window.End; h++ {
		s.Text(geometry.Point{X: l.HourX(h), Y: l.Bottom() + 15}, fmt.Sprintf("%02dh", h), 9, opt.Theme.Text, AlignLeft)
	}

	for _, d := range l.Dots {
		fill := opt.Theme.Positive
		if d.Value < 0 {
			fill = opt.Theme.Negative
		}
		s.Circle(d.Center, d.Radius, Style{Fill: fill, Opacity: d.Opacity})
	}
}

func drawHeatmap(s Surface, l geometry.HeatmapLayout, th Theme) {
	for _, c := range l.Cells {
		fill := th.Positive
		if !c.Positive {
			fill = th.Negative
		}
		s.Rect(c.X, c.Y, c.W-1, c.H-1, Style{Fill: fill, Opacity: 0.1 + 0.8*c.Intensity})
	}
}
