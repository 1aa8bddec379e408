package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/gamma-omg/tradeview/internal/geometry"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case SVG, "":
		return SVG, nil
	case PNG:
		return PNG, nil
	default:
		return "", fmt.Errorf("unknown output format: %s", s)
	}
}

// Canvas is a Surface backed by a gonum vector canvas.
type Canvas struct {
	dc     draw.Canvas
	height float64
	format Format
	svg    *vgsvg.Canvas
	img    *vgimg.Canvas
}

func NewCanvas(w, h float64, f Format) *Canvas {
	c := &Canvas{height: h, format: f}

	var vc vg.CanvasSizer
	if f == PNG {
		c.img = vgimg.New(vg.Points(w), vg.Points(h))
		vc = c.img
	} else {
		c.svg = vgsvg.New(vg.Points(w), vg.Points(h))
		vc = c.svg
	}
	c.dc = draw.New(vc)

	return c
}

func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	if c.img != nil {
		png := vgimg.PngCanvas{Canvas: c.img}
		return png.WriteTo(w)
	}
	return c.svg.WriteTo(w)
}

func (c *Canvas) pt(p geometry.Point) vg.Point {
	return vg.Point{X: vg.Length(p.X), Y: vg.Length(c.height - p.Y)}
}

func (c *Canvas) pts(points []geometry.Point) []vg.Point {
	res := make([]vg.Point, len(points))
	for i, p := range points {
		res[i] = c.pt(p)
	}
	return res
}

func (c *Canvas) Polyline(points []geometry.Point, s Style) {
	if len(points) < 2 || s.Stroke == nil {
		return
	}

	c.dc.StrokeLines(lineStyle(s), c.pts(points))
}

func (c *Canvas) Polygon(points []geometry.Point, s Style) {
	if len(points) < 3 {
		return
	}

	vp := c.pts(points)
	if s.Fill != nil {
		c.dc.FillPolygon(withOpacity(s.Fill, s.Opacity), vp)
	}
	if s.Stroke != nil {
		c.dc.StrokeLines(lineStyle(s), append(vp, vp[0]))
	}
}

func (c *Canvas) Rect(x, y, w, h float64, s Style) {
	c.Polygon([]geometry.Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}, s)
}

func (c *Canvas) Wedge(center geometry.Point, radius, startDeg, endDeg float64, s Style) {
	if radius <= 0 {
		return
	}

	// vg angles run counter-clockwise with y up
	start := -startDeg * math.Pi / 180
	sweep := -(endDeg - startDeg) * math.Pi / 180

	cp := c.pt(center)
	var p vg.Path
	p.Move(cp)
	p.Line(vg.Point{
		X: cp.X + vg.Length(radius*math.Cos(start)),
		Y: cp.Y + vg.Length(radius*math.Sin(start)),
	})
	p.Arc(cp, vg.Length(radius), start, sweep)
	p.Close()

	c.paint(p, s)
}

func (c *Canvas) Circle(center geometry.Point, radius float64, s Style) {
	if radius <= 0 {
		return
	}

	cp := c.pt(center)
	var p vg.Path
	p.Move(vg.Point{X: cp.X + vg.Length(radius), Y: cp.Y})
	p.Arc(cp, vg.Length(radius), 0, 2*math.Pi)
	p.Close()

	c.paint(p, s)
}

func (c *Canvas) Text(at geometry.Point, txt string, size float64, clr color.Color, align Align) {
	fnt := plot.DefaultFont
	fnt.Size = vg.Points(size)

	sty := draw.TextStyle{
		Color:   clr,
		Font:    fnt,
		XAlign:  xAlign(align),
		YAlign:  draw.YCenter,
		Handler: plot.DefaultTextHandler,
	}
	c.dc.FillText(sty, c.pt(at), txt)
}

func (c *Canvas) paint(p vg.Path, s Style) {
	if s.Fill != nil {
		c.dc.SetColor(withOpacity(s.Fill, s.Opacity))
		c.dc.Fill(p)
	}
	if s.Stroke != nil {
		c.dc.SetLineStyle(lineStyle(s))
		c.dc.Stroke(p)
	}
}

func lineStyle(s Style) draw.LineStyle {
	w := s.Width
	if w <= 0 {
		w = 1
	}
	return draw.LineStyle{
		Color: withOpacity(s.Stroke, s.Opacity),
		Width: vg.Points(w),
	}
}

func xAlign(a Align) draw.XAlignment {
	switch a {
	case AlignCenter:
		return draw.XCenter
	case AlignRight:
		return draw.XRight
	default:
		return draw.XLeft
	}
}
