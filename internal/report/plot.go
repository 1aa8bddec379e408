package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/gamma-omg/tradeview/internal/dashboard"
	"github.com/pplcc/plotext"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var ErrNoData = errors.New("nothing to plot")

type panel struct {
	plot   *plot.Plot
	weight float64
}

// ReferencePlot is a PNG of panels stacked top to bottom over one time axis.
// A panel's height is its weight times the unit height.
type ReferencePlot struct {
	panels []panel
	width  vg.Length
	unit   vg.Length
}

// EquityPlot stacks the equity curve over the drawdown percentage.
func EquityPlot(v *dashboard.View, width, unit int) (*ReferencePlot, error) {
	if len(v.Equity) == 0 {
		return nil, ErrNoData
	}

	equity := make(plotter.XYs, len(v.Equity))
	for i, p := range v.Equity {
		equity[i] = plotter.XY{X: float64(p.Time.Unix()), Y: p.Cumulative}
	}

	drawdown := make(plotter.XYs, len(v.Drawdown.Samples))
	for i, s := range v.Drawdown.Samples {
		drawdown[i] = plotter.XY{X: equity[s.Index].X, Y: s.DrawdownPercent}
	}

	pe, err := timePanel("Equity", "Points", equity)
	if err != nil {
		return nil, fmt.Errorf("failed to create equity graph: %w", err)
	}
	pd, err := timePanel("Drawdown", "%", drawdown)
	if err != nil {
		return nil, fmt.Errorf("failed to create drawdown graph: %w", err)
	}

	return &ReferencePlot{
		panels: []panel{{pe, 2}, {pd, 1}},
		width:  vg.Points(float64(width)),
		unit:   vg.Points(float64(unit)),
	}, nil
}

func (r *ReferencePlot) WriteTo(w io.Writer) (int64, error) {
	if len(r.panels) == 0 {
		return 0, ErrNoData
	}

	var height vg.Length
	for _, p := range r.panels {
		height += vg.Length(p.weight) * r.unit
	}

	img := vgimg.New(r.width, height)
	for i, c := range r.cells(draw.New(img)) {
		r.panels[i].plot.Draw(c)
	}

	png := vgimg.PngCanvas{Canvas: img}
	n, err := png.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("failed to write reference plot: %w", err)
	}

	return n, nil
}

// cells unites the x ranges of the panels and returns one canvas per panel.
func (r *ReferencePlot) cells(dc draw.Canvas) []draw.Canvas {
	axes := make([]*plot.Axis, len(r.panels))
	grid := make([][]*plot.Plot, len(r.panels))
	weights := make([]float64, len(r.panels))
	for i, p := range r.panels {
		axes[i] = &p.plot.X
		grid[i] = []*plot.Plot{p.plot}
		weights[i] = p.weight
	}
	plotext.UniteAxisRanges(axes)

	tbl := plotext.Table{
		RowHeights: weights,
		ColWidths:  []float64{1},
		PadY:       vg.Points(4),
	}

	rows := tbl.Align(grid, dc)
	res := make([]draw.Canvas, len(rows))
	for i, row := range rows {
		res[i] = row[0]
	}
	return res
}

func timePanel(title, label string, pts plotter.XYs) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = label
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02\n15:04"}
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}

	p.Add(line)
	return p, nil
}
