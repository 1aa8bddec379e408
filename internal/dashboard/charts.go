package dashboard

import (
	"fmt"

	"github.com/gamma-omg/tradeview/internal/render"
)

// Charts lists every chart of the view, in display order.
func (v *View) Charts() []render.Chart {
	equity := make([]float64, len(v.Equity))
	for i, p := range v.Equity {
		equity[i] = p.Cumulative
	}

	drawdown := make([]float64, len(v.Drawdown.Samples))
	for i, s := range v.Drawdown.Samples {
		drawdown[i] = s.DrawdownPercent
	}

	monthly, monthLabels := bucketSeries(len(v.Monthly), func(i int) (string, float64) {
		return v.Monthly[i].Key, v.Monthly[i].Total
	})
	balance, _ := bucketSeries(len(v.DailyBalance), func(i int) (string, float64) {
		return v.DailyBalance[i].Day, v.DailyBalance[i].Balance
	})
	ops, dayLabels := bucketSeries(len(v.DailyBalance), func(i int) (string, float64) {
		return v.DailyBalance[i].Day[5:], float64(v.DailyBalance[i].Operations)
	})
	assets, assetLabels := bucketSeries(len(v.Assets), func(i int) (string, float64) {
		return v.Assets[i].Asset, v.Assets[i].Total
	})
	minutes, minuteLabels := bucketSeries(len(v.Minutes), func(i int) (string, float64) {
		return v.Minutes[i].Key, v.Minutes[i].Mean
	})

	robots := make([][]float64, len(v.RobotEquity))
	robotLabels := make([]string, len(v.RobotEquity))
	for i, re := range v.RobotEquity {
		robots[i] = make([]float64, len(re.Points))
		for j, p := range re.Points {
			robots[i][j] = p.Cumulative
		}
		robotLabels[i] = fmt.Sprintf("robot %d", re.RobotID)
	}

	intraday := make([]float64, len(v.Intraday.Points))
	for i, p := range v.Intraday.Points {
		intraday[i] = p.Cumulative
	}

	var hist []float64
	var histLabels []string
	for _, b := range v.Distribution.Bins {
		hist = append(hist, float64(b.Count))
		histLabels = append(histLabels, fmt.Sprintf("%.0f", b.Lower))
	}

	var winLoss []float64
	var winLossLabels []string
	if v.WinLoss.Total() > 0 {
		winLoss = []float64{float64(v.WinLoss.Wins), float64(v.WinLoss.Losses), float64(v.WinLoss.Ties)}
		winLossLabels = []string{"Wins", "Losses", "Ties"}
	}

	return []render.Chart{
		{Name: "equity", Title: "Equity curve", Kind: render.KindArea, Values: equity},
		{Name: "robot_equity", Title: "Equity by robot", Kind: render.KindMultiLine, Series: robots, Labels: robotLabels},
		{Name: "drawdown", Title: "Drawdown %", Kind: render.KindArea, Values: drawdown},
		{Name: "monthly", Title: "Monthly result", Kind: render.KindBar, Values: monthly, Labels: monthLabels},
		{Name: "daily_balance", Title: "Daily balance", Kind: render.KindLine, Values: balance},
		{Name: "daily_operations", Title: "Operations per day", Kind: render.KindBar, Values: ops, Labels: dayLabels},
		{Name: "assets", Title: "Result by asset", Kind: render.KindPie, Values: assets, Labels: assetLabels},
		{Name: "win_loss", Title: "Wins and losses", Kind: render.KindPie, Values: winLoss, Labels: winLossLabels},
		{Name: "scatter", Title: "Result by time of day", Kind: render.KindScatter, Points: v.Scatter},
		{Name: "intraday", Title: "Intraday evolution " + v.Intraday.Day, Kind: render.KindLine, Values: intraday},
		{Name: "minutes", Title: "Mean result by minute", Kind: render.KindBar, Values: minutes, Labels: minuteLabels},
		{Name: "heatmap", Title: "Weekday x hour", Kind: render.KindHeatmap, Cells: v.Heatmap},
		{Name: "distribution", Title: "Result distribution", Kind: render.KindBar, Values: hist, Labels: histLabels},
	}
}

func bucketSeries(n int, at func(i int) (string, float64)) ([]float64, []string) {
	values := make([]float64, n)
	labels := make([]string, n)
	for i := range n {
		labels[i], values[i] = at(i)
	}
	return values, labels
}
