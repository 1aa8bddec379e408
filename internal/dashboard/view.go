package dashboard

import (
	"context"
	"fmt"

	"github.com/gamma-omg/tradeview/internal/aggregate"
	"github.com/gamma-omg/tradeview/internal/config"
	"github.com/gamma-omg/tradeview/internal/source/backend"
	"github.com/gamma-omg/tradeview/internal/stats"
	"github.com/gamma-omg/tradeview/internal/trade"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// View is every derived series and statistic of one recomputation cycle.
// All of it comes from the same record snapshot and the same settings.
type View struct {
	Seq     uint64
	Records int
	Trading config.Trading

	Equity       []aggregate.EquityPoint
	RobotEquity  []aggregate.RobotEquity
	Monthly      []aggregate.Bucket
	Daily        []aggregate.Bucket
	DailyBalance []aggregate.DailyBalance
	Assets       []aggregate.AssetTotal
	WinLoss      aggregate.WinLoss
	Scatter      []aggregate.ScatterPoint
	Intraday     aggregate.IntradaySeries
	Minutes      []aggregate.MinuteBucket
	Heatmap      []aggregate.HeatmapCell
	Weekdays     []aggregate.WeekdayStats

	Drawdown        stats.Drawdown
	Streaks         stats.Streaks
	Summary         stats.Summary
	Days            stats.DayAnalysis
	Distribution    stats.Distribution
	HasDistribution bool
	VaR95           float64
	VaR99           float64
	HasVaR          bool
	RecoveryFactor  float64

	Money Money

	// Server is the backend's own analytics, nil when the source has none.
	Server *backend.Insights
}

type Money struct {
	Total       decimal.Decimal
	GrossProfit decimal.Decimal
	GrossLoss   decimal.Decimal
	MaxDrawdown decimal.Decimal
	VaR95       decimal.Decimal
	VaR99       decimal.Decimal
	Margin      decimal.Decimal
	ReturnPct   float64
}

// Build derives the view from records. Independent derivations run
// concurrently; none of them mutate records.
func Build(ctx context.Context, records []trade.Record, cfg config.Config) (*View, error) {
	method, err := config.ParsePercentile(cfg.Charts.Percentile)
	if err != nil {
		return nil, err
	}

	v := &View{
		Records: len(records),
		Trading: cfg.Trading,
	}

	g, gctx := errgroup.WithContext(ctx)
	run := func(f func()) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f()
			return nil
		})
	}

	run(func() {
		v.Equity = aggregate.BuildEquityCurve(records)
		v.Drawdown = stats.ComputeDrawdown(v.Equity)
	})
	run(func() { v.Streaks = stats.ComputeStreaks(aggregate.Results(records)) })
	run(func() {
		// untimed results count here as they do in the win/loss split
		outcomes := aggregate.Outcomes(records)
		v.Summary = stats.Summarize(outcomes)
		v.Distribution, v.HasDistribution = stats.ComputeDistributionStats(outcomes, cfg.Charts.Bins)
		v.VaR95, v.HasVaR = stats.ValueAtRisk(outcomes, 0.95, method)
		v.VaR99, _ = stats.ValueAtRisk(outcomes, 0.99, method)
	})
	run(func() { v.RobotEquity = aggregate.BuildEquityByRobot(records) })
	run(func() { v.Monthly = aggregate.GroupByCalendarPeriod(records, aggregate.Month) })
	run(func() {
		v.Daily = aggregate.GroupByCalendarPeriod(records, aggregate.Day)
		v.DailyBalance = aggregate.BuildDailyBalance(records)
	})
	run(func() { v.Assets = aggregate.GroupByAsset(records) })
	run(func() { v.WinLoss = aggregate.ComputeWinLossCounts(records) })
	run(func() { v.Scatter = aggregate.BuildScatterSeries(records, cfg.Charts.Window()) })
	run(func() { v.Intraday = aggregate.BuildIntradayEvolution(records, cfg.Charts.IntradayDay) })
	run(func() { v.Minutes = aggregate.GroupByMinute(records) })
	run(func() { v.Heatmap = aggregate.BuildHeatmap(records) })
	run(func() { v.Weekdays = aggregate.GroupByWeekday(records) })
	run(func() { v.Days = stats.AnalyzeDays(records) })

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build dashboard view: %w", err)
	}

	v.RecoveryFactor = stats.RecoveryFactor(v.Summary.Total, v.Drawdown.MaxPoints)
	v.Money = valueIn(v, cfg.Trading)

	return v, nil
}

func valueIn(v *View, t config.Trading) Money {
	val := t.Valuation()
	m := Money{
		Total:       val.Money(v.Summary.Total),
		GrossProfit: val.Money(v.Summary.GrossProfit),
		GrossLoss:   val.Money(v.Summary.GrossLoss),
		MaxDrawdown: val.Money(v.Drawdown.MaxPoints),
		Margin:      t.TotalMargin(),
	}
	if v.HasVaR {
		m.VaR95 = val.Money(v.VaR95)
		m.VaR99 = val.Money(v.VaR99)
	}
	m.ReturnPct = val.ReturnPct(m.Total, m.Margin)

	return m
}
