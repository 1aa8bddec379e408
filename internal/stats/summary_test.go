package stats

import (
	"math"
	"testing"
	"time"

	"github.com/gamma-omg/tradeview/internal/trade"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{100, -40, 25, 0})

	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.Equal(t, 1, s.Ties)
	assert.InDelta(t, 85.0, s.Total, 1e-9)
	assert.InDelta(t, 21.25, s.Mean, 1e-9)
	assert.InDelta(t, 50.0, s.WinRate, 1e-9)
	assert.InDelta(t, 125.0, s.GrossProfit, 1e-9)
	assert.InDelta(t, -40.0, s.GrossLoss, 1e-9)
	assert.InDelta(t, 62.5, s.AvgGain, 1e-9)
	assert.InDelta(t, -40.0, s.AvgLoss, 1e-9)
	assert.InDelta(t, 1.5625, s.Payoff, 1e-9)
	assert.InDelta(t, 3.125, s.ProfitFactor, 1e-9)
	assert.Equal(t, 100.0, s.LargestGain)
	assert.Equal(t, -40.0, s.LargestLoss)
}

func TestSummarizeNoLosses(t *testing.T) {
	s := Summarize([]float64{5, 5})
	assert.True(t, math.IsInf(s.ProfitFactor, 1))
	assert.True(t, math.IsInf(s.Payoff, 1))

	s = Summarize([]float64{0})
	assert.Zero(t, s.ProfitFactor)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestRecoveryFactor(t *testing.T) {
	assert.InDelta(t, 2.125, RecoveryFactor(85, -40), 1e-9)
	assert.Zero(t, RecoveryFactor(85, 0))
}

func TestAnalyzeDays(t *testing.T) {
	day := func(d, h int, r float64) trade.Record {
		return trade.Record{
			OpenTime:     time.Date(2024, 1, d, h, 0, 0, 0, time.UTC),
			ResultPoints: trade.Points(r),
		}
	}

	a := AnalyzeDays([]trade.Record{
		day(1, 9, 10), day(1, 10, -2),
		day(2, 9, -5), day(2, 10, -1),
		day(3, 9, 3), day(3, 10, -3),
		{ResultPoints: trade.Points(100)},
	})

	assert.Equal(t, DayAnalysis{
		PositiveDays:          1,
		NegativeDays:          1,
		FlatDays:              1,
		WinRateOnPositiveDays: 50,
		WinRateOnNegativeDays: 0,
	}, a)
}
