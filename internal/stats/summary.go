package stats

import (
	"math"

	"github.com/gamma-omg/tradeview/internal/aggregate"
	"github.com/gamma-omg/tradeview/internal/trade"
)

type Summary struct {
	Count        int
	Wins         int
	Losses       int
	Ties         int
	Total        float64
	Mean         float64
	WinRate      float64
	GrossProfit  float64
	GrossLoss    float64
	AvgGain      float64
	AvgLoss      float64
	Payoff       float64
	ProfitFactor float64
	LargestGain  float64
	LargestLoss  float64
}

// Summarize computes the headline trade statistics. Payoff and ProfitFactor
// are +Inf when there are gains but no losses.
func Summarize(results []float64) Summary {
	var s Summary
	s.Count = len(results)
	if s.Count == 0 {
		return s
	}

	for _, r := range results {
		s.Total += r
		switch {
		case r > 0:
			s.Wins++
			s.GrossProfit += r
			s.LargestGain = max(s.LargestGain, r)
		case r < 0:
			s.Losses++
			s.GrossLoss += r
			s.LargestLoss = min(s.LargestLoss, r)
		default:
			s.Ties++
		}
	}

	s.Mean = s.Total / float64(s.Count)
	s.WinRate = float64(s.Wins) / float64(s.Count) * 100
	if s.Wins > 0 {
		s.AvgGain = s.GrossProfit / float64(s.Wins)
	}
	if s.Losses > 0 {
		s.AvgLoss = s.GrossLoss / float64(s.Losses)
	}

	s.Payoff = ratio(s.AvgGain, s.AvgLoss)
	s.ProfitFactor = ratio(s.GrossProfit, s.GrossLoss)

	return s
}

func ratio(gain, loss float64) float64 {
	if loss == 0 {
		if gain > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return gain / math.Abs(loss)
}

// RecoveryFactor relates the net result to the largest drawdown in points.
func RecoveryFactor(total, maxDrawdownPoints float64) float64 {
	if maxDrawdownPoints == 0 {
		return 0
	}
	return total / math.Abs(maxDrawdownPoints)
}

type DayAnalysis struct {
	PositiveDays          int
	NegativeDays          int
	FlatDays              int
	WinRateOnPositiveDays float64
	WinRateOnNegativeDays float64
}

// AnalyzeDays classifies calendar days by their net result and reports the
// trade win rate inside winning and losing days.
func AnalyzeDays(records []trade.Record) DayAnalysis {
	days := map[string]float64{}
	for _, b := range aggregate.GroupByCalendarPeriod(records, aggregate.Day) {
		days[b.Key] = b.Total
	}

	var a DayAnalysis
	for _, total := range days {
		switch {
		case total > 0:
			a.PositiveDays++
		case total < 0:
			a.NegativeDays++
		default:
			a.FlatDays++
		}
	}

	var posWins, posTrades, negWins, negTrades int
	for _, r := range records {
		if !r.Usable() {
			continue
		}

		total := days[aggregate.Day.Key(r.OpenTime)]
		win := *r.ResultPoints > 0
		switch {
		case total > 0:
			posTrades++
			if win {
				posWins++
			}
		case total < 0:
			negTrades++
			if win {
				negWins++
			}
		}
	}

	if posTrades > 0 {
		a.WinRateOnPositiveDays = float64(posWins) / float64(posTrades) * 100
	}
	if negTrades > 0 {
		a.WinRateOnNegativeDays = float64(negWins) / float64(negTrades) * 100
	}

	return a
}
