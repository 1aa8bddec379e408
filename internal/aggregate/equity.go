package aggregate

import (
	"maps"
	"slices"

	"github.com/gamma-omg/tradeview/internal/trade"
)

// chronological returns the usable records ordered by open time. Records with
// equal open times keep their input order.
func chronological(records []trade.Record) []trade.Record {
	res := make([]trade.Record, 0, len(records))
	for _, r := range records {
		if r.Usable() {
			res = append(res, r)
		}
	}

	slices.SortStableFunc(res, func(a, b trade.Record) int {
		return a.OpenTime.Compare(b.OpenTime)
	})

	return res
}

func BuildEquityCurve(records []trade.Record) []EquityPoint {
	return runningSum(chronological(records))
}

func runningSum(sorted []trade.Record) []EquityPoint {
	res := make([]EquityPoint, 0, len(sorted))
	sum := 0.0
	for _, r := range sorted {
		v := *r.ResultPoints
		sum += v
		res = append(res, EquityPoint{
			Time:       r.OpenTime,
			Value:      v,
			Cumulative: sum,
		})
	}

	return res
}

// Results returns the result series in equity curve order.
func Results(records []trade.Record) []float64 {
	sorted := chronological(records)
	res := make([]float64, len(sorted))
	for i, r := range sorted {
		res[i] = *r.ResultPoints
	}
	return res
}

// Outcomes returns every present result in input order, timed or not. It is
// the record set of ComputeWinLossCounts.
func Outcomes(records []trade.Record) []float64 {
	res := make([]float64, 0, len(records))
	for _, r := range records {
		if v, ok := r.Result(); ok {
			res = append(res, v)
		}
	}
	return res
}

func ComputeWinLossCounts(records []trade.Record) WinLoss {
	var wl WinLoss
	for _, r := range records {
		v, ok := r.Result()
		if !ok {
			continue
		}

		switch {
		case v > 0:
			wl.Wins++
		case v < 0:
			wl.Losses++
		default:
			wl.Ties++
		}
	}

	return wl
}

// BuildEquityByRobot builds one equity curve per robot, ascending by robot id.
func BuildEquityByRobot(records []trade.Record) []RobotEquity {
	byRobot := map[int64][]trade.Record{}
	for _, r := range chronological(records) {
		byRobot[r.RobotID] = append(byRobot[r.RobotID], r)
	}

	res := make([]RobotEquity, 0, len(byRobot))
	for _, id := range slices.Sorted(maps.Keys(byRobot)) {
		res = append(res, RobotEquity{RobotID: id, Points: runningSum(byRobot[id])})
	}

	return res
}
