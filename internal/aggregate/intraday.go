package aggregate

import (
	"github.com/gamma-omg/tradeview/internal/trade"
)

// BuildScatterSeries maps records to their time of day, keeping those whose
// hour falls inside the window. Points are in chronological order.
func BuildScatterSeries(records []trade.Record, w Window) []ScatterPoint {
	var res []ScatterPoint
	for _, r := range chronological(records) {
		h := r.OpenTime.Hour()
		if !w.Contains(h) {
			continue
		}

		res = append(res, ScatterPoint{
			Hour:        h,
			Minute:      r.OpenTime.Minute(),
			Result:      *r.ResultPoints,
			DisplayTime: r.OpenTime.Format("15:04"),
		})
	}

	return res
}

// BuildIntradayEvolution builds the running sum of a single day. An empty key
// selects the busiest day, the earliest one on ties.
func BuildIntradayEvolution(records []trade.Record, dayKey string) IntradaySeries {
	if dayKey == "" {
		best := 0
		for _, d := range GroupByCalendarPeriod(records, Day) {
			if d.Count > best {
				best = d.Count
				dayKey = d.Key
			}
		}
	}

	if dayKey == "" {
		return IntradaySeries{}
	}

	var day []trade.Record
	for _, r := range chronological(records) {
		if Day.Key(r.OpenTime) == dayKey {
			day = append(day, r)
		}
	}

	return IntradaySeries{
		Day:    dayKey,
		Points: runningSum(day),
	}
}
