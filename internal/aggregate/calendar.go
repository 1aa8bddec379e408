package aggregate

import (
	"cmp"
	"maps"
	"slices"
	"time"

	"github.com/gamma-omg/tradeview/internal/trade"
)

// GroupByCalendarPeriod sums results per calendar month or day of the open
// time, taken in the location the time carries.
func GroupByCalendarPeriod(records []trade.Record, g Granularity) []Bucket {
	buckets := map[string]*Bucket{}
	for _, r := range records {
		if !r.Usable() {
			continue
		}

		key := g.Key(r.OpenTime)
		b, ok := buckets[key]
		if !ok {
			b = &Bucket{Key: key}
			buckets[key] = b
		}
		b.Total += *r.ResultPoints
		b.Count++
	}

	res := make([]Bucket, 0, len(buckets))
	for _, k := range slices.Sorted(maps.Keys(buckets)) {
		res = append(res, *buckets[k])
	}

	return res
}

func BuildDailyBalance(records []trade.Record) []DailyBalance {
	days := GroupByCalendarPeriod(records, Day)

	res := make([]DailyBalance, len(days))
	balance := 0.0
	for i, d := range days {
		balance += d.Total
		res[i] = DailyBalance{
			Day:        d.Key,
			Result:     d.Total,
			Balance:    balance,
			Operations: d.Count,
		}
	}

	return res
}

func GroupByMinute(records []trade.Record) []MinuteBucket {
	buckets := map[string]*MinuteBucket{}
	for _, r := range records {
		if !r.Usable() {
			continue
		}

		key := r.OpenTime.Format("15:04")
		b, ok := buckets[key]
		if !ok {
			b = &MinuteBucket{Key: key}
			buckets[key] = b
		}
		b.Total += *r.ResultPoints
		b.Count++
	}

	res := make([]MinuteBucket, 0, len(buckets))
	for _, k := range slices.Sorted(maps.Keys(buckets)) {
		b := buckets[k]
		b.Mean = b.Total / float64(b.Count)
		res = append(res, *b)
	}

	return res
}

// BuildHeatmap sums results per weekday and hour of day. Only cells with at
// least one record are returned, ordered by weekday then hour.
func BuildHeatmap(records []trade.Record) []HeatmapCell {
	type cellKey struct {
		day  time.Weekday
		hour int
	}

	cells := map[cellKey]*HeatmapCell{}
	for _, r := range records {
		if !r.Usable() {
			continue
		}

		k := cellKey{r.OpenTime.Weekday(), r.OpenTime.Hour()}
		c, ok := cells[k]
		if !ok {
			c = &HeatmapCell{Weekday: k.day, Hour: k.hour}
			cells[k] = c
		}
		c.Total += *r.ResultPoints
		c.Count++
	}

	res := make([]HeatmapCell, 0, len(cells))
	for _, c := range cells {
		res = append(res, *c)
	}
	slices.SortFunc(res, func(a, b HeatmapCell) int {
		return cmp.Or(cmp.Compare(a.Weekday, b.Weekday), cmp.Compare(a.Hour, b.Hour))
	})

	return res
}

func GroupByWeekday(records []trade.Record) []WeekdayStats {
	var days [7]WeekdayStats
	var wins [7]int
	for _, r := range records {
		if !r.Usable() {
			continue
		}

		d := r.OpenTime.Weekday()
		days[d].Operations++
		days[d].Total += *r.ResultPoints
		if *r.ResultPoints > 0 {
			wins[d]++
		}
	}

	var res []WeekdayStats
	for d := range days {
		s := days[d]
		if s.Operations == 0 {
			continue
		}

		s.Weekday = time.Weekday(d)
		s.Mean = s.Total / float64(s.Operations)
		s.WinRate = float64(wins[d]) / float64(s.Operations) * 100
		res = append(res, s)
	}

	return res
}
