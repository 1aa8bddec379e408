package trade

import (
	"slices"
	"time"
)

type Filter struct {
	Robots     []int64
	From       time.Time
	Until      time.Time
	Weekdays   []time.Weekday
	StartClock string
	EndClock   string
}

// Apply returns the records matching every configured criterion. Criteria that
// depend on the open time reject untimed records. Clock bounds that do not
// parse as HH:MM are ignored.
func (f Filter) Apply(records []Record) []Record {
	start, hasStart := parseClock(f.StartClock)
	end, hasEnd := parseClock(f.EndClock)
	timed := !f.From.IsZero() || !f.Until.IsZero() || len(f.Weekdays) > 0 || hasStart || hasEnd

	res := make([]Record, 0, len(records))
	for _, r := range records {
		if len(f.Robots) > 0 && !slices.Contains(f.Robots, r.RobotID) {
			continue
		}

		if timed && !r.Timed() {
			continue
		}
		if !f.From.IsZero() && r.OpenTime.Before(f.From) {
			continue
		}
		if !f.Until.IsZero() && r.OpenTime.After(f.Until) {
			continue
		}
		if len(f.Weekdays) > 0 && !slices.Contains(f.Weekdays, r.OpenTime.Weekday()) {
			continue
		}

		clock := r.OpenTime.Hour()*60 + r.OpenTime.Minute()
		if hasStart && clock < start {
			continue
		}
		if hasEnd && clock > end {
			continue
		}

		res = append(res, r)
	}

	return res
}

func parseClock(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}

	return t.Hour()*60 + t.Minute(), true
}
