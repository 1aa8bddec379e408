package aggregate

import (
	"fmt"
	"testing"
	"time"

	"github.com/gamma-omg/tradeview/internal/trade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByCalendarPeriod(t *testing.T) {
	in := []trade.Record{
		rec(t, "2024-02-10T09:00", 10),
		rec(t, "2024-01-31T17:00", -4),
		rec(t, "2024-01-31T09:00", 6),
		rec(t, "2023-12-01T09:00", 1),
		{ResultPoints: trade.Points(50)},
	}

	tbl := []struct {
		g   Granularity
		out []Bucket
	}{
		{
			g: Month,
			out: []Bucket{
				{Key: "2023-12", Total: 1, Count: 1},
				{Key: "2024-01", Total: 2, Count: 2},
				{Key: "2024-02", Total: 10, Count: 1},
			},
		},
		{
			g: Day,
			out: []Bucket{
				{Key: "2023-12-01", Total: 1, Count: 1},
				{Key: "2024-01-31", Total: 2, Count: 2},
				{Key: "2024-02-10", Total: 10, Count: 1},
			},
		},
	}

	for i, tc := range tbl {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			assert.Equal(t, tc.out, GroupByCalendarPeriod(in, tc.g))
		})
	}

	assert.Empty(t, GroupByCalendarPeriod(nil, Month))
}

func TestGroupByCalendarPeriodUsesTimeLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	utc := time.Date(2024, 2, 1, 1, 0, 0, 0, time.UTC)

	in := []trade.Record{{OpenTime: utc.In(loc), ResultPoints: trade.Points(5)}}

	out := GroupByCalendarPeriod(in, Month)
	require.Len(t, out, 1)
	assert.Equal(t, "2024-01", out[0].Key)
}

func TestBuildDailyBalance(t *testing.T) {
	in := []trade.Record{
		rec(t, "2024-01-02T09:00", -40),
		rec(t, "2024-01-01T09:00", 100),
		rec(t, "2024-01-01T11:00", 20),
	}

	assert.Equal(t, []DailyBalance{
		{Day: "2024-01-01", Result: 120, Balance: 120, Operations: 2},
		{Day: "2024-01-02", Result: -40, Balance: 80, Operations: 1},
	}, BuildDailyBalance(in))
}

func TestGroupByMinute(t *testing.T) {
	in := []trade.Record{
		rec(t, "2024-01-01T09:05", 10),
		rec(t, "2024-01-02T09:05", -4),
		rec(t, "2024-01-01T09:00", 3),
	}

	assert.Equal(t, []MinuteBucket{
		{Key: "09:00", Count: 1, Total: 3, Mean: 3},
		{Key: "09:05", Count: 2, Total: 6, Mean: 3},
	}, GroupByMinute(in))
}

func TestBuildHeatmap(t *testing.T) {
	in := []trade.Record{
		rec(t, "2024-01-02T10:15", 5),  // Tuesday
		rec(t, "2024-01-01T09:00", 1),  // Monday
		rec(t, "2024-01-08T09:30", -3), // Monday
	}

	assert.Equal(t, []HeatmapCell{
		{Weekday: time.Monday, Hour: 9, Total: -2, Count: 2},
		{Weekday: time.Tuesday, Hour: 10, Total: 5, Count: 1},
	}, BuildHeatmap(in))
}

func TestGroupByWeekday(t *testing.T) {
	in := []trade.Record{
		rec(t, "2024-01-01T09:00", 4),  // Monday
		rec(t, "2024-01-08T09:00", -2), // Monday
		rec(t, "2024-01-05T09:00", 3),  // Friday
	}

	out := GroupByWeekday(in)
	require.Len(t, out, 2)

	assert.Equal(t, time.Monday, out[0].Weekday)
	assert.Equal(t, 2, out[0].Operations)
	assert.InDelta(t, 2.0, out[0].Total, 1e-9)
	assert.InDelta(t, 1.0, out[0].Mean, 1e-9)
	assert.InDelta(t, 50.0, out[0].WinRate, 1e-9)

	assert.Equal(t, time.Friday, out[1].Weekday)
	assert.InDelta(t, 100.0, out[1].WinRate, 1e-9)
}
