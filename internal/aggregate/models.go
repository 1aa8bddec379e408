package aggregate

import (
	"time"
)

type EquityPoint struct {
	Time       time.Time
	Value      float64
	Cumulative float64
}

type Granularity int

const (
	Month Granularity = iota
	Day
)

func (g Granularity) layout() string {
	if g == Day {
		return "2006-01-02"
	}
	return "2006-01"
}

// Key formats t as the calendar period it belongs to.
func (g Granularity) Key(t time.Time) string {
	return t.Format(g.layout())
}

type RobotEquity struct {
	RobotID int64
	Points  []EquityPoint
}

type Bucket struct {
	Key   string
	Total float64
	Count int
}

type AssetTotal struct {
	Asset string
	Total float64
	Count int
}

type WinLoss struct {
	Wins   int
	Losses int
	Ties   int
}

func (w WinLoss) Total() int {
	return w.Wins + w.Losses + w.Ties
}

// WinRate is the share of wins among all counted results, in percent.
func (w WinLoss) WinRate() float64 {
	if w.Total() == 0 {
		return 0
	}
	return float64(w.Wins) / float64(w.Total()) * 100
}

type ScatterPoint struct {
	Hour        int
	Minute      int
	Result      float64
	DisplayTime string
}

// Window is an inclusive range of hours of day.
type Window struct {
	Start int
	End   int
}

var DefaultWindow = Window{Start: 9, End: 18}

func (w Window) Contains(hour int) bool {
	return hour >= w.Start && hour <= w.End
}

type IntradaySeries struct {
	Day    string
	Points []EquityPoint
}

type DailyBalance struct {
	Day        string
	Result     float64
	Balance    float64
	Operations int
}

type MinuteBucket struct {
	Key   string
	Count int
	Total float64
	Mean  float64
}

type HeatmapCell struct {
	Weekday time.Weekday
	Hour    int
	Total   float64
	Count   int
}

type WeekdayStats struct {
	Weekday    time.Weekday
	Operations int
	Total      float64
	Mean       float64
	WinRate    float64
}
