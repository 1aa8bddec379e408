package aggregate

import (
	"testing"
	"time"

	"github.com/gamma-omg/tradeview/internal/trade"
)

func at(t *testing.T, s string) time.Time {
	t.Helper()

	ts, err := time.Parse("2006-01-02T15:04", s)
	if err != nil {
		t.Fatalf("bad test time %q: %v", s, err)
	}
	return ts
}

func rec(t *testing.T, open string, result float64) trade.Record {
	t.Helper()

	return trade.Record{OpenTime: at(t, open), ResultPoints: trade.Points(result)}
}

func cumulative(points []EquityPoint) []float64 {
	res := make([]float64, len(points))
	for i, p := range points {
		res[i] = p.Cumulative
	}
	return res
}
