package report

import (
	"strings"
	"testing"
	"time"

	"github.com/gamma-omg/tradeview/internal/config"
	"github.com/gamma-omg/tradeview/internal/dashboard"
	"github.com/gamma-omg/tradeview/internal/trade"
	"github.com/stretchr/testify/require"
)

func rec(t *testing.T, asset, open string, result float64) trade.Record {
	t.Helper()

	ts, err := time.Parse("2006-01-02T15:04", open)
	require.NoError(t, err)
	return trade.Record{Asset: asset, OpenTime: ts, ResultPoints: trade.Points(result)}
}

func buildView(t *testing.T, records ...trade.Record) *dashboard.View {
	t.Helper()

	cfg, err := config.Read(strings.NewReader(""))
	require.NoError(t, err)

	v, err := dashboard.Build(t.Context(), records, *cfg)
	require.NoError(t, err)
	return v
}

func scenario(t *testing.T) *dashboard.View {
	return buildView(t,
		rec(t, "WINFUT", "2024-01-01T09:00", 100),
		rec(t, "WDOFUT", "2024-01-02T10:30", -40),
		rec(t, "WINFUT", "2024-01-03T11:15", 25),
	)
}
