package dashboard

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gamma-omg/tradeview/internal/config"
	"github.com/gamma-omg/tradeview/internal/trade"
	"github.com/stretchr/testify/require"
)

type mockSource struct {
	records func(ctx context.Context, q trade.Query) ([]trade.Record, error)
}

func (m *mockSource) Records(ctx context.Context, q trade.Query) ([]trade.Record, error) {
	return m.records(ctx, q)
}

func staticSource(records []trade.Record) *mockSource {
	return &mockSource{records: func(context.Context, trade.Query) ([]trade.Record, error) {
		return records, nil
	}}
}

func testConfig(t *testing.T, yml string) config.Config {
	t.Helper()

	cfg, err := config.Read(strings.NewReader(yml))
	require.NoError(t, err)
	return *cfg
}

func rec(t *testing.T, robot int64, asset, open string, result float64) trade.Record {
	t.Helper()

	ts, err := time.Parse("2006-01-02T15:04", open)
	require.NoError(t, err)
	return trade.Record{RobotID: robot, Asset: asset, OpenTime: ts, ResultPoints: trade.Points(result)}
}

func scenario(t *testing.T) []trade.Record {
	return []trade.Record{
		rec(t, 1, "WINFUT", "2024-01-01T09:00", 100),
		rec(t, 2, "WDOFUT", "2024-01-02T10:30", -40),
		rec(t, 1, "WINFUT", "2024-01-03T11:15", 25),
	}
}
