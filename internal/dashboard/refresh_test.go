package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/gamma-omg/tradeview/internal/source/backend"
	"github.com/gamma-omg/tradeview/internal/trade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefresh(t *testing.T) {
	var got trade.Query
	src := &mockSource{records: func(_ context.Context, q trade.Query) ([]trade.Record, error) {
		got = q
		return scenario(t), nil
	}}
	cfg := testConfig(t, `
filter:
  robots: [1]
source:
  backend:
    base_url: http://localhost
    schema: demo
`)

	r := NewRefresher(slog.New(slog.DiscardHandler), src)
	assert.Nil(t, r.Latest())

	v, err := r.Refresh(t.Context(), cfg)
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, got.Robots)
	assert.Equal(t, "demo", got.Schema)
	assert.Equal(t, uint64(1), v.Seq)
	assert.Equal(t, 2, v.Records)
	assert.Equal(t, 125.0, v.Summary.Total)
	assert.Same(t, v, r.Latest())
}

func TestRefreshSourceError(t *testing.T) {
	boom := errors.New("boom")
	src := &mockSource{records: func(context.Context, trade.Query) ([]trade.Record, error) {
		return nil, boom
	}}

	r := NewRefresher(slog.New(slog.DiscardHandler), src)
	_, err := r.Refresh(t.Context(), testConfig(t, ""))

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrStale)
	assert.Nil(t, r.Latest())
}

func TestRefreshCancelsPrevious(t *testing.T) {
	entered := make(chan struct{})
	calls := 0
	src := &mockSource{records: func(ctx context.Context, _ trade.Query) ([]trade.Record, error) {
		calls++
		if calls == 1 {
			close(entered)
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return scenario(t), nil
	}}

	r := NewRefresher(slog.New(slog.DiscardHandler), src)
	cfg := testConfig(t, "")

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = r.Refresh(t.Context(), cfg)
	}()

	<-entered
	v, err := r.Refresh(t.Context(), cfg)
	require.NoError(t, err)
	wg.Wait()

	assert.ErrorIs(t, firstErr, ErrStale)
	assert.Equal(t, uint64(2), v.Seq)
	assert.Same(t, v, r.Latest())
}

func TestRefreshDiscardsLateResult(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	calls := 0
	src := &mockSource{records: func(ctx context.Context, _ trade.Query) ([]trade.Record, error) {
		calls++
		if calls == 1 {
			close(entered)
			<-release
			return scenario(t)[:1], nil
		}
		return scenario(t), nil
	}}

	r := NewRefresher(slog.New(slog.DiscardHandler), src)
	cfg := testConfig(t, "")

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = r.Refresh(context.Background(), cfg)
	}()

	<-entered
	v, err := r.Refresh(t.Context(), cfg)
	require.NoError(t, err)

	close(release)
	wg.Wait()

	assert.ErrorIs(t, firstErr, ErrStale)
	assert.Same(t, v, r.Latest())
	assert.Equal(t, 3, r.Latest().Records)
}

type mockInsightSource struct {
	mockSource
	insights func(ctx context.Context, robot *int64) (backend.Insights, error)
}

func (m *mockInsightSource) Insights(ctx context.Context, robot *int64) (backend.Insights, error) {
	return m.insights(ctx, robot)
}

func TestRefreshServerInsights(t *testing.T) {
	maxDD := -12.5
	tbl := []struct {
		robots    string
		wantRobot *int64
		fail      bool
	}{
		{robots: "[1]", wantRobot: func() *int64 { id := int64(1); return &id }()},
		{robots: "[1, 2]"},
		{robots: "[]"},
		{robots: "[1]", fail: true},
	}

	for i, tc := range tbl {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			var gotRobot *int64
			src := &mockInsightSource{
				mockSource: *staticSource(scenario(t)),
				insights: func(_ context.Context, robot *int64) (backend.Insights, error) {
					gotRobot = robot
					if tc.fail {
						return backend.Insights{}, errors.New("metrics down")
					}
					return backend.Insights{Risk: &backend.RiskMetrics{
						Drawdown: &backend.Drawdown{MaxPercent: &maxDD},
					}}, nil
				},
			}

			r := NewRefresher(slog.New(slog.DiscardHandler), src)
			v, err := r.Refresh(t.Context(), testConfig(t, "filter:\n  robots: "+tc.robots))
			require.NoError(t, err)

			assert.Equal(t, tc.wantRobot, gotRobot)
			assert.NotZero(t, v.Summary.Count)
			if tc.fail {
				assert.Nil(t, v.Server)
				return
			}
			require.NotNil(t, v.Server)
			assert.Equal(t, -12.5, *v.Server.Risk.Drawdown.MaxPercent)
		})
	}
}

func TestRefreshWithoutServerInsights(t *testing.T) {
	r := NewRefresher(slog.New(slog.DiscardHandler), staticSource(scenario(t)))

	v, err := r.Refresh(t.Context(), testConfig(t, ""))
	require.NoError(t, err)
	assert.Nil(t, v.Server)
}
