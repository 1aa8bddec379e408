package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gamma-omg/tradeview/internal/config"
	"github.com/gamma-omg/tradeview/internal/source"
	"github.com/gamma-omg/tradeview/internal/source/backend"
	"github.com/gamma-omg/tradeview/internal/trade"
	"golang.org/x/sync/errgroup"
)

// insightSource is a source that also serves analytics computed server side.
type insightSource interface {
	Insights(ctx context.Context, robot *int64) (backend.Insights, error)
}

// ErrStale is returned by a refresh that was overtaken by a later one.
var ErrStale = errors.New("refresh superseded by a newer one")

// Refresher runs recomputation cycles against a source. Starting a cycle
// cancels the one in flight; only the most recently started cycle may publish
// its view.
type Refresher struct {
	log *slog.Logger
	src source.Source

	seq    atomic.Uint64
	mu     sync.Mutex
	cancel context.CancelFunc
	latest *View
}

func NewRefresher(log *slog.Logger, src source.Source) *Refresher {
	return &Refresher{
		log: log,
		src: src,
	}
}

func (r *Refresher) Refresh(ctx context.Context, cfg config.Config) (*View, error) {
	seq := r.seq.Add(1)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	r.cancel = cancel
	r.mu.Unlock()

	q := trade.Query{Robots: cfg.Filter.Robots}
	if b, ok := cfg.SourceRef.Source.(config.Backend); ok {
		q.Schema = b.Schema
	}

	var records []trade.Record
	var server *backend.Insights

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if records, err = r.src.Records(gctx, q); err != nil {
			return fmt.Errorf("failed to fetch records: %w", err)
		}
		return nil
	})
	if is, ok := r.src.(insightSource); ok {
		g.Go(func() error {
			ins, err := is.Insights(gctx, singleRobot(cfg.Filter.Robots))
			if err != nil {
				r.log.Warn("server analytics unavailable", "error", err)
				return nil
			}
			server = &ins
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if r.superseded(seq) {
			return nil, ErrStale
		}
		return nil, err
	}

	filtered := cfg.Filter.Trade().Apply(records)
	v, err := Build(ctx, filtered, cfg)
	if err != nil {
		if r.superseded(seq) {
			return nil, ErrStale
		}
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.superseded(seq) {
		r.log.Debug("stale view discarded", slog.Uint64("seq", seq))
		return nil, ErrStale
	}

	v.Seq = seq
	v.Server = server
	r.latest = v
	r.log.Info("dashboard refreshed",
		slog.Uint64("seq", seq),
		slog.Int("fetched", len(records)),
		slog.Int("used", len(filtered)),
		slog.Float64("total", v.Summary.Total))

	return v, nil
}

// Latest returns the last published view, or nil before the first one.
func (r *Refresher) Latest() *View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.latest
}

// singleRobot narrows server analytics to the robot when exactly one is
// selected.
func singleRobot(robots []int64) *int64 {
	if len(robots) != 1 {
		return nil
	}
	id := robots[0]
	return &id
}

func (r *Refresher) superseded(seq uint64) bool {
	return r.seq.Load() != seq
}
