package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gamma-omg/tradeview/internal/config"
	"github.com/gamma-omg/tradeview/internal/trade"
	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPageSize    = 1000
	defaultMaxRecords  = 10000
	defaultConcurrency = 4
	defaultTimeout     = 15 * time.Second
)

var timeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type Client struct {
	log    *slog.Logger
	cfg    config.Backend
	loc    *time.Location
	client *resty.Client
}

func NewClient(log *slog.Logger, cfg config.Backend, loc *time.Location, opts ...func(*resty.Client)) (*Client, error) {
	if strings.TrimSpace(cfg.BaseUrl) == "" {
		return nil, errors.New("backend base_url is required")
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.MaxRecords <= 0 {
		cfg.MaxRecords = defaultMaxRecords
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if loc == nil {
		loc = time.Local
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseUrl, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.Timeout)

	for _, opt := range opts {
		opt(client)
	}

	return &Client{
		log:    log,
		cfg:    cfg,
		loc:    loc,
		client: client,
	}, nil
}

// Records fetches the trades matching q. Each robot of q is paged through on
// its own request stream; results are concatenated in robot order.
func (c *Client) Records(ctx context.Context, q trade.Query) ([]trade.Record, error) {
	if q.Schema == "" {
		q.Schema = c.cfg.Schema
	}

	if len(q.Robots) == 0 {
		return c.fetchAll(ctx, q, nil)
	}

	parts := make([][]trade.Record, len(q.Robots))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Concurrency)
	for i, robot := range q.Robots {
		g.Go(func() error {
			recs, err := c.fetchAll(gctx, q, &robot)
			if err != nil {
				return fmt.Errorf("failed to fetch robot %d records: %w", robot, err)
			}
			parts[i] = recs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var res []trade.Record
	for _, p := range parts {
		res = append(res, p...)
	}

	return res, nil
}

func (c *Client) fetchAll(ctx context.Context, q trade.Query, robot *int64) ([]trade.Record, error) {
	want := c.cfg.MaxRecords
	if q.Limit > 0 {
		want = min(want, q.Limit)
	}

	var res []trade.Record
	skip := q.Skip
	for len(res) < want {
		size := min(c.cfg.PageSize, want-len(res))
		page, err := c.fetchPage(ctx, q.Schema, robot, skip, size)
		if err != nil {
			return nil, err
		}

		for _, r := range page {
			res = append(res, c.toRecord(r))
		}

		if len(page) < size {
			break
		}
		skip += len(page)
	}

	return res, nil
}

func (c *Client) fetchPage(ctx context.Context, schema string, robot *int64, skip, limit int) ([]record, error) {
	var payload []record

	req := c.client.R().
		SetContext(ctx).
		SetQueryParam("skip", strconv.Itoa(skip)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&payload)
	if schema != "" {
		req.SetQueryParam("schema", schema)
	}
	if robot != nil {
		req.SetQueryParam("robo_id", strconv.FormatInt(*robot, 10))
	}

	resp, err := req.Get("/operacoes")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}
	if resp.StatusCode() >= 400 {
		return nil, fmt.Errorf("backend responded with status %d", resp.StatusCode())
	}

	c.log.Debug("records page fetched",
		slog.Int("skip", skip),
		slog.Int("limit", limit),
		slog.Int("count", len(payload)))

	return payload, nil
}

func (c *Client) toRecord(r record) trade.Record {
	res := trade.Record{
		ID:           r.ID,
		RobotID:      r.RobotID,
		Quantity:     r.Lots,
		ResultPoints: r.Result,
		Type:         trade.Unknown,
	}

	if r.Asset != nil {
		res.Asset = strings.TrimSpace(*r.Asset)
	}
	if r.Type != nil {
		res.Type = trade.ParseSide(strings.TrimSpace(*r.Type))
	}

	if r.OpenTime != nil {
		t, err := c.parseTime(*r.OpenTime)
		if err != nil {
			c.log.Debug("unparseable open time",
				slog.Int64("id", r.ID),
				slog.String("value", *r.OpenTime))
		} else {
			res.OpenTime = t
		}
	}
	if r.CloseTime != nil {
		if t, err := c.parseTime(*r.CloseTime); err == nil {
			res.CloseTime = &t
		}
	}

	if r.Result == nil {
		c.log.Debug("record without result", slog.Int64("id", r.ID))
	}

	return res
}

// parseTime accepts RFC 3339 timestamps and zone-less ones, which are taken
// in the configured location.
func (c *Client) parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(c.loc), nil
	}

	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, c.loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported time format: %q", s)
}

// Insights fetches the server side risk metrics and seasonal breakdown
// concurrently. A nil robot asks for all robots.
func (c *Client) Insights(ctx context.Context, robot *int64) (Insights, error) {
	var ins Insights

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var m RiskMetrics
		if err := c.getAnalytics(gctx, "/analytics-advanced/metricas-risco-avancadas", robot, &m); err != nil {
			return fmt.Errorf("failed to fetch risk metrics: %w", err)
		}
		ins.Risk = &m
		return nil
	})
	g.Go(func() error {
		var s Seasonal
		if err := c.getAnalytics(gctx, "/analytics-advanced/analise-sazonal", robot, &s); err != nil {
			return fmt.Errorf("failed to fetch seasonal analysis: %w", err)
		}
		ins.Seasonal = &s
		return nil
	})

	if err := g.Wait(); err != nil {
		return Insights{}, err
	}

	return ins, nil
}

func (c *Client) getAnalytics(ctx context.Context, path string, robot *int64, out any) error {
	req := c.client.R().
		SetContext(ctx).
		SetResult(out)
	if robot != nil {
		req.SetQueryParam("robo_id", strconv.FormatInt(*robot, 10))
	}

	resp, err := req.Get(path)
	if err != nil {
		return err
	}
	if resp.StatusCode() >= 400 {
		return fmt.Errorf("backend responded with status %d", resp.StatusCode())
	}

	return nil
}
