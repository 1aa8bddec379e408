package alpaca

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/gamma-omg/tradeview/internal/config"
	"github.com/gamma-omg/tradeview/internal/trade"
	"github.com/shopspring/decimal"
)

const maxOrders = 500

// OrderHistory turns filled Alpaca orders into round-trip trade records.
type OrderHistory struct {
	log *slog.Logger
	cfg config.Alpaca
	loc *time.Location
	api alpacaApi
}

func NewOrderHistory(log *slog.Logger, cfg config.Alpaca, loc *time.Location) *OrderHistory {
	if loc == nil {
		loc = time.Local
	}

	return &OrderHistory{
		log: log,
		cfg: cfg,
		loc: loc,
		api: newAlpacaApi(cfg.ApiKey, cfg.Secret, cfg.BaseUrl),
	}
}

func (h *OrderHistory) Records(ctx context.Context, q trade.Query) ([]trade.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	limit := h.cfg.Limit
	if q.Limit > 0 {
		limit = q.Limit
	}
	if limit <= 0 || limit > maxOrders {
		limit = maxOrders
	}

	orders, err := h.api.GetOrders(alpaca.GetOrdersRequest{
		Status:    "closed",
		Limit:     limit,
		After:     h.cfg.After,
		Until:     h.cfg.Until,
		Direction: "asc",
		Symbols:   h.cfg.Symbols,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get alpaca orders: %w", err)
	}

	recs := pairFills(orders)
	for i := range recs {
		recs[i].OpenTime = recs[i].OpenTime.In(h.loc)
		if recs[i].CloseTime != nil {
			ct := recs[i].CloseTime.In(h.loc)
			recs[i].CloseTime = &ct
		}
	}

	h.log.Debug("alpaca orders paired",
		slog.Int("orders", len(orders)),
		slog.Int("records", len(recs)))

	return recs, nil
}

type lot struct {
	side  alpaca.Side
	time  time.Time
	price decimal.Decimal
	qty   decimal.Decimal
}

// pairFills matches opposite fills per symbol in fill order, first in first
// out. A fill larger than the open lots opens a new position with the rest.
func pairFills(orders []alpaca.Order) []trade.Record {
	fills := slices.DeleteFunc(slices.Clone(orders), func(o alpaca.Order) bool {
		return o.FilledAt == nil || o.FilledAvgPrice == nil || !o.FilledQty.IsPositive()
	})
	slices.SortStableFunc(fills, func(a, b alpaca.Order) int {
		return a.FilledAt.Compare(*b.FilledAt)
	})

	open := map[string][]lot{}
	var res []trade.Record
	for _, o := range fills {
		// for some reason in Alpaca we buy BTC/USD but sell BTCUSD symbol
		sym := strings.ReplaceAll(o.Symbol, "/", "")
		qty := o.FilledQty
		price := *o.FilledAvgPrice

		lots := open[sym]
		for len(lots) > 0 && lots[0].side != o.Side && qty.IsPositive() {
			entry := &lots[0]
			matched := decimal.Min(entry.qty, qty)

			res = append(res, closeLot(int64(len(res)+1), sym, *entry, matched, price, *o.FilledAt))

			entry.qty = entry.qty.Sub(matched)
			qty = qty.Sub(matched)
			if !entry.qty.IsPositive() {
				lots = lots[1:]
			}
		}

		if qty.IsPositive() {
			lots = append(lots, lot{side: o.Side, time: *o.FilledAt, price: price, qty: qty})
		}
		open[sym] = lots
	}

	return res
}

func closeLot(id int64, symbol string, entry lot, qty, exit decimal.Decimal, at time.Time) trade.Record {
	diff := exit.Sub(entry.price)
	side := trade.Buy
	if entry.side == alpaca.Sell {
		side = trade.Sell
		diff = diff.Neg()
	}

	q, _ := qty.Float64()
	op, _ := entry.price.Float64()
	cp, _ := exit.Float64()
	pts, _ := diff.Float64()

	return trade.Record{
		ID:           id,
		Asset:        symbol,
		OpenTime:     entry.time,
		CloseTime:    &at,
		Type:         side,
		Quantity:     &q,
		OpenPrice:    &op,
		ClosePrice:   &cp,
		ResultPoints: &pts,
	}
}
