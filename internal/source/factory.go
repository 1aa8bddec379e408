package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gamma-omg/tradeview/internal/config"
	"github.com/gamma-omg/tradeview/internal/source/alpaca"
	"github.com/gamma-omg/tradeview/internal/source/backend"
	"github.com/gamma-omg/tradeview/internal/trade"
)

var ErrUnknownSource = errors.New("unknown trade source")

type Source interface {
	Records(ctx context.Context, q trade.Query) ([]trade.Record, error)
}

func Create(log *slog.Logger, cfg config.Config) (Source, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	backendCfg, ok := cfg.SourceRef.Source.(config.Backend)
	if ok {
		c, err := backend.NewClient(log, backendCfg, loc)
		if err != nil {
			return nil, fmt.Errorf("failed to create backend source: %w", err)
		}
		return c, nil
	}

	alpacaCfg, ok := cfg.SourceRef.Source.(config.Alpaca)
	if ok {
		return alpaca.NewOrderHistory(log, alpacaCfg, loc), nil
	}

	return nil, ErrUnknownSource
}
