package report

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"sync"

	"github.com/gamma-omg/tradeview/internal/dashboard"
	"github.com/gamma-omg/tradeview/internal/source/backend"
)

type JsonReportBuilder struct {
	log    *slog.Logger
	report JsonReport
	mu     sync.Mutex
}

type JsonReport struct {
	Seq            uint64               `json:"seq,omitempty"`
	Operations     int                  `json:"operations"`
	TotalPoints    float64              `json:"total_points"`
	Total          string               `json:"total,omitempty"`
	GrossProfit    string               `json:"gross_profit,omitempty"`
	GrossLoss      string               `json:"gross_loss,omitempty"`
	Margin         string               `json:"margin,omitempty"`
	ReturnPct      float64              `json:"return_pct,omitempty"`
	WinRate        float64              `json:"win_rate,omitempty"`
	Payoff         Ratio                `json:"payoff,omitempty"`
	ProfitFactor   Ratio                `json:"profit_factor,omitempty"`
	RecoveryFactor Ratio                `json:"recovery_factor,omitempty"`
	Drawdown       *JsonDrawdown        `json:"drawdown,omitempty"`
	Streaks        *JsonStreaks         `json:"streaks,omitempty"`
	VaR            *JsonVaR             `json:"value_at_risk,omitempty"`
	Assets         map[string]JsonAsset `json:"assets,omitempty"`
	Days           *JsonDays            `json:"days,omitempty"`
	Server         *backend.Insights    `json:"server,omitempty"`
}

type JsonDrawdown struct {
	MaxPct          float64 `json:"max_pct"`
	MaxPoints       float64 `json:"max_points"`
	Max             string  `json:"max"`
	CurrentPct      float64 `json:"current_pct"`
	MaxDuration     int     `json:"max_duration"`
	CurrentDuration int     `json:"current_duration"`
}

type JsonStreaks struct {
	MaxWin  int `json:"max_win"`
	MaxLoss int `json:"max_loss"`
	Current int `json:"current"`
}

type JsonVaR struct {
	P95Points float64 `json:"p95_points"`
	P99Points float64 `json:"p99_points"`
	P95       string  `json:"p95"`
	P99       string  `json:"p99"`
}

type JsonAsset struct {
	Count  int     `json:"count"`
	Points float64 `json:"points"`
	Total  string  `json:"total"`
}

type JsonDays struct {
	Positive        int     `json:"positive"`
	Negative        int     `json:"negative"`
	Flat            int     `json:"flat"`
	WinRatePositive float64 `json:"win_rate_positive"`
	WinRateNegative float64 `json:"win_rate_negative"`
}

// Ratio is a float that encodes infinities as strings.
type Ratio float64

func (r Ratio) MarshalJSON() ([]byte, error) {
	f := float64(r)
	switch {
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	case math.IsNaN(f):
		return []byte(`null`), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func NewJsonReportBuilder(log *slog.Logger) *JsonReportBuilder {
	return &JsonReportBuilder{log: log}
}

func (r *JsonReportBuilder) SubmitView(v *dashboard.View) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := v.Summary
	rep := JsonReport{
		Seq:            v.Seq,
		Operations:     s.Count,
		TotalPoints:    s.Total,
		WinRate:        s.WinRate,
		Payoff:         Ratio(s.Payoff),
		ProfitFactor:   Ratio(s.ProfitFactor),
		RecoveryFactor: Ratio(v.RecoveryFactor),
		ReturnPct:      v.Money.ReturnPct,
		Margin:         v.Money.Margin.String(),
		Server:         v.Server,
	}

	if s.Count > 0 {
		rep.Total = v.Money.Total.String()
		rep.GrossProfit = v.Money.GrossProfit.String()
		rep.GrossLoss = v.Money.GrossLoss.String()
		rep.Drawdown = &JsonDrawdown{
			MaxPct:          v.Drawdown.MaxPercent,
			MaxPoints:       v.Drawdown.MaxPoints,
			Max:             v.Money.MaxDrawdown.String(),
			CurrentPct:      v.Drawdown.CurrentPercent,
			MaxDuration:     v.Drawdown.MaxDuration,
			CurrentDuration: v.Drawdown.CurrentDuration,
		}
		rep.Streaks = &JsonStreaks{
			MaxWin:  v.Streaks.MaxWinStreak,
			MaxLoss: v.Streaks.MaxLossStreak,
			Current: v.Streaks.Trailing(),
		}
		rep.Days = &JsonDays{
			Positive:        v.Days.PositiveDays,
			Negative:        v.Days.NegativeDays,
			Flat:            v.Days.FlatDays,
			WinRatePositive: v.Days.WinRateOnPositiveDays,
			WinRateNegative: v.Days.WinRateOnNegativeDays,
		}
	}

	if v.HasVaR {
		rep.VaR = &JsonVaR{
			P95Points: v.VaR95,
			P99Points: v.VaR99,
			P95:       v.Money.VaR95.String(),
			P99:       v.Money.VaR99.String(),
		}
	}

	if len(v.Assets) > 0 {
		val := v.Trading.Valuation()
		rep.Assets = make(map[string]JsonAsset, len(v.Assets))
		for _, a := range v.Assets {
			rep.Assets[a.Asset] = JsonAsset{
				Count:  a.Count,
				Points: a.Total,
				Total:  val.Money(a.Total).String(),
			}
		}
	}

	r.report = rep

	r.log.Info("report updated",
		slog.Uint64("seq", v.Seq),
		slog.Int("operations", s.Count),
		slog.Float64("total_points", s.Total),
		slog.String("total", v.Money.Total.String()),
		slog.Float64("return_pct", v.Money.ReturnPct))
}

func (r *JsonReportBuilder) Write(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	if err := e.Encode(r.report); err != nil {
		return fmt.Errorf("failed to write trading report: %w", err)
	}

	return nil
}
