package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gamma-omg/tradeview/internal/aggregate"
	"github.com/gamma-omg/tradeview/internal/geometry"
	"github.com/gamma-omg/tradeview/internal/stats"
	"github.com/gamma-omg/tradeview/internal/trade"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Trading   Trading         `yaml:"trading"`
	Charts    Charts          `yaml:"charts"`
	Filter    Filter          `yaml:"filter"`
	Timezone  string          `yaml:"timezone"`
	Report    string          `yaml:"report"`
	Output    Output          `yaml:"output"`
	SourceRef SourceReference `yaml:"source"`
}

func Read(r io.Reader) (*Config, error) {
	var cfg Config
	d := yaml.NewDecoder(r)
	err := d.Decode(&cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func ReadFromFile(path string) (cfg *Config, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close config file: %w", cerr))
		}
	}()

	return Read(f)
}

func (c *Config) applyDefaults() {
	if c.Trading.Contracts == 0 {
		c.Trading.Contracts = 5
	}
	if c.Trading.PointValue == 0 {
		c.Trading.PointValue = 0.2
	}
	if c.Trading.Robots == 0 {
		c.Trading.Robots = 14
	}
	if c.Trading.RiskProfile == 0 {
		c.Trading.RiskProfile = Moderate
	}

	if c.Charts.Width == 0 {
		c.Charts.Width = 800
	}
	if c.Charts.Height == 0 {
		c.Charts.Height = 300
	}
	if c.Charts.Padding == 0 {
		c.Charts.Padding = 50
	}
	if c.Charts.ScatterStart == 0 && c.Charts.ScatterEnd == 0 {
		c.Charts.ScatterStart = 9
		c.Charts.ScatterEnd = 18
	}
	if c.Charts.MinRadius == 0 && c.Charts.MaxRadius == 0 {
		c.Charts.MinRadius = 2
		c.Charts.MaxRadius = 12
	}
	if c.Charts.Ticks == 0 {
		c.Charts.Ticks = 4
	}

	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "charts"
	}
	if c.Output.Format == "" {
		c.Output.Format = "svg"
	}
}

// applyEnv lets secrets and endpoints come from the environment.
func (c *Config) applyEnv() {
	switch src := c.SourceRef.Source.(type) {
	case Backend:
		if v := os.Getenv("TRADEVIEW_BACKEND_URL"); v != "" {
			src.BaseUrl = v
		}
		c.SourceRef.Source = src
	case Alpaca:
		if v := os.Getenv("ALPACA_API_KEY"); v != "" {
			src.ApiKey = v
		}
		if v := os.Getenv("ALPACA_SECRET"); v != "" {
			src.Secret = v
		}
		c.SourceRef.Source = src
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Trading.Contracts < 0 || c.Trading.Robots < 0 {
		errs = append(errs, errors.New("contracts and robots must not be negative"))
	}
	if c.Charts.Width <= 2*c.Charts.Padding || c.Charts.Height <= 2*c.Charts.Padding {
		errs = append(errs, errors.New("chart padding leaves no room to plot"))
	}
	if c.Charts.ScatterStart < 0 || c.Charts.ScatterEnd > 23 || c.Charts.ScatterStart > c.Charts.ScatterEnd {
		errs = append(errs, fmt.Errorf("invalid scatter window: %d-%d", c.Charts.ScatterStart, c.Charts.ScatterEnd))
	}
	if c.Charts.MinRadius > c.Charts.MaxRadius {
		errs = append(errs, errors.New("min_radius exceeds max_radius"))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParsePercentile(c.Charts.Percentile); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// trading

type RiskProfile int

const (
	Conservative RiskProfile = iota + 1
	Moderate
	Aggressive
)

// Guarantee is the margin required per contract.
func (p RiskProfile) Guarantee() decimal.Decimal {
	switch p {
	case Conservative:
		return decimal.NewFromInt(1000)
	case Aggressive:
		return decimal.NewFromInt(300)
	default:
		return decimal.NewFromInt(500)
	}
}

func (p RiskProfile) String() string {
	switch p {
	case Conservative:
		return "conservative"
	case Aggressive:
		return "aggressive"
	default:
		return "moderate"
	}
}

func (p *RiskProfile) UnmarshalYAML(value *yaml.Node) error {
	switch strings.ToLower(value.Value) {
	case "conservative", "conservador":
		*p = Conservative
	case "moderate", "moderado", "":
		*p = Moderate
	case "aggressive", "agressivo":
		*p = Aggressive
	default:
		return fmt.Errorf("unknown risk profile: %s", value.Value)
	}

	return nil
}

type Trading struct {
	Contracts   int64       `yaml:"contracts"`
	PointValue  float64     `yaml:"point_value"`
	Robots      int64       `yaml:"robots"`
	RiskProfile RiskProfile `yaml:"risk_profile"`
	Margin      float64     `yaml:"margin"`
}

// TotalMargin is the explicit margin when set, otherwise the risk profile
// guarantee for every contract of every robot.
func (t Trading) TotalMargin() decimal.Decimal {
	if t.Margin > 0 {
		return decimal.NewFromFloat(t.Margin)
	}

	return t.RiskProfile.Guarantee().
		Mul(decimal.NewFromInt(t.Contracts)).
		Mul(decimal.NewFromInt(t.Robots))
}

func (t Trading) Valuation() trade.Valuation {
	return trade.NewValuation(t.PointValue, t.Contracts)
}

// charts

type Charts struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Padding      float64 `yaml:"padding"`
	ScatterStart int     `yaml:"scatter_start"`
	ScatterEnd   int     `yaml:"scatter_end"`
	MinRadius    float64 `yaml:"min_radius"`
	MaxRadius    float64 `yaml:"max_radius"`
	Bins         int     `yaml:"bins"`
	Ticks        int     `yaml:"ticks"`
	Percentile   string  `yaml:"percentile"`
	IntradayDay  string  `yaml:"intraday_day"`
}

func (c Charts) Viewport() geometry.Viewport {
	return geometry.Viewport{Width: c.Width, Height: c.Height, Padding: c.Padding}
}

func (c Charts) Window() aggregate.Window {
	return aggregate.Window{Start: c.ScatterStart, End: c.ScatterEnd}
}

func (c Charts) ScatterOptions() geometry.ScatterOptions {
	return geometry.ScatterOptions{
		Window:    c.Window(),
		MinRadius: c.MinRadius,
		MaxRadius: c.MaxRadius,
	}
}

func ParsePercentile(s string) (stats.PercentileMethod, error) {
	switch strings.ToLower(s) {
	case "", "nearest", "nearest_rank":
		return stats.NearestRank, nil
	case "linear":
		return stats.Linear, nil
	default:
		return 0, fmt.Errorf("unknown percentile method: %s", s)
	}
}

type Filter struct {
	Robots   []int64   `yaml:"robots"`
	From     time.Time `yaml:"from"`
	Until    time.Time `yaml:"until"`
	Weekdays []int     `yaml:"weekdays"`
	Start    string    `yaml:"start"`
	End      string    `yaml:"end"`
}

func (f Filter) Trade() trade.Filter {
	days := make([]time.Weekday, 0, len(f.Weekdays))
	for _, d := range f.Weekdays {
		days = append(days, time.Weekday(d%7))
	}

	return trade.Filter{
		Robots:     f.Robots,
		From:       f.From,
		Until:      f.Until,
		Weekdays:   days,
		StartClock: f.Start,
		EndClock:   f.End,
	}
}

type Output struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"`
}

// source configs

type SourceReference struct {
	Source Source
}

type Source interface{}

type Backend struct {
	BaseUrl     string        `yaml:"base_url"`
	Schema      string        `yaml:"schema"`
	PageSize    int           `yaml:"page_size"`
	MaxRecords  int           `yaml:"max_records"`
	Concurrency int           `yaml:"concurrency"`
	Timeout     time.Duration `yaml:"timeout"`
}

type Alpaca struct {
	BaseUrl string    `yaml:"base_url"`
	ApiKey  string    `yaml:"api_key"`
	Secret  string    `yaml:"secret"`
	Symbols []string  `yaml:"symbols"`
	After   time.Time `yaml:"after"`
	Until   time.Time `yaml:"until"`
	Limit   int       `yaml:"limit"`
}

func (w *SourceReference) UnmarshalYAML(value *yaml.Node) error {
	if len(value.Content) == 0 {
		return nil
	}

	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return errors.New("invalid source yaml format")
	}

	key := value.Content[0].Value
	switch key {
	case "backend":
		var backend Backend
		if err := value.Content[1].Decode(&backend); err != nil {
			return fmt.Errorf("failed parsing backend source config: %w", err)
		}
		w.Source = backend
	case "alpaca":
		var alpaca Alpaca
		if err := value.Content[1].Decode(&alpaca); err != nil {
			return fmt.Errorf("failed parsing Alpaca source config: %w", err)
		}
		w.Source = alpaca
	default:
		return fmt.Errorf("unknown source type: %s", key)
	}

	return nil
}
