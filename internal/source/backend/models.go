package backend

// record is the wire shape of a trade as served by the analytics backend.
// The backend stores no entry or exit prices, only the lot count.
type record struct {
	ID        int64    `json:"id"`
	RobotID   int64    `json:"robo_id"`
	Asset     *string  `json:"ativo"`
	OpenTime  *string  `json:"data_abertura"`
	CloseTime *string  `json:"data_fechamento"`
	Type      *string  `json:"tipo"`
	Lots      *float64 `json:"lotes"`
	Result    *float64 `json:"resultado"`
}

// RiskMetrics holds the risk figures computed server side. Each family is
// nil when the backend omits it.
type RiskMetrics struct {
	Period    *Period    `json:"periodo_analise,omitempty"`
	Drawdown  *Drawdown  `json:"metricas_drawdown,omitempty"`
	VaR       *VaR       `json:"value_at_risk,omitempty"`
	Ratios    *Ratios    `json:"ratios_performance,omitempty"`
	Returns   *Returns   `json:"retornos,omitempty"`
	Sequences *Sequences `json:"analise_sequencias,omitempty"`
}

type Period struct {
	Operations     *int    `json:"total_operacoes,omitempty"`
	TradingDays    *int    `json:"dias_operando,omitempty"`
	FirstOperation *string `json:"primeira_operacao,omitempty"`
	LastOperation  *string `json:"ultima_operacao,omitempty"`
}

type Drawdown struct {
	MaxPercent     *float64 `json:"max_drawdown_percent,omitempty"`
	MaxDuration    *int     `json:"max_drawdown_duracao,omitempty"`
	Current        *float64 `json:"drawdown_atual,omitempty"`
	Interpretation *string  `json:"interpretacao,omitempty"`
}

type VaR struct {
	Percent95        *float64 `json:"var_95_percent,omitempty"`
	Percent99        *float64 `json:"var_99_percent,omitempty"`
	Points95         *float64 `json:"var_95_pontos,omitempty"`
	Points99         *float64 `json:"var_99_pontos,omitempty"`
	Interpretation95 *string  `json:"interpretacao_95,omitempty"`
	Interpretation99 *string  `json:"interpretacao_99,omitempty"`
}

type Ratios struct {
	Sharpe                *float64 `json:"sharpe_ratio,omitempty"`
	Sortino               *float64 `json:"sortino_ratio,omitempty"`
	Calmar                *float64 `json:"calmar_ratio,omitempty"`
	SharpeInterpretation  *string  `json:"interpretacao_sharpe,omitempty"`
	SortinoInterpretation *string  `json:"interpretacao_sortino,omitempty"`
}

type Returns struct {
	TotalPercent      *float64 `json:"retorno_total_percent,omitempty"`
	AnnualizedPercent *float64 `json:"retorno_anualizado_percent,omitempty"`
	DailyMean         *float64 `json:"retorno_medio_diario,omitempty"`
	DailyVolatility   *float64 `json:"volatilidade_diaria,omitempty"`
}

type Sequences struct {
	MaxWins       *int `json:"max_ganhos_consecutivos,omitempty"`
	MaxLosses     *int `json:"max_perdas_consecutivas,omitempty"`
	CurrentStreak *int `json:"streak_atual,omitempty"`
}

// Seasonal holds the server side monthly and hourly breakdowns.
type Seasonal struct {
	Monthly *struct {
		Pattern []MonthPattern `json:"padrao_mensal"`
	} `json:"analise_mensal,omitempty"`
	Hourly *struct {
		ByHour []HourPattern `json:"por_hora"`
	} `json:"analise_horaria,omitempty"`
}

type MonthPattern struct {
	Month      int     `json:"mes"`
	Name       string  `json:"mes_nome"`
	Operations int     `json:"operacoes"`
	MeanResult float64 `json:"resultado_medio"`
	WinRate    float64 `json:"taxa_acerto"`
	Volatility float64 `json:"volatilidade"`
}

type HourPattern struct {
	Hour       int     `json:"hora"`
	Label      string  `json:"hora_formatada"`
	Operations int     `json:"operacoes"`
	MeanResult float64 `json:"resultado_medio"`
	WinRate    float64 `json:"taxa_acerto"`
	Volatility float64 `json:"volatilidade"`
}

// Insights bundles the server side analytics fetched together.
type Insights struct {
	Risk     *RiskMetrics `json:"risk,omitempty"`
	Seasonal *Seasonal    `json:"seasonal,omitempty"`
}
