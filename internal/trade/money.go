package trade

import (
	"github.com/shopspring/decimal"
)

// Valuation converts point-denominated results into money.
type Valuation struct {
	PointValue decimal.Decimal
	Contracts  int64
}

func NewValuation(pointValue float64, contracts int64) Valuation {
	return Valuation{
		PointValue: decimal.NewFromFloat(pointValue),
		Contracts:  contracts,
	}
}

func (v Valuation) Money(points float64) decimal.Decimal {
	return decimal.NewFromFloat(points).
		Mul(v.PointValue).
		Mul(decimal.NewFromInt(v.Contracts))
}

// ReturnPct is the money result as a percentage of the margin. A non-positive
// margin yields zero.
func (v Valuation) ReturnPct(money, margin decimal.Decimal) float64 {
	if !margin.IsPositive() {
		return 0
	}

	pct, _ := money.Div(margin).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}
