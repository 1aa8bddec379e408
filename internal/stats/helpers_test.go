package stats

import (
	"github.com/gamma-omg/tradeview/internal/aggregate"
)

func curveOf(values ...float64) []aggregate.EquityPoint {
	res := make([]aggregate.EquityPoint, len(values))
	for i, v := range values {
		res[i] = aggregate.EquityPoint{Cumulative: v}
		if i == 0 {
			res[i].Value = v
		} else {
			res[i].Value = v - values[i-1]
		}
	}
	return res
}
