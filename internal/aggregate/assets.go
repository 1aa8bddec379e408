package aggregate

import (
	"maps"
	"slices"
	"strings"

	"github.com/gamma-omg/tradeview/internal/trade"
)

func GroupByAsset(records []trade.Record) []AssetTotal {
	totals := map[string]*AssetTotal{}
	for _, r := range records {
		v, ok := r.Result()
		if !ok {
			continue
		}

		asset := strings.TrimSpace(r.Asset)
		if asset == "" {
			continue
		}

		t, ok := totals[asset]
		if !ok {
			t = &AssetTotal{Asset: asset}
			totals[asset] = t
		}
		t.Total += v
		t.Count++
	}

	res := make([]AssetTotal, 0, len(totals))
	for _, k := range slices.Sorted(maps.Keys(totals)) {
		res = append(res, *totals[k])
	}

	return res
}
