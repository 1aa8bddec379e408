package dashboard

import (
	"github.com/gamma-omg/tradeview/internal/config"
	"github.com/gamma-omg/tradeview/internal/render"
)

func RenderOptions(c config.Charts) render.Options {
	opt := render.DefaultOptions
	opt.Scatter = c.ScatterOptions()
	if c.Ticks > 0 {
		opt.Ticks = c.Ticks
	}
	return opt
}
