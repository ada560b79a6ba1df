package chartutil

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// NewScatter creates a scatter chart whose axes are both numeric.
func NewScatter(w io.Writer, options []charts.GlobalOpts, addSeries func(*charts.Scatter)) *charts.Scatter {
	scatter := charts.NewScatter()
	options = append([]charts.GlobalOpts{
		charts.WithXAxisOpts(opts.XAxis{Type: `value`}),
		charts.WithYAxisOpts(opts.YAxis{Type: `value`}),
	}, options...)
	scatter.SetGlobalOptions(options...)
	if addSeries != nil {
		addSeries(scatter)
	}
	if w != nil {
		scatter.Render(w)
	}
	return scatter
}
