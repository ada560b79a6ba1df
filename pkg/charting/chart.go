package charting

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/admpub/charting/pkg/chartutil"
)

const (
	ModeMarkers      = `markers`
	ModeLinesMarkers = `lines+markers`

	AxisPrimary   = `y`
	AxisSecondary = `y2`

	SideLeft  = `left`
	SideRight = `right`
)

type Marker struct {
	Color  string `json:"color,omitempty"`
	Size   int    `json:"size,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

type Axis struct {
	Title      string `json:"title,omitempty"`
	Side       string `json:"side,omitempty"`
	Overlaying string `json:"overlaying,omitempty"`
}

// Trace is one plotted series. YAxis is empty or AxisPrimary for the
// primary axis and AxisSecondary for the overlaid right-hand axis.
type Trace struct {
	Name   string    `json:"name,omitempty"`
	Mode   string    `json:"mode"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
	YAxis  string    `json:"yaxis,omitempty"`
	Marker *Marker   `json:"marker,omitempty"`
}

func (t Trace) OnSecondaryAxis() bool {
	return t.YAxis == AxisSecondary
}

func (t Trace) hasLines() bool {
	return t.Mode == ModeLinesMarkers
}

type Layout struct {
	Title  string `json:"title"`
	YAxis  *Axis  `json:"yaxis,omitempty"`
	YAxis2 *Axis  `json:"yaxis2,omitempty"`
}

// Chart keeps two titles apart: Title is the document title and stays blank
// for both builders, Layout.Title is the caption drawn above the plot.
type Chart struct {
	Title  string  `json:"title"`
	Layout *Layout `json:"layout,omitempty"`
	Traces []Trace `json:"traces"`
}

func Plot(traces ...Trace) *Chart {
	return &Chart{Traces: traces}
}

func (c *Chart) WithTitle(title string) *Chart {
	c.Title = title
	return c
}

func (c *Chart) WithLayout(layout *Layout) *Chart {
	c.Layout = layout
	return c
}

func (c *Chart) LayoutTitle() string {
	if c.Layout == nil {
		return ``
	}
	return c.Layout.Title
}

// Charter converts the chart into its go-echarts counterpart. Charts with at
// least one line trace become a *charts.Line, the rest a *charts.Scatter.
func (c *Chart) Charter(options ...charts.GlobalOpts) chartutil.Charter {
	for _, t := range c.Traces {
		if t.hasLines() {
			return c.line(options)
		}
	}
	return c.scatter(options)
}

func (c *Chart) Render(w io.Writer, options ...charts.GlobalOpts) error {
	return c.Charter(options...).Render(w)
}

func (c *Chart) globalOptions(options []charts.GlobalOpts) []charts.GlobalOpts {
	globals := []charts.GlobalOpts{
		chartutil.Initialization(c.Title, ``),
		chartutil.Title(c.LayoutTitle(), ``),
		chartutil.Legend(),
		chartutil.Tooltip(),
	}
	return append(globals, options...)
}

func (c *Chart) line(options []charts.GlobalOpts) *charts.Line {
	globals := c.globalOptions(options)
	var longest int
	var secondary bool
	for _, t := range c.Traces {
		longest = max(longest, len(t.X))
		if t.OnSecondaryAxis() {
			secondary = true
		}
	}
	if c.Layout != nil && c.Layout.YAxis != nil {
		globals = append(globals, charts.WithYAxisOpts(opts.YAxis{
			Name: c.Layout.YAxis.Title,
			Type: `value`,
		}))
	}
	return chartutil.NewLine(nil, globals, chartutil.IndexLabels(longest), func(line *charts.Line) {
		// echarts places a second y axis of the same grid on the right.
		if secondary {
			axis := opts.YAxis{Type: `value`}
			if c.Layout != nil && c.Layout.YAxis2 != nil {
				axis.Name = c.Layout.YAxis2.Title
			}
			line.ExtendYAxis(axis)
		}
		for _, t := range c.Traces {
			data := make([]opts.LineData, len(t.Y))
			for i, y := range t.Y {
				data[i] = opts.LineData{Value: y}
			}
			seriesOpts := []charts.SeriesOpts{
				charts.WithLineChartOpts(opts.LineChart{
					YAxisIndex: yAxisIndex(t),
					ShowSymbol: opts.Bool(true),
				}),
			}
			if t.Marker != nil && len(t.Marker.Color) > 0 {
				seriesOpts = append(seriesOpts, charts.WithItemStyleOpts(opts.ItemStyle{Color: t.Marker.Color}))
			}
			line.AddSeries(t.Name, data, seriesOpts...)
		}
	})
}

func (c *Chart) scatter(options []charts.GlobalOpts) *charts.Scatter {
	globals := c.globalOptions(options)
	return chartutil.NewScatter(nil, globals, func(scatter *charts.Scatter) {
		for index, t := range c.Traces {
			name := t.Name
			if len(name) == 0 {
				name = `trace ` + strconv.Itoa(index)
			}
			data := make([]opts.ScatterData, 0, len(t.X))
			for i := range t.X {
				item := opts.ScatterData{Value: []float64{t.X[i], t.Y[i]}}
				if t.Marker != nil {
					item.Symbol = echartsSymbol(t.Marker.Symbol)
					item.SymbolSize = t.Marker.Size
				}
				data = append(data, item)
			}
			if t.Marker != nil && len(t.Marker.Color) > 0 {
				scatter.AddSeries(name, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: t.Marker.Color}))
			} else {
				scatter.AddSeries(name, data)
			}
		}
	})
}

func yAxisIndex(t Trace) int {
	if t.OnSecondaryAxis() {
		return 1
	}
	return 0
}

// echarts has no cross symbol; draw it with an SVG path.
const crossSymbolPath = `path://M4,0H6V4H10V6H6V10H4V6H0V4H4Z`

func echartsSymbol(symbol string) string {
	switch symbol {
	case `cross`:
		return crossSymbolPath
	case ``:
		return ``
	default:
		return symbol
	}
}

// Initialization carries the chart title into the rendered page together
// with a theme and size overrides.
func (c *Chart) Initialization(theme string, options ...func(*opts.Initialization)) charts.GlobalOpts {
	return chartutil.Initialization(c.Title, theme, options...)
}
