package chartutil

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// https://github.com/go-echarts/examples

func Title(title, subtitle string, options ...func(*opts.Title)) charts.GlobalOpts {
	option := opts.Title{
		Title:    title,
		Subtitle: subtitle,
	}
	for _, o := range options {
		o(&option)
	}
	return charts.WithTitleOpts(option)
}

// Initialization sets the page title of the rendered document. An empty
// theme falls back to westeros.
func Initialization(pageTitle, theme string, options ...func(*opts.Initialization)) charts.GlobalOpts {
	if len(theme) == 0 {
		theme = types.ThemeWesteros
	}
	option := opts.Initialization{PageTitle: pageTitle, Theme: theme}
	for _, o := range options {
		o(&option)
	}
	return charts.WithInitializationOpts(option)
}

// Size overrides the canvas size, e.g. Size(`900px`, `500px`).
func Size(width, height string) func(*opts.Initialization) {
	return func(i *opts.Initialization) {
		if len(width) > 0 {
			i.Width = width
		}
		if len(height) > 0 {
			i.Height = height
		}
	}
}

func Legend() charts.GlobalOpts {
	return charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)})
}

func Tooltip() charts.GlobalOpts {
	return charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)})
}
