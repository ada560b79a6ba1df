package server

import (
	"net/http"
	"time"

	"github.com/admpub/log"
	"github.com/go-chi/render"

	"github.com/admpub/charting/pkg/charting"
	"github.com/admpub/charting/pkg/chartutil"
	"github.com/admpub/charting/pkg/config"
)

const indexLimit = 50

func renderChartPage(w http.ResponseWriter, r *http.Request, cfg *config.Config, chart *charting.Chart) {
	w.Header().Set(`Content-Type`, `text/html; charset=utf-8`)
	err := chart.Render(w, chart.Initialization(cfg.Theme, chartutil.Size(cfg.Width, cfg.Height)))
	if err != nil {
		log.Errorf(`render chart: %v`, err)
	}
}

func handleChart(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	chart, ok := loadChart(w, r, cfg)
	if !ok {
		return
	}
	renderChartPage(w, r, cfg, chart)
}

// handleIndex renders every saved chart on one page followed by a summary
// table. Records that no longer build are listed but not drawn.
func handleIndex(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	em, err := cfg.Storager()
	if err != nil {
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	list, err := em.List(indexLimit)
	if err != nil {
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	table := chartutil.NewTable(`Saved charts`, `Name`, `Kind`, `Traces`, `Created`)
	charters := make([]chartutil.Charter, 0, len(list))
	size := chartutil.Size(cfg.Width, cfg.Height)
	for _, rec := range list {
		chart, err := rec.Chart(charting.WithPalette(cfg.ChartPalette()))
		if err != nil {
			log.Warnf(`unable to build chart %q: %v`, rec.Name, err)
			chartutil.AddTableRow(table, rec.Name, rec.Kind, err.Error(), rec.Created.Format(time.DateTime))
			continue
		}
		charters = append(charters, chart.Charter(
			chart.Initialization(cfg.Theme, size),
			chartutil.Title(chart.LayoutTitle(), rec.Name),
		))
		chartutil.AddTableRow(table, rec.Name, rec.Kind, len(chart.Traces), rec.Created.Format(time.DateTime))
	}
	w.Header().Set(`Content-Type`, `text/html; charset=utf-8`)
	if err := chartutil.RenderPage(w, table, charters...); err != nil {
		log.Errorf(`render page: %v`, err)
	}
}
