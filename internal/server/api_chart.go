package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/webx-top/com"

	"github.com/admpub/charting/pkg/charting"
	"github.com/admpub/charting/pkg/config"
	"github.com/admpub/charting/pkg/storage"
)

// handleDual builds a dual-series chart. With ?name= the request is saved
// as well, with ?format=html the chart page is returned instead of JSON.
func handleDual(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	var req charting.ChartRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	chart := charting.BuildDualSeries(req)
	if name := r.URL.Query().Get(`name`); len(name) > 0 {
		rec, err := storage.NewDualRecord(name, req)
		if err == nil {
			err = save(cfg, rec)
		}
		if err != nil {
			render.Render(w, r, ErrInternalServerError(err))
			return
		}
	}
	respondChart(w, r, cfg, chart)
}

func handleCluster(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	var req charting.ClusterRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	chart, err := req.Build(charting.WithPalette(cfg.ChartPalette()))
	if err != nil {
		renderBuildError(w, r, err)
		return
	}
	if name := r.URL.Query().Get(`name`); len(name) > 0 {
		rec, err := storage.NewClusterRecord(name, req)
		if err == nil {
			err = save(cfg, rec)
		}
		if err != nil {
			render.Render(w, r, ErrInternalServerError(err))
			return
		}
	}
	respondChart(w, r, cfg, chart)
}

func handleList(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	em, err := cfg.Storager()
	if err != nil {
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	list, err := em.List(com.Int(r.URL.Query().Get(`limit`)))
	if err != nil {
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	if list == nil {
		list = []storage.Record{}
	}
	render.JSON(w, r, list)
}

func handleGet(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	chart, ok := loadChart(w, r, cfg)
	if !ok {
		return
	}
	respondChart(w, r, cfg, chart)
}

func handleDelete(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	em, err := cfg.Storager()
	if err != nil {
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	err = em.Delete(chi.URLParam(r, `name`))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			render.Render(w, r, ErrNotFound(err))
		} else {
			render.Render(w, r, ErrInternalServerError(err))
		}
		return
	}
	render.NoContent(w, r)
}

func save(cfg *config.Config, rec storage.Record) error {
	em, err := cfg.Storager()
	if err != nil {
		return err
	}
	return em.Save(rec)
}

func loadChart(w http.ResponseWriter, r *http.Request, cfg *config.Config) (*charting.Chart, bool) {
	em, err := cfg.Storager()
	if err != nil {
		render.Render(w, r, ErrInternalServerError(err))
		return nil, false
	}
	rec, err := em.Get(chi.URLParam(r, `name`))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			render.Render(w, r, ErrNotFound(err))
		} else {
			render.Render(w, r, ErrInternalServerError(err))
		}
		return nil, false
	}
	chart, err := rec.Chart(charting.WithPalette(cfg.ChartPalette()))
	if err != nil {
		renderBuildError(w, r, err)
		return nil, false
	}
	return chart, true
}

func respondChart(w http.ResponseWriter, r *http.Request, cfg *config.Config, chart *charting.Chart) {
	if r.URL.Query().Get(`format`) == `html` {
		renderChartPage(w, r, cfg, chart)
		return
	}
	render.JSON(w, r, chart)
}
