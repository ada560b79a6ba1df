package server

import (
	"errors"
	"net/http"

	"github.com/admpub/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/admpub/charting/pkg/charting"
	"github.com/admpub/charting/pkg/config"
	"github.com/admpub/charting/pkg/storage"
)

func Router(cfg *config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get(`/`, func(w http.ResponseWriter, r *http.Request) {
		handleIndex(w, r, cfg)
	})
	r.Get(`/charts/{name}`, func(w http.ResponseWriter, r *http.Request) {
		handleChart(w, r, cfg)
	})
	r.Route(`/api/charts`, func(r chi.Router) {
		r.Get(`/`, func(w http.ResponseWriter, r *http.Request) {
			handleList(w, r, cfg)
		})
		r.Post(`/dual`, func(w http.ResponseWriter, r *http.Request) {
			handleDual(w, r, cfg)
		})
		r.Post(`/cluster`, func(w http.ResponseWriter, r *http.Request) {
			handleCluster(w, r, cfg)
		})
		r.Get(`/{name}`, func(w http.ResponseWriter, r *http.Request) {
			handleGet(w, r, cfg)
		})
		r.Delete(`/{name}`, func(w http.ResponseWriter, r *http.Request) {
			handleDelete(w, r, cfg)
		})
	})
	return r
}

func Start(cfg *config.Config) error {
	log.Infof(`listening on %s`, cfg.Listen)
	return http.ListenAndServe(cfg.Listen, Router(cfg))
}

// renderBuildError maps builder failures to 422 and everything else to 500.
func renderBuildError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, charting.ErrPaletteExhausted) ||
		errors.Is(err, charting.ErrPointOutOfRange) ||
		errors.Is(err, charting.ErrEmptyPoint) ||
		errors.Is(err, storage.ErrUnknownKind) {
		render.Render(w, r, ErrUnprocessable(err))
		return
	}
	render.Render(w, r, ErrInternalServerError(err))
}
