package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/psigiovana/contratos-assinados/docs" //nolint:revive,nolintlint
)

func NewRouter(h *Handler, mw *Middleware, metrics http.Handler) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors)

	router.Group(func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Post("/upload", h.Upload)
		r.Get("/swagger/*", httpSwagger.WrapHandler)
		r.Handle("/metrics", metrics)
	})

	router.Group(func(r chi.Router) {
		r.Use(mw.Auth)

		r.Get("/contratos", h.ListContracts)
		r.Get("/contratos/{name}", h.Contract)
		r.Get("/uploads", h.UploadsList)
	})

	return router
}
