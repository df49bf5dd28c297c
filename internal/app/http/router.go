package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"presidia/go_backend/internal/app/config"
	"presidia/go_backend/internal/app/http/handlers"
	"presidia/go_backend/internal/app/http/middleware"
	"presidia/go_backend/internal/domain/quote/ledger"
)

func NewRouter(cfg config.Config, store ledger.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)

	h := handlers.New(store, cfg)

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.InternalAuth(cfg.InternalToken))

			r.Post("/quotes", h.CreateQuote)
			r.Get("/quotes/{id}/reprint", h.ReprintQuote)
		})
	})

	return r
}
