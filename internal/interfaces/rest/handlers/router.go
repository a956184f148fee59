package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/interfaces/rest"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/interfaces/rest/middleware"
)

type RouterConfig struct {
	Sessions       application.SessionStore
	SessionOptions middleware.SessionOptions
	// RequestTimeout is skipped when zero.
	RequestTimeout time.Duration
	Errors         *rest.ErrorHandler
	Logger         *slog.Logger
}

// NewRouter assembles the middleware chain around the wizard routes.
func NewRouter(h *Handlers, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Errors, cfg.Logger))
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(cfg.Errors))
		r.Use(middleware.Session(cfg.Sessions, cfg.SessionOptions, cfg.Errors))
		h.RegisterRoutes(r)
	})
	return r
}
