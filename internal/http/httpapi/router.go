package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"visionai/internal/http/handlers"
	"visionai/internal/infra"
	"visionai/internal/middleware"
	"visionai/internal/web"
)

func NewRouter(app *handlers.App, cfg *infra.Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	if cfg.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(
		middleware.RequestID,
		middleware.Logger(logger),
		chimw.Recoverer,
		middleware.CORS(cfg.AllowedOrigins),
	)

	limit := middleware.RateLimit(cfg.RateLimitPerMin, time.Minute)

	r.Get("/v1/healthz", app.Health)

	r.Get("/", app.Index)
	r.With(limit).Post("/", app.Submit)
	r.Handle("/static/*", web.StaticHandler())

	r.Route("/api", func(r chi.Router) {
		r.With(limit).Post("/generate", app.Generate)
	})

	return r
}
