package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/middleware"
)

// NewRouter wires the API routes. Generation routes are rate limited per IP
// and, when cfg.JWTSecret is set, require a bearer token.
func NewRouter(cfg config.Config, gen *GeneratorHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		if cfg.AuthEnabled() {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
		}
		r.Post("/api/v1/generate", gen.HandleGenerate)
		r.Get("/api/v1/generate/options", gen.HandleOptions)
	})

	return r
}
