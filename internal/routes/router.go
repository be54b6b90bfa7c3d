package routes

import (
	"net/http"
	"time"

	"fleet-management/fleetboard/internal/api"
	"fleet-management/fleetboard/internal/auth"
	"fleet-management/fleetboard/internal/config"
	"fleet-management/fleetboard/internal/logging"
	"fleet-management/fleetboard/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// RegisterRoutes builds the chi handler: global middleware, health check
// and the /api/v1 table. /metrics is mounted beside it by the server.
func RegisterRoutes(cfg *config.Config, deps *api.Dependencies, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RecoverMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(deps.SQLX, upSince))

	var tokens *auth.TokenManager
	if cfg.AuthEnabled() {
		tokens = auth.NewTokenManager(cfg.JWTSecret)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, deps.Metrics)
	handlers := api.NewHandlers(deps)

	RegisterAPIRoutes(r, handlers, limiter, tokens)

	logging.Info("Router initialized",
		"auth_enabled", tokens != nil,
		"rate_limit_rps", cfg.RateLimitRPS,
		"rate_limit_burst", cfg.RateLimitBurst,
	)
	return r
}
