package routes

import (
	"fleet-management/fleetboard/internal/api"
	"fleet-management/fleetboard/internal/auth"
	"fleet-management/fleetboard/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers. tokens is nil
// when bearer auth is disabled.
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, limiter *middleware.RateLimiter, tokens *auth.TokenManager) {
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(limiter.Middleware)
		if tokens != nil {
			v1.Use(middleware.AuthMiddleware(tokens))
		}
		v1.Use(middleware.RequireWriteMiddleware())

		v1.Route("/users", func(users chi.Router) {
			users.Post("/", handlers.CreateUser())
			users.Get("/", handlers.ListUsers())
			users.Get("/{id}", handlers.GetUser())
			users.Patch("/{id}", handlers.UpdateUser())
			users.Delete("/{id}", handlers.DeleteUser())
		})

		v1.Route("/drivers", func(drivers chi.Router) {
			drivers.Post("/", handlers.CreateDriver())
			drivers.Get("/", handlers.ListDrivers())
			drivers.Get("/{id}", handlers.GetDriver())
			drivers.Patch("/{id}", handlers.UpdateDriver())
			drivers.Delete("/{id}", handlers.DeleteDriver())
		})

		v1.Route("/routes", func(routes chi.Router) {
			routes.Post("/", handlers.CreateRoute())
			routes.Get("/", handlers.ListRoutes())
			routes.Get("/{id}", handlers.GetRoute())
			routes.Patch("/{id}", handlers.UpdateRoute())
			routes.Delete("/{id}", handlers.DeleteRoute())
		})

		v1.Get("/reports/routes", handlers.RouteReport())
	})
}
