package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"skyops/crewdeck/internal/api"
	"skyops/crewdeck/internal/logging"
	"skyops/crewdeck/internal/middleware"
)

// RegisterRoutes builds the chi router with the global middleware chain and
// every API route mounted on the wired dependency graph.
func RegisterRoutes(deps *api.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthCheck", api.HealthCheckHandler(deps))

	RegisterAPIRoutes(r, deps)

	logging.Info("router initialized")
	return r
}
