package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tripforge/backend/app"
	"github.com/tripforge/backend/handlers"
)

// SetupRoutes configures all application routes and middleware
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "https://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Tenant-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoints
	r.Get("/healthz", handlers.HealthCheck(deps))
	r.Get("/readyz", handlers.ReadinessCheck(deps))

	if deps.Config.Observability.MetricsEnabled {
		r.Handle("/metrics", deps.Metrics.Handler())
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", handlers.StatusHandler(deps))
		r.Get("/tenants", handlers.ListTenantsHandler(deps))

		// Tenant-scoped routes. The tenant is resolved from the URL
		// parameter and attached to the request context.
		r.Route("/tenants/{tenantID}", func(r chi.Router) {
			r.Use(deps.TenantMiddleware.Resolve)
			r.Get("/", handlers.GetTenantHandler(deps))

			r.Route("/search", func(r chi.Router) {
				r.Post("/flights", handlers.SearchFlightsHandler(deps))
				r.Post("/stays", handlers.SearchStaysHandler(deps))
			})

			r.Route("/theme", func(r chi.Router) {
				r.Get("/", handlers.GetThemeHandler(deps))
				r.Put("/", handlers.PutThemeHandler(deps))
				r.Delete("/", handlers.DeleteThemeHandler(deps))
			})

			r.Route("/pages", func(r chi.Router) {
				r.Get("/", handlers.ListPagesHandler(deps))
				r.Get("/{slug}", handlers.GetPageHandler(deps))
				r.Put("/{slug}", handlers.PutPageHandler(deps))
				r.Delete("/{slug}", handlers.DeletePageHandler(deps))
			})
		})
	})

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"endpoint not found"}`))
	})

	return r
}
