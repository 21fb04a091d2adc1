package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"bl-extraction/internal/cache"
	"bl-extraction/internal/config"
	"bl-extraction/internal/database"
	"bl-extraction/internal/handlers"
	"bl-extraction/internal/ratelimit"
)

// Submission rate limit applied to POST /api/extractions per client IP
const (
	submissionLimit  = 60
	submissionWindow = time.Minute
)

// New builds the full HTTP handler: chi router, middleware chain, and all
// API routes.
func New(cfg *config.Config, db *database.DB, cacheManager *cache.Manager) http.Handler {
	limiter := ratelimit.NewLimiter(cfg, submissionLimit, submissionWindow)

	extractionHandler := handlers.NewExtractionHandler(db, cacheManager, cfg.MaxTextBytes)
	healthHandler := handlers.NewHealthHandler(db)
	adminHandler := handlers.NewAdminHandler(cacheManager)

	adminOnly := func(r chi.Router) chi.Router {
		if cfg.DisableAdminAuth {
			return r
		}
		return r.With(AuthMiddleware(cfg.AdminAPIKey))
	}

	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.HealthCheck)

		r.Route("/extractions", func(r chi.Router) {
			r.With(RateLimitMiddleware(limiter)).Post("/", extractionHandler.CreateExtraction)
			r.Get("/", extractionHandler.GetExtractions)
			r.Get("/{id}", extractionHandler.GetExtractionByID)
			adminOnly(r).Delete("/{id}", extractionHandler.DeleteExtraction)
		})

		r.Route("/admin", func(r chi.Router) {
			adminOnly(r).Get("/cache", adminHandler.GetCacheStats)
		})
	})

	return Chain(r,
		RecoveryMiddleware,
		LoggingMiddleware,
		SecurityMiddleware,
		CORSMiddleware,
		ContentTypeMiddleware,
	)
}
