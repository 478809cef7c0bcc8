// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, CORS, request middleware and the metrics endpoint

package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portfolio-api/api/middleware"
	"portfolio-api/core/interfaces"
)

const (
	apiTitle       = "Portfolio API"
	apiVersion     = "1.0.0"
	apiDescription = "Articles, projects and blog posts for the portfolio site, plus the chat assistant proxy"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger         interfaces.Logger
	RateLimit      int           // requests per window; 0 disables limiting
	RateWindow     time.Duration // rate limit window
	AllowedOrigins []string      // CORS origins; empty allows all
	EnableMetrics  bool          // expose /metrics and record request metrics
	TrustProxy     bool          // take the client IP from X-Real-IP / X-Forwarded-For
}

// NewAPI creates a Huma API with CORS only
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// Forwarding headers are only believed behind a proxy that sets them
	if cfg.TrustProxy {
		router.Use(chimiddleware.RealIP)
	}

	// CORS must run first so preflight requests are never rate limited
	router.Use(cors.Handler(corsOptions(cfg.AllowedOrigins)))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware)
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	if cfg.EnableMetrics {
		router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	}

	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = apiDescription

	// The OpenAPI document is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, config)

	return api, router
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "Retry-After"},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	}
}
