// ABOUTME: Prometheus middleware recording request counts and latency
// ABOUTME: Labels use the matched chi route pattern to keep cardinality bounded

package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"portfolio-api/infrastructure/metrics"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware observes every request once the router has matched it
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		metrics.ObserveRequest(r.Method, routePattern(r), wrapped.statusCode, time.Since(start))
	})
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}
