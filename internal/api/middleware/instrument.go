package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pulsekit/pulse/internal/metrics"
)

// Instrument returns a middleware that records every completed request in
// the Prometheus instruments. The routed chi pattern is used as the path
// label; requests that matched no route are bucketed under "unmatched" so
// arbitrary URLs cannot blow up label cardinality.
func Instrument(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			path := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					path = p
				}
			}
			m.ObserveRequest(r.Method, path, wrapped.status, time.Since(start))
		})
	}
}
