package controller

import (
	"drills/pkg/metrics"
	"net/http"
	"time"
)

// UnmatchedRoute labels requests no route pattern matched.
const UnmatchedRoute = "unmatched"

// WithMetrics returns a middleware that observes request latency in m. It
// reads the matched pattern from the request after the handler runs, so it
// must wrap the http.ServeMux directly.
func WithMetrics(m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.Pattern
			if route == "" {
				route = UnmatchedRoute
			}
			m.Observe(r.Method, route, rec.status, time.Since(start))
		})
	}
}
