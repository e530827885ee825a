package middleware

import (
	"net/http"
	"time"

	"github.com/vango-dev/gallery/internal/metrics"
)

// Metrics creates middleware that records request counts and durations
// by route pattern and status. A nil m disables recording.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := wrap(w, r)
			next.ServeHTTP(ww, r)
			m.ObserveRequest(RoutePattern(r), status(ww), time.Since(start))
		})
	}
}
