package middleware

import (
	"net/http"
	"strconv"
	"time"

	"inkwell-post-service/internal/metrics"
)

func Metrics(provider metrics.MetricsProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := newStatusRecorder(w)

			next.ServeHTTP(recorder, r)

			// The route pattern keeps label cardinality bounded; raw paths
			// carry ids.
			path := r.Pattern
			if path == "" {
				path = r.URL.Path
			}
			status := strconv.Itoa(recorder.status)
			provider.IncrementHTTPRequests(r.Method, path, status)
			provider.RecordHTTPRequestDuration(r.Method, path, status, time.Since(start))
		})
	}
}
