package api

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// MetricsMiddleware tracks request timing per route
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// skip the metrics and health endpoints to avoid polluting metrics
		if r.URL.Path == "/api/metrics" || r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}
		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)
		GetMetrics().Record(r.Method, r.URL.Path, wrapped.statusCode, duration)

		if duration > time.Second {
			zap.S().Warnw("slow request",
				"method", r.Method,
				"path", r.URL.Path,
				"duration", duration,
				"status", wrapped.statusCode,
			)
		}
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
