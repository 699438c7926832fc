package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// Logger emits one slog record per request after the wrapped handler
// returns, carrying the method, request URI, remote address, and
// elapsed time.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			logger.Info("request completed",
				"method", r.Method,
				"uri", r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"elapsed", time.Since(start),
			)
		})
	}
}
