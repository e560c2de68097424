package slogx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/bartab-teams/pkg/idx"
)

// HTTPMiddleware logs requests and attaches a contextual logger into request
// context. Server errors are logged at error level, client errors at warn.
func HTTPMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			reqID := r.Header.Get("X-Request-ID")
			if reqID == "" {
				reqID = idx.New().String()
			}
			rw.Header().Set("X-Request-ID", reqID)

			logger := base.With(
				"req_id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			r = r.WithContext(WithContext(r.Context(), logger))
			next.ServeHTTP(rw, r)

			level := slog.LevelInfo
			switch {
			case rw.status >= http.StatusInternalServerError:
				level = slog.LevelError
			case rw.status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			logger.Log(r.Context(), level, "http_request",
				"status", rw.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"user_agent", r.UserAgent(),
			)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter

	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
