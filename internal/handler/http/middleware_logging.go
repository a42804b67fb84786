package http

import (
	"net/http"
	"time"

	"github.com/legaldoc-app/legaldoc-server/internal/logger"
)

// withLogging emits one summary line per request: uri, method, response
// status, duration, and response size. The body itself is never logged.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		uri, method := r.RequestURI, r.Method
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
