// Package middleware holds HTTP middleware shared by the API routes.
package middleware

import (
	"net/http"

	"github.com/insight-labs/repo-insight/internal/logging"
)

// RequestID injects a request ID into the request context and echoes it in
// the X-Request-ID response header. A client-supplied ID is kept.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(logging.WithRequestID(r.Context(), requestID)))
	})
}
