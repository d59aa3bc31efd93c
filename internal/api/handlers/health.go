package handlers

import (
	"net/http"

	"github.com/insight-labs/repo-insight/internal/version"
)

// HealthHandler reports liveness.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "OK",
			"message": "Backend server is running",
			"version": version.Version,
		})
	}
}
