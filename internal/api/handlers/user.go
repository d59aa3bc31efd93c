package handlers

import (
	"errors"
	"net/http"

	"github.com/insight-labs/repo-insight/internal/auth"
	"github.com/insight-labs/repo-insight/internal/db"
	"github.com/insight-labs/repo-insight/internal/githubapi"
	"gorm.io/gorm"
)

// CurrentUserHandler revalidates the bearer credential against the provider
// and returns the local account row.
func CurrentUserHandler(resolver *auth.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := BearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "No token provided")
			return
		}

		user, err := resolver.Lookup(r.Context(), token)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, user)
		case errors.Is(err, githubapi.ErrInvalidCredential):
			writeError(w, http.StatusUnauthorized, "Invalid token")
		case errors.Is(err, gorm.ErrRecordNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to fetch user info")
		}
	}
}

// UserStatsHandler returns analysis counts for the authenticated account.
func UserStatsHandler(database *gorm.DB, resolver *auth.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := BearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "No token provided")
			return
		}

		user, err := resolver.Lookup(r.Context(), token)
		if err != nil {
			if errors.Is(err, githubapi.ErrInvalidCredential) {
				writeError(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		stats, err := db.StatsForUser(database, user.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to fetch stats")
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}
