package handlers

import (
	"errors"
	"net/http"

	"github.com/insight-labs/repo-insight/internal/githubapi"
)

// RepositoriesHandler proxies the provider's repository listing for the
// authenticated user, most recently updated first.
func RepositoriesHandler(github *githubapi.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := BearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "No token provided")
			return
		}

		repos, err := github.ListRepositories(r.Context(), token)
		if err != nil {
			if errors.Is(err, githubapi.ErrInvalidCredential) {
				writeError(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to fetch repositories")
			return
		}
		writeJSON(w, http.StatusOK, repos)
	}
}
