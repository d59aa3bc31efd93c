package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/insight-labs/repo-insight/internal/auth"
	"github.com/insight-labs/repo-insight/internal/githubapi"
)

// AuthURLHandler returns the provider consent page URL for the SPA to
// redirect to.
func AuthURLHandler(github *githubapi.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"authUrl": github.AuthorizeURL(),
		})
	}
}

// CallbackHandler exchanges an authorization code for an access token,
// resolves the identity to a local account and returns both to the caller.
func CallbackHandler(github *githubapi.Client, resolver *auth.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Code string `json:"code"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"error":   "Invalid request body",
			})
			return
		}

		token, err := github.ExchangeCode(r.Context(), body.Code)
		if err != nil {
			if errors.Is(err, githubapi.ErrUpstreamUnavailable) {
				writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
					"success": false,
					"error":   "Authentication failed: " + err.Error(),
				})
				return
			}
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"error":   "Failed to get access token: " + err.Error(),
			})
			return
		}

		user, err := resolver.Resolve(r.Context(), token)
		if err != nil {
			log.Printf("callback: failed to resolve account: %v", err)
			if errors.Is(err, githubapi.ErrInvalidCredential) {
				writeJSON(w, http.StatusBadRequest, map[string]interface{}{
					"success": false,
					"error":   "Invalid user data from GitHub",
				})
				return
			}
			writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"success": false,
				"error":   "Authentication failed: " + err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"token":   token,
			"user": map[string]interface{}{
				"id":         user.ID,
				"username":   user.Username,
				"avatar_url": user.AvatarURL,
				"email":      user.Email,
			},
		})
	}
}
