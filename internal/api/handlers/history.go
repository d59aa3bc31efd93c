package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/insight-labs/repo-insight/internal/auth"
	"github.com/insight-labs/repo-insight/internal/db"
	"gorm.io/gorm"
)

// historyEntry is one row of the history listing with the stored payload
// parsed back into a document.
type historyEntry struct {
	ID             uint            `json:"id"`
	RepositoryName string          `json:"repository_name"`
	RepositoryURL  string          `json:"repository_url"`
	Results        json.RawMessage `json:"results"`
	CreatedAt      time.Time       `json:"created_at"`
	UserID         *uint           `json:"user_id"`
}

// HistoryHandler lists the most recent analyses, newest first, capped at 20.
// With a resolvable credential the listing is scoped to that account's
// records plus anonymous ones; otherwise it is unscoped.
func HistoryHandler(database *gorm.DB, resolver *auth.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var userID *uint
		if token := BearerToken(r); token != "" {
			if user, err := resolver.Lookup(r.Context(), token); err == nil {
				userID = &user.ID
			} else {
				log.Printf("history: could not attribute request: %v", err)
			}
		}

		analyses, err := db.History(database, userID, db.HistoryLimit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to fetch analysis history")
			return
		}

		entries := make([]historyEntry, 0, len(analyses))
		for _, a := range analyses {
			if a.Results == "" {
				a.Results = "null" // empty RawMessage is not valid JSON
			}
			entries = append(entries, historyEntry{
				ID:             a.ID,
				RepositoryName: a.RepositoryName,
				RepositoryURL:  a.RepositoryURL,
				Results:        json.RawMessage(a.Results),
				CreatedAt:      a.CreatedAt,
				UserID:         a.UserID,
			})
		}
		writeJSON(w, http.StatusOK, entries)
	}
}
