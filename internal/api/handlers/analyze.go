package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/insight-labs/repo-insight/internal/analyzer"
	"github.com/insight-labs/repo-insight/internal/auth"
	"github.com/insight-labs/repo-insight/internal/db"
	"github.com/insight-labs/repo-insight/internal/db/models"
	"github.com/insight-labs/repo-insight/internal/logging"
	"github.com/insight-labs/repo-insight/internal/util"
	"gorm.io/gorm"
)

// AnalyzeHandler produces a result payload for the named repository and
// records it. Attribution and persistence are best-effort: a failed token
// resolution records the analysis as anonymous, and a failed insert is
// logged without failing the request.
func AnalyzeHandler(database *gorm.DB, resolver *auth.Resolver, engine analyzer.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			RepositoryID int64  `json:"repositoryId"`
			Owner        string `json:"owner"`
			Repo         string `json:"repo"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		requestID := logging.GetRequestID(r.Context())

		var userID *uint
		if token := BearerToken(r); token != "" {
			if user, err := resolver.Lookup(r.Context(), token); err == nil {
				userID = &user.ID
			} else {
				log.Printf("[%s] analyze: could not attribute request: %v", requestID, err)
			}
		}

		result, err := engine.Analyze(r.Context(), body.Owner, body.Repo)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Analysis failed")
			return
		}

		payload, err := json.Marshal(result)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Analysis failed")
			return
		}

		record := &models.Analysis{
			UserID:         userID,
			RepositoryName: fmt.Sprintf("%s/%s", body.Owner, body.Repo),
			RepositoryURL:  fmt.Sprintf("https://github.com/%s/%s", body.Owner, body.Repo),
			Results:        string(payload),
			CreatedAt:      result.AnalyzedAt,
		}
		if err := db.InsertAnalysis(database, record); err != nil {
			// Results are not mission-critical; degrade to returning the
			// payload without durability.
			log.Printf("[%s] analyze: failed to save result for %s: %v", requestID, record.RepositoryName, err)
		} else {
			log.Printf("[%s] analyze: saved result %d for %s: %s", requestID, record.ID, record.RepositoryName, util.TruncateBytes(payload))
		}

		writeJSON(w, http.StatusOK, result)
	}
}
