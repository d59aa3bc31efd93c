// Package api assembles the HTTP surface of the insight server.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/insight-labs/repo-insight/internal/analyzer"
	"github.com/insight-labs/repo-insight/internal/api/handlers"
	"github.com/insight-labs/repo-insight/internal/api/middleware"
	"github.com/insight-labs/repo-insight/internal/auth"
	"github.com/insight-labs/repo-insight/internal/githubapi"
	"gorm.io/gorm"
)

// Deps carries the constructed dependencies the routes need. Everything is
// passed explicitly; the package keeps no global state.
type Deps struct {
	DB             *gorm.DB
	GitHub         *githubapi.Client
	Resolver       *auth.Resolver
	Analyzer       analyzer.Analyzer
	AllowedOrigins []string
}

// NewRouter builds the chi router with the full /api surface.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)

	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.HealthHandler())

		// OAuth flow
		r.Get("/auth/github", handlers.AuthURLHandler(deps.GitHub))
		r.Post("/auth/github/callback", handlers.CallbackHandler(deps.GitHub, deps.Resolver))

		// Account
		r.Get("/user", handlers.CurrentUserHandler(deps.Resolver))
		r.Get("/user/stats", handlers.UserStatsHandler(deps.DB, deps.Resolver))

		// Repositories
		r.Get("/repositories", handlers.RepositoriesHandler(deps.GitHub))

		// Analysis
		r.Post("/analyze", handlers.AnalyzeHandler(deps.DB, deps.Resolver, deps.Analyzer))
		r.Get("/history", handlers.HistoryHandler(deps.DB, deps.Resolver))
	})

	return r
}
