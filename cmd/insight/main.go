package main

import (
	"log"
	"net/http"
	"os"

	"github.com/insight-labs/repo-insight/internal/analyzer"
	"github.com/insight-labs/repo-insight/internal/api"
	"github.com/insight-labs/repo-insight/internal/auth"
	"github.com/insight-labs/repo-insight/internal/config"
	"github.com/insight-labs/repo-insight/internal/db"
	"github.com/insight-labs/repo-insight/internal/githubapi"
	"github.com/insight-labs/repo-insight/internal/version"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.GitHub.ClientID == "" || cfg.GitHub.ClientSecret == "" {
		log.Printf("⚠️  GITHUB_CLIENT_ID / GITHUB_CLIENT_SECRET not set; OAuth login will fail")
	}

	// Initialize database
	database, err := db.InitDB(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize GitHub client and resolver
	github := githubapi.NewClient(cfg.GitHub.ClientID, cfg.GitHub.ClientSecret)
	resolver := auth.NewResolver(database, github)

	router := api.NewRouter(api.Deps{
		DB:             database,
		GitHub:         github,
		Resolver:       resolver,
		Analyzer:       analyzer.NewMock(),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	addr := cfg.Addr()
	log.Printf("🚀 Repo-Insight %s starting on http://%s", version.Version, addr)
	log.Printf("🔌 API: http://%s/api", addr)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
