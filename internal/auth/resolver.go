// Package auth resolves bearer credentials to local accounts.
package auth

import (
	"context"

	"github.com/insight-labs/repo-insight/internal/db"
	"github.com/insight-labs/repo-insight/internal/db/models"
	"github.com/insight-labs/repo-insight/internal/githubapi"
	"gorm.io/gorm"
)

// Resolver turns a provider bearer token into a local User row, creating the
// row on first sight and refreshing the mutable fields on every later sight.
type Resolver struct {
	db     *gorm.DB
	github *githubapi.Client
}

// NewResolver creates a Resolver bound to a store handle and provider client.
func NewResolver(database *gorm.DB, github *githubapi.Client) *Resolver {
	return &Resolver{db: database, github: github}
}

// Resolve validates the token against the provider and upserts the account.
// Provider errors (githubapi.ErrInvalidCredential,
// githubapi.ErrUpstreamUnavailable) propagate verbatim.
func (r *Resolver) Resolve(ctx context.Context, token string) (*models.User, error) {
	profile, err := r.github.FetchProfile(ctx, token)
	if err != nil {
		return nil, err
	}

	return db.UpsertUser(r.db, &models.User{
		GitHubID:    profile.ID,
		Username:    profile.Login,
		Email:       profile.Email,
		AvatarURL:   profile.AvatarURL,
		AccessToken: token,
	})
}

// Lookup resolves the token against the provider but only reads the local
// account, without creating one. Returns gorm.ErrRecordNotFound when the
// identity is valid upstream but unknown locally.
func (r *Resolver) Lookup(ctx context.Context, token string) (*models.User, error) {
	profile, err := r.github.FetchProfile(ctx, token)
	if err != nil {
		return nil, err
	}
	return db.UserByGitHubID(r.db, profile.ID)
}
