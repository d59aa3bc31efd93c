// Package githubapi wraps the subset of the GitHub REST API the service
// proxies: OAuth code exchange, profile fetch and repository listing.
// No retries are performed; failures surface immediately to the caller.
package githubapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

var (
	// ErrInvalidCredential indicates a missing, expired or malformed bearer
	// token, or a malformed profile payload from the provider.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrUpstreamUnavailable indicates a transport-level failure contacting
	// the provider.
	ErrUpstreamUnavailable = errors.New("github unavailable")
)

// RepoPageSize caps the repository listing at one provider page.
const RepoPageSize = 50

// Client calls the GitHub REST API. The zero value is not usable; construct
// with NewClient. APIBaseURL and OAuth are exported so tests can point the
// client at a local server.
type Client struct {
	APIBaseURL string
	OAuth      *oauth2.Config
	HTTPClient *http.Client
}

// NewClient creates a GitHub API client with a bounded request timeout.
func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		APIBaseURL: "https://api.github.com",
		OAuth:      NewOAuthConfig(clientID, clientSecret),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Profile is the provider's view of the authenticated user.
type Profile struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	Email     string `json:"email"`
}

// Repository is one entry of the authenticated user's repository listing.
type Repository struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	FullName  string    `json:"full_name"`
	HTMLURL   string    `json:"html_url"`
	Private   bool      `json:"private"`
	Language  *string   `json:"language"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExchangeCode posts an authorization code to the provider's token endpoint
// and returns the access token. The provider's error description is surfaced
// when no token is granted.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.HTTPClient)
	token, err := c.OAuth.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			desc := retrieveErr.ErrorDescription
			if desc == "" {
				desc = retrieveErr.ErrorCode
			}
			if desc == "" {
				desc = "Unknown error"
			}
			return "", errors.New(desc)
		}
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if token.AccessToken == "" {
		return "", errors.New("Unknown error")
	}
	return token.AccessToken, nil
}

// FetchProfile returns the profile for a bearer token. A 401/403 from the
// provider, or a payload missing the identity fields, fails with
// ErrInvalidCredential.
func (c *Client) FetchProfile(ctx context.Context, token string) (*Profile, error) {
	resp, err := c.get(ctx, "/user", token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrInvalidCredential
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github user endpoint returned %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if profile.ID == 0 || profile.Login == "" {
		return nil, fmt.Errorf("%w: profile missing id or login", ErrInvalidCredential)
	}
	return &profile, nil
}

// ListRepositories returns the user's repositories, most recently updated
// first, capped at RepoPageSize.
func (c *Client) ListRepositories(ctx context.Context, token string) ([]Repository, error) {
	path := fmt.Sprintf("/user/repos?sort=updated&per_page=%d", RepoPageSize)
	resp, err := c.get(ctx, path, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrInvalidCredential
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github repos endpoint returned %d", resp.StatusCode)
	}

	var repos []Repository
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("decode repositories: %w", err)
	}
	return repos, nil
}

func (c *Client) get(ctx context.Context, path, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.APIBaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return resp, nil
}
