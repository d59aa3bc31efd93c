package githubapi

import (
	"net/url"

	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"
)

// Scopes requested during the OAuth flow. "repo" grants read access to the
// user's repositories, which the repository listing needs.
var Scopes = []string{"repo"}

// NewOAuthConfig returns the OAuth2 config for GitHub authentication.
func NewOAuthConfig(clientID, clientSecret string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scopes:       Scopes,
		Endpoint:     githuboauth.Endpoint,
	}
}

// AuthorizeURL builds the provider consent page URL the SPA redirects to.
func (c *Client) AuthorizeURL() string {
	v := url.Values{}
	v.Set("client_id", c.OAuth.ClientID)
	v.Set("scope", "repo")
	return c.OAuth.Endpoint.AuthURL + "?" + v.Encode()
}
