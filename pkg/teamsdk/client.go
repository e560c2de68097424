package teamsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the teams service. Use Session for authenticated calls.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Session returns a Session that sends accessToken as a bearer token.
func (c *Client) Session(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, "", http.MethodGet, "/livez", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReadiness checks if the service can reach its database.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, "", http.MethodGet, "/readyz", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// LookupInvite describes the invite named by a bare token or an invite link.
// It needs no credentials.
func (c *Client) LookupInvite(ctx context.Context, tokenOrLink string) (*InviteLookupResponse, error) {
	path := "/v1/invites/lookup?token=" + url.QueryEscape(tokenOrLink)

	var out InviteLookupResponse
	if err := c.do(ctx, "", http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
