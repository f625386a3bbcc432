// Package api implements the deployment-hosting HTTP client.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/EnterStudios/now-desktop/internal/buildinfo"
	"github.com/EnterStudios/now-desktop/internal/models"
)

// Error taxonomy. Startup fetch failures degrade to onboarding; delete
// failures are surfaced to the user. Callers discriminate with errors.Is.
var (
	ErrFetch  = errors.New("deployment fetch failed")
	ErrDelete = errors.New("deployment delete failed")
)

const defaultTimeout = 30 * time.Second

// Client talks to the deployment-hosting API. It is stateless per call and
// never mutates a catalog it has returned.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Deployments fetches the ordered deployment catalog for a session token.
// The order returned by the API is preserved.
func (c *Client) Deployments(ctx context.Context, token string) ([]models.Deployment, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/now/deployments", token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: API returned %d", ErrFetch, resp.StatusCode)
	}

	var payload struct {
		Deployments []models.Deployment `json:"deployments"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrFetch, err)
	}
	return payload.Deployments, nil
}

// DeleteDeployment removes a deployment by UID. On failure the catalog the
// caller holds stays valid; removal from any menu is the caller's concern.
func (c *Client) DeleteDeployment(ctx context.Context, token, uid string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/now/deployments/"+uid, token)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDelete, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDelete, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("%w: API returned %d", ErrDelete, resp.StatusCode)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path, token string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", "now-desktop/"+buildinfo.Version)
	return req, nil
}
