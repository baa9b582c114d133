// Package client talks to the cover letter API the way the web front end does.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/AwwwRyan/coverletter-gen/internal/generation/domain"
	profile "github.com/AwwwRyan/coverletter-gen/internal/profile/domain"
)

type Client struct {
	baseURL    string
	token      string
	userID     string
	httpClient *http.Client
	generating atomic.Bool
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUserID sends X-User-Id for servers running with AUTH_MODE=dev.
func WithUserID(uid string) Option {
	return func(c *Client) { c.userID = uid }
}

// New creates a client for baseURL. token is a Firebase ID token and may be
// empty against a dev server.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generating reports whether a Generate call is in flight.
func (c *Client) Generating() bool {
	return c.generating.Load()
}

// FetchProfile loads the signed-in user's profile.
func (c *Client) FetchProfile(ctx context.Context) (*profile.Profile, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/v1/profile", nil)
	if err != nil {
		return nil, ErrFetchProfile
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrFetchProfile
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrProfileNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, ErrFetchProfile
	}

	var out struct {
		Profile *profile.Profile `json:"profile"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.Profile == nil {
		return nil, ErrFetchProfile
	}
	return out.Profile, nil
}

// Generate requests one letter. Only one call runs at a time per client; a
// second concurrent call fails with ErrInProgress. The returned letter is raw
// model output; render it through a Session.
func (c *Client) Generate(ctx context.Context, r domain.Request) (string, error) {
	if !c.generating.CompareAndSwap(false, true) {
		return "", ErrInProgress
	}
	defer c.generating.Store(false)

	body, err := json.Marshal(r)
	if err != nil {
		return "", ErrGenerate
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/api/v1/generate", body)
	if err != nil {
		return "", ErrGenerate
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", ErrGenerate
	}
	defer resp.Body.Close()

	var out struct {
		Letter string `json:"letter"`
		Error  string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", ErrGenerate
	}

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 && out.Letter != "" {
		return out.Letter, nil
	}
	if out.Error != "" {
		return "", &APIError{Status: resp.StatusCode, Message: out.Error}
	}
	return "", ErrGenerate
}

func (c *Client) newRequest(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.userID != "" {
		req.Header.Set("X-User-Id", c.userID)
	}
	return req, nil
}
