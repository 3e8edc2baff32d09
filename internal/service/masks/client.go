package masks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const (
	defaultBaseURL = "https://app.masks.wtf"
	balancePath    = "/api/balance"
	rankPath       = "/api/rank"
	userAgent      = "masks-frame"
)

// Client implements Service using the Masks REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// NewClient creates a new Masks API client.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// fidQuery mirrors what the Masks API has always been called with: "fid=<id>"
// when known and a bare "fid" key otherwise.
func fidQuery(fid string) string {
	if fid == "" {
		return "fid"
	}
	return "fid=" + url.QueryEscape(fid)
}

func (c *Client) get(ctx context.Context, path, fid string, target any) error {
	u := c.baseURL + path + "?" + fidQuery(fid)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return &UpstreamError{Endpoint: path, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

func (c *Client) GetBalance(ctx context.Context, fid string) (*Balance, error) {
	var b Balance
	if err := c.get(ctx, balancePath, fid, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) GetRank(ctx context.Context, fid string) (*Rank, error) {
	var r Rank
	if err := c.get(ctx, rankPath, fid, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Compile-time interface check
var _ Service = (*Client)(nil)
