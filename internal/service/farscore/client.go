package farscore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const (
	defaultBaseURL = "http://localhost:8080"
	lookupPath     = "/api/farscore"
	userAgent      = "masks-frame"
)

// Client implements Service against the farscore lookup endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the origin serving /api/farscore.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// NewClient creates a new farscore client.
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

// Response shape of /api/farscore:
// { "userData": { "Socials": { "Social": [ {profileName, userId, profileImage} ] } } }

type lookupResponse struct {
	UserData *struct {
		Socials *struct {
			Social []socialEntry `json:"Social"`
		} `json:"Socials"`
	} `json:"userData"`
}

type socialEntry struct {
	ProfileName  looseString `json:"profileName"`
	UserID       looseString `json:"userId"`
	ProfileImage looseString `json:"profileImage"`
}

// looseString accepts JSON strings, numbers and null; upstreams disagree on
// whether userId is quoted.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = looseString(v)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected string or number, got %s", data)
		}
		*s = looseString(n.String())
	}
	return nil
}

// GetSocial fetches the first social entry for fid.
func (c *Client) GetSocial(ctx context.Context, fid string) (*Social, error) {
	u := c.baseURL + lookupPath + "?" + url.Values{"userId": {fid}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching farscore: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.StatusCode}
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding farscore response: %w", err)
	}
	if body.UserData == nil || body.UserData.Socials == nil || len(body.UserData.Socials.Social) == 0 {
		return nil, ErrNoProfile
	}

	first := body.UserData.Socials.Social[0]
	return &Social{
		ProfileName:  string(first.ProfileName),
		UserID:       string(first.UserID),
		ProfileImage: string(first.ProfileImage),
	}, nil
}

// Compile-time interface check
var _ Service = (*Client)(nil)
