// Package config loads process configuration from the environment, reading a
// local .env file first when one exists.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Upstream modes.
const (
	UpstreamLive = "live"
	UpstreamMock = "mock"
)

const (
	defaultPort         = "8080"
	defaultFrameURL     = "http://localhost:8080/frames"
	defaultMasksBaseURL = "https://app.masks.wtf"
	defaultComposerURL  = "https://warpcast.com/~/compose"
)

// Config holds everything cmd/server needs to wire the frame service.
type Config struct {
	Port string

	// FrameURL is the public URL of the frame endpoint. Button targets post back to it.
	FrameURL string
	// ShareEmbedURL is embedded in the composer link of the Share button.
	ShareEmbedURL string
	// ComposerURL is the external cast composer opened by the Share button.
	ComposerURL string

	FarscoreBaseURL string
	MasksBaseURL    string

	// UpstreamMode selects live upstream clients or in-process demo data.
	UpstreamMode string
}

// Load reads .env (if present) and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function and validates it.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Port:         get("PORT", defaultPort),
		FrameURL:     strings.TrimRight(get("FRAME_URL", defaultFrameURL), "/"),
		ComposerURL:  get("COMPOSER_URL", defaultComposerURL),
		MasksBaseURL: strings.TrimRight(get("MASKS_BASE_URL", defaultMasksBaseURL), "/"),
		UpstreamMode: strings.ToLower(get("UPSTREAM_MODE", UpstreamLive)),
	}
	cfg.ShareEmbedURL = get("SHARE_EMBED_URL", cfg.FrameURL)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	origin, _ := originOf(cfg.FrameURL)
	cfg.FarscoreBaseURL = strings.TrimRight(get("FARSCORE_BASE_URL", origin), "/")
	if err := checkURL("FARSCORE_BASE_URL", cfg.FarscoreBaseURL); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if n, err := strconv.Atoi(c.Port); err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}
	if c.UpstreamMode != UpstreamLive && c.UpstreamMode != UpstreamMock {
		return fmt.Errorf("invalid UPSTREAM_MODE %q: want %q or %q", c.UpstreamMode, UpstreamLive, UpstreamMock)
	}
	return errors.Join(
		checkURL("FRAME_URL", c.FrameURL),
		checkURL("SHARE_EMBED_URL", c.ShareEmbedURL),
		checkURL("COMPOSER_URL", c.ComposerURL),
		checkURL("MASKS_BASE_URL", c.MasksBaseURL),
	)
}

func checkURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid %s %q: absolute http(s) URL required", name, raw)
	}
	return nil
}

func originOf(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	return u.Scheme + "://" + u.Host, nil
}
