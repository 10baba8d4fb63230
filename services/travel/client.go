// File: services/travel/client.go
package travel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tripwise/config"
	"tripwise/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	// ErrNoResults is the normal negative outcome of a search pipeline:
	// no destination match, no offers, or a provider hiccup that was
	// degraded at that step. Callers must not treat it as a failure to retry.
	ErrNoResults = errors.New("travel: no results")

	// ErrMissingCredentials means the RapidAPI key is not configured.
	ErrMissingCredentials = errors.New("travel: missing RapidAPI credentials")
)

// Client talks to the Booking.com RapidAPI endpoints for hotel and flight
// lookups. It holds no per-search state; each pipeline threads its own
// query value through the steps.
type Client struct {
	BaseURL    string
	Host       string
	APIKey     string
	HTTPClient *http.Client
	Cache      *redis.Client
	Logger     *zap.Logger
}

// NewClient builds a Client from configuration. The cache client is optional
// and is used to memoize destination resolutions.
func NewClient(host, apiKey string, cache *redis.Client) *Client {
	timeout := time.Duration(config.AppConfig.ProviderTimeoutSec) * time.Second
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		BaseURL:    "https://" + host,
		Host:       host,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: timeout},
		Cache:      cache,
		Logger:     utils.GetLogger(),
	}
}

func (c *Client) ready() error {
	if c.APIKey == "" {
		return ErrMissingCredentials
	}
	return nil
}

// call issues one GET to the provider and decodes the JSON body into out.
// Non-2xx and non-JSON responses come back as errors; the pipeline steps
// decide how far they degrade.
func (c *Client) call(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := c.BaseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("x-rapidapi-key", c.APIKey)
	req.Header.Set("x-rapidapi-host", c.Host)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("provider returned status %d for %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding provider response for %s: %w", path, err)
	}
	return nil
}

func (c *Client) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}
