package chaparral

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Option configures a Client during construction in New.
//
// Options are applied before the bearer transport wrapper is installed, so
// transport-related options (like debug logging) end up underneath the
// Authorization wrapper. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithBaseURL overrides DefaultBaseURL. Trailing slashes are stripped so
// endpoint paths join cleanly.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if baseURL == "" {
			return fmt.Errorf("base URL cannot be empty")
		}
		c.baseURL = strings.TrimRight(baseURL, "/")
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request
// (including connection, TLS handshake, redirects, and reading the response).
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client wholesale. The bearer
// transport wrapper is still installed on top of whatever transport the
// supplied client carries.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// The debug transport is installed beneath the bearer wrapper; logs are
// emitted before the request is forwarded to the next transport.
// Do not enable this option in production environments as it increases
// verbosity and may include headers and method/URL metadata in logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithPollInterval tunes the backoff window used by AwaitSearchResult.
// initial is the first wait between polls; max caps the growth.
func WithPollInterval(initial, max time.Duration) Option {
	return func(c *Client) error {
		if initial <= 0 || max < initial {
			return fmt.Errorf("poll interval must satisfy 0 < initial <= max")
		}
		c.pollInitialInterval = initial
		c.pollMaxInterval = max
		return nil
	}
}

// envSettings is populated from CHAPARRAL_* environment variables.
type envSettings struct {
	APIToken    string        `envconfig:"API_TOKEN" required:"true"`
	BaseURL     string        `envconfig:"BASE_URL"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT"`
}

// NewFromEnv constructs a Client from CHAPARRAL_API_TOKEN, and optionally
// CHAPARRAL_BASE_URL and CHAPARRAL_HTTP_TIMEOUT. Explicit options win over
// environment values.
func NewFromEnv(opts ...Option) (*Client, error) {
	var settings envSettings
	if err := envconfig.Process("chaparral", &settings); err != nil {
		return nil, err
	}
	var envOpts []Option
	if settings.BaseURL != "" {
		envOpts = append(envOpts, WithBaseURL(settings.BaseURL))
	}
	if settings.HTTPTimeout > 0 {
		envOpts = append(envOpts, WithHTTPTimeout(settings.HTTPTimeout))
	}
	return New(settings.APIToken, append(envOpts, opts...)...)
}
