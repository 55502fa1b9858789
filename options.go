package pxshot

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/pxshot/pxshot-go/metrics"
)

// DefaultTimeout bounds a single request, connection setup included
const DefaultTimeout = 60 * time.Second

// Config holds the client settings. It is copied at construction and never
// changed afterwards.
type Config struct {
	// APIKey authenticates every request. Required.
	APIKey string `json:"api_key" validate:"required"`
	// BaseURL is the API root; empty means DefaultBaseURL.
	BaseURL string `json:"base_url" validate:"required,http_url"`
	// Timeout bounds each request; zero means DefaultTimeout.
	Timeout time.Duration `json:"timeout" validate:"gte=0"`
	// UserAgent overrides DefaultUserAgent when set.
	UserAgent string `json:"user_agent"`
}

// withDefaults fills unset fields
func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent()
	}
	return c
}

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds construction-time settings for the Client.
type clientOptions struct {
	config     Config
	httpClient HTTPDoer
	logger     zerolog.Logger
	metrics    *metrics.Collector
}

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(o *clientOptions) {
		o.config.BaseURL = url
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
// It has no effect when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.config.Timeout = timeout
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.config.UserAgent = userAgent
	}
}

// WithHTTPClient replaces the HTTP transport, e.g. with a custom
// *http.Client or a test double.
func WithHTTPClient(client HTTPDoer) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithMetrics records every operation on the given collector.
func WithMetrics(collector *metrics.Collector) Option {
	return func(o *clientOptions) {
		o.metrics = collector
	}
}
