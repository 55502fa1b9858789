package pxshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pxshot/pxshot-go/metrics"
)

const (
	screenshotPath = "/v1/screenshot"
	usagePath      = "/v1/usage"

	contentTypeJSON = "application/json"
)

// Client represents a Pxshot API client. It is safe for concurrent use.
type Client struct {
	config     Config
	httpClient HTTPDoer
	logger     zerolog.Logger
	metrics    *metrics.Collector
}

// New creates a client for apiKey with default settings
func New(apiKey string, opts ...Option) (*Client, error) {
	return NewWithConfig(Config{APIKey: apiKey}, opts...)
}

// NewWithConfig creates a client from a full configuration. Options are
// applied on top of cfg; unset fields fall back to the package defaults.
func NewWithConfig(cfg Config, opts ...Option) (*Client, error) {
	o := &clientOptions{
		config: cfg,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.config.APIKey == "" {
		return nil, &ValidationError{Field: "api_key", Message: "API key is required"}
	}

	config := o.config.withDefaults()
	if err := validateStruct(&config); err != nil {
		return nil, err
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	httpClient := o.httpClient
	if httpClient == nil {
		// http.Client follows up to 10 redirects by default
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
		logger:     o.logger,
		metrics:    o.metrics,
	}, nil
}

// BaseURL returns the API root the client sends requests to
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// UserAgent returns the User-Agent header value sent with every request
func (c *Client) UserAgent() string {
	return c.config.UserAgent
}

// Config returns a copy of the client configuration
func (c *Client) Config() Config {
	return c.config
}

// Screenshot captures opts.URL. Options are validated locally first; an
// invalid request never reaches the network.
func (c *Client) Screenshot(ctx context.Context, opts *ScreenshotOptions) (result ScreenshotResult, err error) {
	start := time.Now()
	defer func() { c.observe("screenshot", start, err) }()

	if err := ValidateOptions(opts); err != nil {
		return nil, err
	}

	body, err := json.Marshal(opts)
	if err != nil {
		return nil, &Error{Message: "failed to encode screenshot options", Err: err}
	}

	resp, err := c.doRequest(ctx, http.MethodPost, screenshotPath, body, "screenshot request failed")
	if err != nil {
		return nil, err
	}

	// The API answers with JSON metadata when storage was requested; a JSON
	// content type is honoured even when it was not.
	if opts.storeRequested() || strings.Contains(resp.contentType, contentTypeJSON) {
		var payload storedPayload
		if err := decodeRequired(resp.body, &payload); err != nil {
			return nil, &Error{Message: "failed to parse stored screenshot response", Err: err}
		}
		stored := payload.toStored()

		c.logger.Debug().
			Str("request_id", resp.requestID).
			Str("url", stored.URL).
			Str("expires_at", stored.ExpiresAt).
			Int64("size_bytes", stored.SizeBytes).
			Msg("Screenshot stored")

		return stored, nil
	}

	c.metrics.AddImageBytes(len(resp.body))
	c.logger.Debug().
		Str("request_id", resp.requestID).
		Str("content_type", resp.contentType).
		Int("bytes", len(resp.body)).
		Msg("Screenshot received")

	return newImage(resp.body, resp.contentType), nil
}

// Usage fetches statistics for the current billing period
func (c *Client) Usage(ctx context.Context) (usage *Usage, err error) {
	start := time.Now()
	defer func() { c.observe("usage", start, err) }()

	resp, err := c.doRequest(ctx, http.MethodGet, usagePath, nil, "usage request failed")
	if err != nil {
		return nil, err
	}

	var payload usagePayload
	if err := decodeRequired(resp.body, &payload); err != nil {
		return nil, &Error{Message: "failed to parse usage response", Err: err}
	}

	return payload.toUsage(), nil
}

// response is a fully read, successful HTTP exchange
type response struct {
	requestID   string
	contentType string
	body        []byte
}

// doRequest performs exactly one authenticated exchange. Any status >= 400
// is converted into an *APIError or *HTTPError; op prefixes error messages.
func (c *Client) doRequest(ctx context.Context, method, path string, body []byte, op string) (*response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, bodyReader)
	if err != nil {
		return nil, newHTTPError(0, fmt.Sprintf("%s: failed to create request", op), err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("User-Agent", c.config.UserAgent)
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	requestID := uuid.NewString()
	logger := c.logger.With().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Logger()

	logger.Debug().Msg("Making Pxshot API request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn().Err(err).Dur("elapsed", time.Since(start)).Msg("Pxshot request failed")
		return nil, newHTTPError(0, fmt.Sprintf("%s: %v", op, err), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warn().Err(err).Int("status", resp.StatusCode).Msg("Failed to read Pxshot response body")
		return nil, newHTTPError(0, fmt.Sprintf("%s: failed to read response body: %v", op, err), err)
	}

	logger.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(data)).
		Dur("elapsed", time.Since(start)).
		Msg("Pxshot API response")

	if resp.StatusCode >= 400 {
		apiErr := parseErrorResponse(resp.StatusCode, data, op)
		logger.Warn().Err(apiErr).Int("status", resp.StatusCode).Msg("Pxshot API returned an error")
		return nil, apiErr
	}

	return &response{
		requestID:   requestID,
		contentType: resp.Header.Get("Content-Type"),
		body:        data,
	}, nil
}

// parseErrorResponse turns an error status into an *APIError when the body
// is a {code, message} object and into an *HTTPError otherwise. A code or
// message that is present but not a string, null included, counts as
// unparseable.
func parseErrorResponse(status int, body []byte, op string) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var errResp errorPayload
		if err := json.Unmarshal(trimmed, &errResp); err == nil {
			code, codeErr := optionalString(errResp.Code, "unknown")
			message, messageErr := optionalString(errResp.Message, string(body))
			if codeErr == nil && messageErr == nil {
				return &APIError{StatusCode: status, Code: code, Message: message}
			}
		}
	}

	return newHTTPError(status, fmt.Sprintf("%s: HTTP %d", op, status), nil)
}

// decodeRequired unmarshals data into v and checks its required fields
func decodeRequired(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid response: %w", err)
	}
	return nil
}

// observe feeds the metrics collector with the outcome of one operation
func (c *Client) observe(operation string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}

	outcome := metrics.OutcomeSuccess
	switch KindOf(err) {
	case KindValidation:
		outcome = metrics.OutcomeValidation
	case KindHTTP:
		outcome = metrics.OutcomeHTTP
	case KindAPI:
		outcome = metrics.OutcomeAPI
	case KindGeneric:
		outcome = metrics.OutcomeError
	}
	c.metrics.ObserveRequest(operation, outcome, time.Since(start))
}
