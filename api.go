package pxshot

import (
	"context"
	"net/http"
)

// API defines the operations offered by the Pxshot service
type API interface {
	// Screenshot captures a page and returns the image or its stored location
	Screenshot(ctx context.Context, opts *ScreenshotOptions) (ScreenshotResult, error)

	// Usage returns consumption for the current billing period
	Usage(ctx context.Context) (*Usage, error)
}

// HTTPDoer is the transport the client sends requests through.
// *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ API = (*Client)(nil)
