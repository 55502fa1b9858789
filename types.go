package pxshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Format is the image encoding requested from the API
type Format string

const (
	// FormatPNG requests a PNG image (server default)
	FormatPNG Format = "png"
	// FormatJPEG requests a JPEG image
	FormatJPEG Format = "jpeg"
	// FormatWEBP requests a WebP image
	FormatWEBP Format = "webp"
)

// String returns the wire form of the format
func (f Format) String() string {
	return string(f)
}

// WaitUntil selects when navigation is considered complete
type WaitUntil string

const (
	// WaitUntilLoad waits for the window load event
	WaitUntilLoad WaitUntil = "load"
	// WaitUntilDOMContentLoaded waits for the DOMContentLoaded event
	WaitUntilDOMContentLoaded WaitUntil = "domcontentloaded"
	// WaitUntilNetworkIdle waits until there has been no network activity for 500ms
	WaitUntilNetworkIdle WaitUntil = "networkidle"
	// WaitUntilCommit waits for the first network response
	WaitUntilCommit WaitUntil = "commit"
)

// String returns the wire form of the wait condition
func (w WaitUntil) String() string {
	return string(w)
}

// ScreenshotOptions describes a single capture. Only URL is required; nil
// pointers and empty enum values are left out of the request body.
type ScreenshotOptions struct {
	URL               string    `json:"url" validate:"required"`
	Format            Format    `json:"format,omitempty" validate:"omitempty,oneof=png jpeg webp"`
	Quality           *int      `json:"quality,omitempty" validate:"omitempty,percent"`
	Width             *int      `json:"width,omitempty" validate:"omitempty,gt=0"`
	Height            *int      `json:"height,omitempty" validate:"omitempty,gt=0"`
	FullPage          *bool     `json:"full_page,omitempty"`
	WaitUntil         WaitUntil `json:"wait_until,omitempty" validate:"omitempty,oneof=load domcontentloaded networkidle commit"`
	WaitForSelector   *string   `json:"wait_for_selector,omitempty"`
	WaitForTimeout    *int      `json:"wait_for_timeout,omitempty"`
	DeviceScaleFactor *float64  `json:"device_scale_factor,omitempty" validate:"omitempty,gt=0"`
	Store             *bool     `json:"store,omitempty"`
	BlockAds          *bool     `json:"block_ads,omitempty"`
}

// storeRequested reports whether the caller asked for server-side storage
func (o *ScreenshotOptions) storeRequested() bool {
	return o.Store != nil && *o.Store
}

// Int returns a pointer to v, for optional integer fields
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for optional boolean fields
func Bool(v bool) *bool { return &v }

// String returns a pointer to v, for optional string fields
func String(v string) *string { return &v }

// Float64 returns a pointer to v, for optional float fields
func Float64(v float64) *float64 { return &v }

// Usage is a snapshot of the account's consumption for the current billing period
type Usage struct {
	ScreenshotsTaken  int    `json:"screenshots_taken"`
	ScreenshotsLimit  int    `json:"screenshots_limit"`
	StorageBytesUsed  int64  `json:"storage_bytes_used"`
	StorageBytesLimit int64  `json:"storage_bytes_limit"`
	PeriodStart       string `json:"period_start"`
	PeriodEnd         string `json:"period_end"`
}

// ScreenshotsRemaining returns how many captures are left this period
func (u *Usage) ScreenshotsRemaining() int {
	if u.ScreenshotsTaken >= u.ScreenshotsLimit {
		return 0
	}
	return u.ScreenshotsLimit - u.ScreenshotsTaken
}

// StorageBytesRemaining returns the unused storage allowance in bytes
func (u *Usage) StorageBytesRemaining() int64 {
	if u.StorageBytesUsed >= u.StorageBytesLimit {
		return 0
	}
	return u.StorageBytesLimit - u.StorageBytesUsed
}

// wireInt decodes a JSON number into an integer. Integral floats such as
// 1.0 are accepted; strings and fractional values are not.
type wireInt int64

func (w *wireInt) UnmarshalJSON(data []byte) error {
	text := string(data)
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		*w = wireInt(n)
		return nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return fmt.Errorf("cannot decode %s as an integer", text)
	}
	*w = wireInt(f)
	return nil
}

// usagePayload mirrors Usage with pointer fields so absent keys can be told
// apart from zero values.
type usagePayload struct {
	ScreenshotsTaken  *wireInt `json:"screenshots_taken" validate:"required"`
	ScreenshotsLimit  *wireInt `json:"screenshots_limit" validate:"required"`
	StorageBytesUsed  *wireInt `json:"storage_bytes_used" validate:"required"`
	StorageBytesLimit *wireInt `json:"storage_bytes_limit" validate:"required"`
	PeriodStart       *string  `json:"period_start" validate:"required"`
	PeriodEnd         *string  `json:"period_end" validate:"required"`
}

func (p *usagePayload) toUsage() *Usage {
	return &Usage{
		ScreenshotsTaken:  int(*p.ScreenshotsTaken),
		ScreenshotsLimit:  int(*p.ScreenshotsLimit),
		StorageBytesUsed:  int64(*p.StorageBytesUsed),
		StorageBytesLimit: int64(*p.StorageBytesLimit),
		PeriodStart:       *p.PeriodStart,
		PeriodEnd:         *p.PeriodEnd,
	}
}

// storedPayload is the wire form of a stored screenshot response
type storedPayload struct {
	URL       *string  `json:"url" validate:"required"`
	ExpiresAt *string  `json:"expires_at" validate:"required"`
	Width     *wireInt `json:"width" validate:"required"`
	Height    *wireInt `json:"height" validate:"required"`
	SizeBytes *wireInt `json:"size_bytes" validate:"required"`
}

func (p *storedPayload) toStored() *StoredScreenshot {
	return &StoredScreenshot{
		URL:       *p.URL,
		ExpiresAt: *p.ExpiresAt,
		Width:     int(*p.Width),
		Height:    int(*p.Height),
		SizeBytes: int64(*p.SizeBytes),
	}
}

// errorPayload is the body the API sends alongside 4xx/5xx statuses. Fields
// stay raw so an explicit null can be told apart from an absent key.
type errorPayload struct {
	Code    json.RawMessage `json:"code"`
	Message json.RawMessage `json:"message"`
}

// optionalString decodes a raw field that must be a string when present
func optionalString(raw json.RawMessage, fallback string) (string, error) {
	if len(raw) == 0 {
		return fallback, nil
	}
	if bytes.Equal(raw, []byte("null")) {
		return "", errors.New("unexpected null")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	return s, nil
}

// Expiry parses ExpiresAt as an RFC 3339 timestamp
func (s *StoredScreenshot) Expiry() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s.ExpiresAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("pxshot: invalid expires_at %q: %w", s.ExpiresAt, err)
	}
	return t, nil
}
