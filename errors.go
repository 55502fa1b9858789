package pxshot

import (
	"errors"
	"fmt"
)

// Common errors that can be checked with errors.Is
var (
	// ErrUnauthorized indicates the API key was rejected
	ErrUnauthorized = errors.New("invalid or expired API key")
	// ErrQuotaExceeded indicates the plan's screenshot or storage quota is used up
	ErrQuotaExceeded = errors.New("quota exceeded")
	// ErrRateLimited indicates too many requests were sent
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrStoredResult is returned when bytes are requested from a stored screenshot
	ErrStoredResult = errors.New("screenshot was stored, use Stored instead")
	// ErrBytesResult is returned when stored metadata is requested from raw image bytes
	ErrBytesResult = errors.New("screenshot was not stored, use Bytes instead")
	// ErrBytesTaken is returned once TakeBytes has moved the image data out
	ErrBytesTaken = errors.New("screenshot bytes were already taken")
)

// ErrorKind classifies every error returned by this package
type ErrorKind int

const (
	// KindNone is reported for a nil error or one not produced by this package
	KindNone ErrorKind = iota
	// KindValidation marks invalid input caught before any request was sent
	KindValidation
	// KindHTTP marks a transport failure or an error status without a parseable body
	KindHTTP
	// KindAPI marks an error status carrying a structured API error body
	KindAPI
	// KindGeneric marks malformed success responses and wrong result access
	KindGeneric
)

// String returns the name of the kind
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindHTTP:
		return "http"
	case KindAPI:
		return "api"
	case KindGeneric:
		return "generic"
	default:
		return "none"
	}
}

// KindOf reports which category err belongs to, looking through wrapping
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	var validationErr *ValidationError
	var httpErr *HTTPError
	var apiErr *APIError
	var genericErr *Error

	switch {
	case errors.As(err, &validationErr):
		return KindValidation
	case errors.As(err, &apiErr):
		return KindAPI
	case errors.As(err, &httpErr):
		return KindHTTP
	case errors.As(err, &genericErr):
		return KindGeneric
	}
	return KindNone
}

// ValidationError reports invalid input detected locally
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "pxshot: validation failed: " + e.Message
}

// HTTPError reports a failed exchange. StatusCode is 0 when the request never
// produced a response (connection failure, timeout, cancellation).
type HTTPError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("pxshot: HTTP %d", e.StatusCode)
	}
	return "pxshot: " + e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the exchange was aborted by a deadline
func (e *HTTPError) Timeout() bool {
	var t interface{ Timeout() bool }
	return e.Err != nil && errors.As(e.Err, &t) && t.Timeout()
}

// APIError represents a structured error returned by the Pxshot API
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pxshot: API error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == 401
	case ErrQuotaExceeded:
		return e.StatusCode == 402 || e.Code == "quota_exceeded"
	case ErrRateLimited:
		return e.StatusCode == 429
	}
	return false
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// Error is the generic failure: a success response that does not match the
// expected schema, or access to the wrong result variant.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message == "":
		return fmt.Sprintf("pxshot: %v", e.Err)
	case e.Err == nil:
		return "pxshot: " + e.Message
	}
	return fmt.Sprintf("pxshot: %s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newHTTPError(status int, message string, cause error) *HTTPError {
	return &HTTPError{StatusCode: status, Message: message, Err: cause}
}
