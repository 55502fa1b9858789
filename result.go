package pxshot

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// ScreenshotResult is returned by Client.Screenshot. It is always exactly one
// of *Image or *StoredScreenshot; a type switch is the preferred way to
// handle it:
//
//	switch r := res.(type) {
//	case *pxshot.Image:
//		// r.Bytes()
//	case *pxshot.StoredScreenshot:
//		// r.URL
//	}
//
// The accessor methods exist for callers that prefer checked access.
type ScreenshotResult interface {
	// IsBytes reports whether the result carries raw image data
	IsBytes() bool
	// IsStored reports whether the result carries stored screenshot metadata
	IsStored() bool
	// Bytes returns the image data without consuming it
	Bytes() ([]byte, error)
	// TakeBytes moves the image data out of the result; later byte access fails with ErrBytesTaken
	TakeBytes() ([]byte, error)
	// Stored returns the stored screenshot metadata
	Stored() (*StoredScreenshot, error)

	screenshotResult()
}

var (
	_ ScreenshotResult = (*Image)(nil)
	_ ScreenshotResult = (*StoredScreenshot)(nil)
)

// Image holds the raw bytes of a screenshot returned inline. It is not safe
// for concurrent TakeBytes calls.
type Image struct {
	data        []byte
	contentType string
	taken       bool
}

func newImage(data []byte, contentType string) *Image {
	return &Image{data: data, contentType: contentType}
}

func (*Image) screenshotResult() {}

// IsBytes always reports true for an Image
func (*Image) IsBytes() bool { return true }

// IsStored always reports false for an Image
func (*Image) IsStored() bool { return false }

// ContentType returns the response Content-Type, e.g. "image/png"
func (i *Image) ContentType() string { return i.contentType }

// Len returns the number of image bytes still held
func (i *Image) Len() int { return len(i.data) }

// Bytes returns the image data. The slice is shared with the Image.
func (i *Image) Bytes() ([]byte, error) {
	if i.taken {
		return nil, &Error{Err: ErrBytesTaken}
	}
	return i.data, nil
}

// TakeBytes transfers ownership of the image data to the caller
func (i *Image) TakeBytes() ([]byte, error) {
	if i.taken {
		return nil, &Error{Err: ErrBytesTaken}
	}
	data := i.data
	i.data = nil
	i.taken = true
	return data, nil
}

// Stored always fails for an Image
func (*Image) Stored() (*StoredScreenshot, error) {
	return nil, &Error{Err: ErrBytesResult}
}

// WriteTo implements io.WriterTo
func (i *Image) WriteTo(w io.Writer) (int64, error) {
	if i.taken {
		return 0, &Error{Err: ErrBytesTaken}
	}
	return bytes.NewReader(i.data).WriteTo(w)
}

// Save writes the image to path, creating or truncating the file
func (i *Image) Save(path string) error {
	if i.taken {
		return &Error{Err: ErrBytesTaken}
	}
	if err := os.WriteFile(path, i.data, 0o644); err != nil {
		return fmt.Errorf("pxshot: failed to save screenshot: %w", err)
	}
	return nil
}

// StoredScreenshot describes a capture persisted by the API and served from URL
type StoredScreenshot struct {
	URL       string `json:"url"`
	ExpiresAt string `json:"expires_at"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	SizeBytes int64  `json:"size_bytes"`
}

func (*StoredScreenshot) screenshotResult() {}

// IsBytes always reports false for a stored screenshot
func (*StoredScreenshot) IsBytes() bool { return false }

// IsStored always reports true for a stored screenshot
func (*StoredScreenshot) IsStored() bool { return true }

// Bytes always fails for a stored screenshot
func (*StoredScreenshot) Bytes() ([]byte, error) {
	return nil, &Error{Err: ErrStoredResult}
}

// TakeBytes always fails for a stored screenshot
func (*StoredScreenshot) TakeBytes() ([]byte, error) {
	return nil, &Error{Err: ErrStoredResult}
}

// Stored returns s itself
func (s *StoredScreenshot) Stored() (*StoredScreenshot, error) {
	return s, nil
}
