package pxshot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumWireValues(t *testing.T) {
	assert.Equal(t, "png", FormatPNG.String())
	assert.Equal(t, "jpeg", FormatJPEG.String())
	assert.Equal(t, "webp", FormatWEBP.String())

	assert.Equal(t, "load", WaitUntilLoad.String())
	assert.Equal(t, "domcontentloaded", WaitUntilDOMContentLoaded.String())
	assert.Equal(t, "networkidle", WaitUntilNetworkIdle.String())
	assert.Equal(t, "commit", WaitUntilCommit.String())
}

func TestScreenshotOptionsJSON(t *testing.T) {
	opts := &ScreenshotOptions{
		URL:       "https://example.com",
		Format:    FormatWEBP,
		WaitUntil: WaitUntilDOMContentLoaded,
		Store:     Bool(true),
		Height:    Int(720),
	}

	data, err := json.Marshal(opts)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"url": "https://example.com",
		"format": "webp",
		"wait_until": "domcontentloaded",
		"height": 720,
		"store": true
	}`, string(data))
	assert.True(t, opts.storeRequested())
}

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    *ScreenshotOptions
		wantErr string
	}{
		{name: "minimal", opts: &ScreenshotOptions{URL: "https://example.com"}},
		{name: "every field", opts: &ScreenshotOptions{
			URL:               "https://example.com",
			Format:            FormatPNG,
			Quality:           Int(90),
			Width:             Int(1920),
			Height:            Int(1080),
			FullPage:          Bool(true),
			WaitUntil:         WaitUntilCommit,
			WaitForSelector:   String(".ready"),
			WaitForTimeout:    Int(0),
			DeviceScaleFactor: Float64(1.5),
			Store:             Bool(true),
			BlockAds:          Bool(true),
		}},
		{name: "empty url", opts: &ScreenshotOptions{}, wantErr: "url is required"},
		{name: "quality", opts: &ScreenshotOptions{URL: "https://example.com", Quality: Int(150)}, wantErr: "quality must be between 0 and 100"},
		{name: "width", opts: &ScreenshotOptions{URL: "https://example.com", Width: Int(0)}, wantErr: "width must be positive"},
		{name: "height", opts: &ScreenshotOptions{URL: "https://example.com", Height: Int(-5)}, wantErr: "height must be positive"},
		{name: "scale factor", opts: &ScreenshotOptions{URL: "https://example.com", DeviceScaleFactor: Float64(0)}, wantErr: "device_scale_factor must be positive"},
		{name: "unknown format", opts: &ScreenshotOptions{URL: "https://example.com", Format: "gif"}, wantErr: "format must be one of"},
		{name: "unknown wait", opts: &ScreenshotOptions{URL: "https://example.com", WaitUntil: "idle"}, wantErr: "wait_until must be one of"},
		{name: "nil", opts: nil, wantErr: "screenshot options are required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOptions(tt.opts)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUsageRemaining(t *testing.T) {
	usage := &Usage{
		ScreenshotsTaken:  40,
		ScreenshotsLimit:  100,
		StorageBytesUsed:  2048,
		StorageBytesLimit: 1024,
	}
	assert.Equal(t, 60, usage.ScreenshotsRemaining())
	assert.Equal(t, int64(0), usage.StorageBytesRemaining())

	usage.ScreenshotsTaken = 150
	usage.StorageBytesUsed = 24
	assert.Equal(t, 0, usage.ScreenshotsRemaining())
	assert.Equal(t, int64(1000), usage.StorageBytesRemaining())
}

func TestVersion(t *testing.T) {
	v := SemVer()
	assert.Equal(t, uint64(1), v.Major)
	assert.Equal(t, Version, v.String())
	assert.Equal(t, "pxshot-go/"+Version, DefaultUserAgent())
}
