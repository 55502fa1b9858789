package pxshot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImage(t *testing.T) {
	t.Run("Bytes is repeatable", func(t *testing.T) {
		img := newImage([]byte("abc"), "image/png")
		first, err := img.Bytes()
		require.NoError(t, err)
		second, err := img.Bytes()
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 3, img.Len())
	})

	t.Run("TakeBytes consumes", func(t *testing.T) {
		img := newImage([]byte("abc"), "image/png")

		data, err := img.TakeBytes()
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), data)
		assert.Zero(t, img.Len())

		_, err = img.Bytes()
		assert.ErrorIs(t, err, ErrBytesTaken)
		assert.Equal(t, KindGeneric, KindOf(err))

		_, err = img.TakeBytes()
		assert.ErrorIs(t, err, ErrBytesTaken)

		_, err = img.WriteTo(&bytes.Buffer{})
		assert.ErrorIs(t, err, ErrBytesTaken)

		// Still the bytes variant after being consumed
		assert.True(t, img.IsBytes())
	})

	t.Run("WriteTo", func(t *testing.T) {
		img := newImage([]byte("image-data"), "image/webp")
		var buf bytes.Buffer
		n, err := img.WriteTo(&buf)
		require.NoError(t, err)
		assert.Equal(t, int64(10), n)
		assert.Equal(t, "image-data", buf.String())
	})

	t.Run("Save", func(t *testing.T) {
		img := newImage([]byte("image-data"), "image/png")
		path := filepath.Join(t.TempDir(), "shot.png")
		require.NoError(t, img.Save(path))

		written, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("image-data"), written)
	})

	t.Run("Save to missing directory", func(t *testing.T) {
		img := newImage([]byte("image-data"), "image/png")
		err := img.Save(filepath.Join(t.TempDir(), "missing", "shot.png"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save screenshot")
	})
}

func TestStoredScreenshot(t *testing.T) {
	stored := &StoredScreenshot{
		URL:       "https://cdn.pxshot.com/abc.png",
		ExpiresAt: "2025-01-01T00:00:00Z",
		Width:     1920,
		Height:    1080,
		SizeBytes: 98765,
	}

	t.Run("variant accessors", func(t *testing.T) {
		var res ScreenshotResult = stored
		assert.True(t, res.IsStored())
		assert.False(t, res.IsBytes())

		got, err := res.Stored()
		require.NoError(t, err)
		assert.Same(t, stored, got)

		_, err = res.Bytes()
		assert.ErrorIs(t, err, ErrStoredResult)
		_, err = res.TakeBytes()
		assert.ErrorIs(t, err, ErrStoredResult)
	})

	t.Run("Expiry", func(t *testing.T) {
		expiry, err := stored.Expiry()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), expiry)

		bad := &StoredScreenshot{ExpiresAt: "tomorrow"}
		_, err = bad.Expiry()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid expires_at")
	})
}

func TestResultTypeSwitch(t *testing.T) {
	results := []ScreenshotResult{
		newImage([]byte("x"), "image/png"),
		&StoredScreenshot{URL: "https://x/y.png"},
	}

	var images, stored int
	for _, res := range results {
		switch res.(type) {
		case *Image:
			images++
		case *StoredScreenshot:
			stored++
		}
	}
	assert.Equal(t, 1, images)
	assert.Equal(t, 1, stored)
}
