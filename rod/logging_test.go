package rod_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/morrisxelijah/food-run/mock"
	"github.com/morrisxelijah/food-run/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs successful fetches", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}

		f := rod.NewLoggingFetcher(next, logger)

		markup, err := f.Fetch(context.Background(), "https://example.com/recipes/chili")
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", markup)

		out := buf.String()
		assert.Contains(t, out, "fetch")
		assert.Contains(t, out, "https://example.com/recipes/chili")
		assert.Contains(t, out, "bytes=13")
	})

	t.Run("logs and propagates errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", context.DeadlineExceeded
			},
		}

		f := rod.NewLoggingFetcher(next, logger)

		_, err := f.Fetch(context.Background(), "https://example.com/recipes/chili")
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Contains(t, buf.String(), "deadline exceeded")
	})

	t.Run("close delegates to the wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		closed := false
		next := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		f := rod.NewLoggingFetcher(next, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}
