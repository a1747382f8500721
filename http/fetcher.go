// Package http provides HTTP-based implementations of foodrun collaborator
// interfaces: fetching page markup, sitemap-based URL discovery, and the
// JSON API server that exposes parsing and storage as network endpoints.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	foodrun "github.com/morrisxelijah/food-run"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the fetcher to origin servers. Several recipe
// sites reject Go's default user agent outright.
const DefaultUserAgent = "food-run/1.0 (+https://github.com/morrisxelijah/food-run)"

// Ensure Fetcher implements foodrun.Fetcher at compile time.
var _ foodrun.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page markup from URLs using plain HTTP requests.
// It does not execute JavaScript; use rod.Fetcher for sites that render
// their recipe card client-side.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the markup at the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", foodrun.Errorf(foodrun.EINVALID, "invalid fetch URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", foodrun.Errorf(foodrun.ENOTFOUND, "page not found: %s", url)
	}
	if resp.StatusCode != http.StatusOK {
		return "", foodrun.Errorf(foodrun.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
