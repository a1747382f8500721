package foodrun

import "context"

// Fetcher retrieves page markup from URLs. The extraction core never fetches
// on its own; a Fetcher runs to completion before extraction begins.
type Fetcher interface {
	// Fetch retrieves the markup at url. The context controls timeout and
	// cancellation. Retrieval failures are the fetcher's to signal; the
	// extraction core never retries.
	Fetch(ctx context.Context, url string) (markup string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter provides per-domain rate limiting for bulk fetching.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
