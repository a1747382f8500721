package http

import (
	"context"
	"net/url"
	"strings"
	"sync"

	foodrun "github.com/morrisxelijah/food-run"
	"golang.org/x/time/rate"
)

// DefaultRequestsPerSecond is the default per-domain request rate.
const DefaultRequestsPerSecond = 2.0

// Ensure DomainLimiter implements foodrun.DomainLimiter at compile time.
var _ foodrun.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter enforces a per-domain request rate. Each domain gets its
// own token bucket so a slow crawl of one site doesn't throttle another.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	burst    int
}

// NewDomainLimiter creates a limiter allowing rps requests per second per
// domain. A non-positive rps falls back to DefaultRequestsPerSecond.
func NewDomainLimiter(rps float64) *DomainLimiter {
	if rps <= 0 {
		rps = DefaultRequestsPerSecond
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    1,
	}
}

// Wait blocks until a request to domain is permitted or ctx is done.
func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.limiter(domain).Wait(ctx)
}

func (l *DomainLimiter) limiter(domain string) *rate.Limiter {
	domain = strings.ToLower(domain)

	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[domain]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(l.rps), l.burst)
		l.limiters[domain] = lim
	}
	return lim
}

// Ensure RateLimitedFetcher implements foodrun.Fetcher at compile time.
var _ foodrun.Fetcher = (*RateLimitedFetcher)(nil)

// RateLimitedFetcher wraps a Fetcher and waits on a DomainLimiter before
// each request.
type RateLimitedFetcher struct {
	next    foodrun.Fetcher
	limiter foodrun.DomainLimiter
}

// NewRateLimitedFetcher creates a Fetcher that rate-limits next per domain.
func NewRateLimitedFetcher(next foodrun.Fetcher, limiter foodrun.DomainLimiter) *RateLimitedFetcher {
	return &RateLimitedFetcher{next: next, limiter: limiter}
}

// Fetch waits for per-domain clearance and then delegates to the wrapped
// fetcher.
func (f *RateLimitedFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "", foodrun.Errorf(foodrun.EINVALID, "invalid fetch URL %q", rawURL)
	}

	if err := f.limiter.Wait(ctx, u.Hostname()); err != nil {
		return "", err
	}

	return f.next.Fetch(ctx, rawURL)
}

// Close closes the wrapped fetcher.
func (f *RateLimitedFetcher) Close() error {
	return f.next.Close()
}
