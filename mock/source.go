package mock

import (
	"context"

	foodrun "github.com/morrisxelijah/food-run"
)

var _ foodrun.URLSource = (*URLSource)(nil)

// URLSource is a mock implementation of foodrun.URLSource.
type URLSource struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *foodrun.URLFilter) ([]string, error)
}

func (s *URLSource) DiscoverURLs(ctx context.Context, baseURL string, filter *foodrun.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
