// Package bloom provides URL deduplication for recipe imports using Bloom
// filters.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	foodrun "github.com/morrisxelijah/food-run"
)

// Ensure Filter implements foodrun.SeenFilter at compile time.
var _ foodrun.SeenFilter = (*Filter)(nil)

// Filter wraps a Bloom filter for URL deduplication during an import run.
// A URL may report as seen without having been added (false positive); a
// skipped page is cheaper than a refetched one, so imports tolerate this.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected URLs with the
// given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL as seen.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Seen returns true if the URL might have been seen before.
// False positives are possible; false negatives are not.
func (f *Filter) Seen(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
