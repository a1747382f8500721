package mock

import (
	"context"

	foodrun "github.com/morrisxelijah/food-run"
)

var _ foodrun.Describer = (*Describer)(nil)

// Describer is a mock implementation of foodrun.Describer.
type Describer struct {
	DescribeFn func(markup string) (string, error)
}

func (d *Describer) Describe(markup string) (string, error) {
	return d.DescribeFn(markup)
}

var _ foodrun.Converter = (*Converter)(nil)

// Converter is a mock implementation of foodrun.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ foodrun.TagSuggester = (*TagSuggester)(nil)

// TagSuggester is a mock implementation of foodrun.TagSuggester.
type TagSuggester struct {
	SuggestTagsFn func(ctx context.Context, preview *foodrun.RecipePreview) ([]string, error)
}

func (s *TagSuggester) SuggestTags(ctx context.Context, preview *foodrun.RecipePreview) ([]string, error) {
	return s.SuggestTagsFn(ctx, preview)
}

var _ foodrun.SeenFilter = (*SeenFilter)(nil)

// SeenFilter is a mock implementation of foodrun.SeenFilter backed by a map.
// The zero value is ready to use.
type SeenFilter struct {
	seen map[string]bool
}

func (f *SeenFilter) Add(url string) {
	if f.seen == nil {
		f.seen = make(map[string]bool)
	}
	f.seen[url] = true
}

func (f *SeenFilter) Seen(url string) bool {
	return f.seen[url]
}
