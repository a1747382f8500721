package mock

import foodrun "github.com/morrisxelijah/food-run"

var _ foodrun.RecipeExtractor = (*RecipeExtractor)(nil)

// RecipeExtractor is a mock implementation of foodrun.RecipeExtractor.
type RecipeExtractor struct {
	ExtractFn func(markup string, sourceURL string) (*foodrun.RecipePreview, error)
}

func (e *RecipeExtractor) Extract(markup string, sourceURL string) (*foodrun.RecipePreview, error) {
	return e.ExtractFn(markup, sourceURL)
}
