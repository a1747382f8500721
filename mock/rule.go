package mock

import foodrun "github.com/morrisxelijah/food-run"

var _ foodrun.DomainRule = (*DomainRule)(nil)

// DomainRule is a mock implementation of foodrun.DomainRule.
type DomainRule struct {
	NameFn    func() string
	MatchFn   func(host string) bool
	ExtractFn func(markup, sourceURL, fallbackTitle string, fallbackServings int) *foodrun.RecipePreview
}

func (r *DomainRule) Name() string {
	return r.NameFn()
}

func (r *DomainRule) Match(host string) bool {
	return r.MatchFn(host)
}

func (r *DomainRule) Extract(markup, sourceURL, fallbackTitle string, fallbackServings int) *foodrun.RecipePreview {
	return r.ExtractFn(markup, sourceURL, fallbackTitle, fallbackServings)
}
