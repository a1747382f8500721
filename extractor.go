package foodrun

// RecipeExtractor converts the raw markup of a recipe page into a preview.
type RecipeExtractor interface {
	// Extract parses markup retrieved from sourceURL and returns a
	// best-effort preview. It returns EINVALID if sourceURL is not a
	// well-formed absolute URL; every other failure degrades to a preview
	// with an empty ingredient list rather than an error.
	Extract(markup string, sourceURL string) (*RecipePreview, error)
}

// DomainRule encodes page-structure knowledge specific to one website.
// Rules are registered at process start, immutable thereafter, and safe for
// unsynchronized concurrent use.
type DomainRule interface {
	// Name returns the rule's identifier (e.g., "budgetbytes").
	Name() string

	// Match reports whether the rule applies to the given hostname.
	Match(host string) bool

	// Extract builds a preview from the raw markup. The fallback title and
	// servings are the best-effort values already computed by the generic
	// strategies; a rule may defer to them rather than recompute. A rule
	// that finds nothing returns a preview with an empty ingredient list
	// and never fails the pipeline.
	Extract(markup, sourceURL, fallbackTitle string, fallbackServings int) *RecipePreview
}

// RuleRegistry manages site-tuned extraction rules keyed by hostname.
type RuleRegistry interface {
	// Register adds a rule. Registration happens once at startup; lookups
	// afterwards are read-only.
	Register(rule DomainRule)

	// Lookup returns the first registered rule matching the hostname, or
	// nil when no rule applies.
	Lookup(host string) DomainRule

	// List returns all registered rules in registration order.
	List() []DomainRule
}
