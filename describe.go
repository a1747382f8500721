package foodrun

import "context"

// Describer extracts a short human-readable description from page markup.
// Used to enrich a preview before it is stored; never required by the
// extraction core itself.
type Describer interface {
	Describe(markup string) (string, error)
}

// Converter converts HTML fragments to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

// TagSuggester proposes tags for a confirmed recipe.
type TagSuggester interface {
	// SuggestTags returns a short list of tags describing the recipe
	// (cuisine, meal type, main ingredient). Order is most relevant first.
	SuggestTags(ctx context.Context, preview *RecipePreview) ([]string, error)
}

// SeenFilter tracks URLs that have already been processed during an import.
// False positives are acceptable; false negatives are not.
type SeenFilter interface {
	// Add records a URL as seen.
	Add(url string)

	// Seen reports whether the URL might have been seen before.
	Seen(url string) bool
}
