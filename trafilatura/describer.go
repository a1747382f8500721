// Package trafilatura derives short recipe descriptions from page markup.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"
	foodrun "github.com/morrisxelijah/food-run"
)

// MaxDescriptionLen caps the description at a length suitable for list
// views and confirmation screens.
const MaxDescriptionLen = 300

// Ensure Describer implements foodrun.Describer at compile time.
var _ foodrun.Describer = (*Describer)(nil)

// Describer wraps go-trafilatura to pull the main prose out of a recipe
// page and condense it into a short description.
type Describer struct{}

// NewDescriber creates a new Describer.
func NewDescriber() *Describer {
	return &Describer{}
}

// Describe processes raw markup and returns a short description taken from
// the page's main content. Returns an empty string when the page has no
// usable prose.
func (d *Describer) Describe(markup string) (string, error) {
	if markup == "" {
		return "", foodrun.Errorf(foodrun.EINVALID, "empty markup input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(markup), opts)
	if err != nil {
		return "", err
	}

	// Prefer the page's own description metadata when present.
	if desc := strings.TrimSpace(result.Metadata.Description); desc != "" {
		return truncate(desc, MaxDescriptionLen), nil
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		return "", nil
	}

	// First paragraph only.
	if i := strings.IndexByte(text, '\n'); i > 0 {
		text = strings.TrimSpace(text[:i])
	}

	return truncate(text, MaxDescriptionLen), nil
}

// truncate shortens s to at most n bytes, cutting at a word boundary and
// appending an ellipsis.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
