package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	foodrun "github.com/morrisxelijah/food-run"
)

var _ foodrun.DomainRule = (*SkinnytasteRule)(nil)

// SkinnytasteRule extracts recipes from skinnytaste.com. The site's older
// recipe template renders ingredients as a plain list under a styled div
// (no "Ingredients" heading element) and exposes the serving count through
// the recipe scaler's input element rather than text.
//
// Known markup:
//   - input[name="servings"]          serving count (value attribute)
//   - .servings-adjuster .yield       serving count fallback
//   - .ingredients li                 one ingredient per item
type SkinnytasteRule struct{}

// NewSkinnytasteRule creates a new SkinnytasteRule.
func NewSkinnytasteRule() *SkinnytasteRule {
	return &SkinnytasteRule{}
}

// Name returns the rule's identifier.
func (r *SkinnytasteRule) Name() string {
	return "skinnytaste"
}

// Match reports whether the rule applies to the hostname.
func (r *SkinnytasteRule) Match(host string) bool {
	return strings.Contains(host, "skinnytaste.com")
}

// Extract builds a preview from the site's ingredient list container and
// servings input element.
func (r *SkinnytasteRule) Extract(markup, sourceURL, fallbackTitle string, fallbackServings int) *foodrun.RecipePreview {
	preview := &foodrun.RecipePreview{
		Title:       fallbackTitle,
		SourceURL:   sourceURL,
		Servings:    fallbackServings,
		Ingredients: []foodrun.IngredientRecord{},
		Strategy:    r.Name(),
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return preview
	}

	if value, ok := doc.Find(`input[name="servings"]`).First().Attr("value"); ok {
		if n := firstInt(value); n > 0 {
			preview.Servings = n
		}
	} else if n := firstInt(doc.Find(".servings-adjuster .yield").First().Text()); n > 0 {
		preview.Servings = n
	}

	doc.Find(".ingredients li").Each(func(_ int, sel *goquery.Selection) {
		line := foodrun.NormalizeText(sel.Text())
		if line == "" {
			return
		}
		preview.Ingredients = append(preview.Ingredients, foodrun.ParseIngredientLine(line))
	})

	return preview
}
