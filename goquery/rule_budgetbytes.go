package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	foodrun "github.com/morrisxelijah/food-run"
)

var _ foodrun.DomainRule = (*BudgetBytesRule)(nil)

// BudgetBytesRule extracts recipes from budgetbytes.com, which renders its
// recipe card with the WP Recipe Maker plugin. The generic strategies miss
// it on pages where the card is injected without JSON-LD and the card's
// "Ingredients" label is not a real heading element.
//
// Known markup:
//   - .wprm-recipe-name               recipe title
//   - .wprm-recipe-servings           serving count
//   - li.wprm-recipe-ingredient       one ingredient per item
type BudgetBytesRule struct{}

// NewBudgetBytesRule creates a new BudgetBytesRule.
func NewBudgetBytesRule() *BudgetBytesRule {
	return &BudgetBytesRule{}
}

// Name returns the rule's identifier.
func (r *BudgetBytesRule) Name() string {
	return "budgetbytes"
}

// Match reports whether the rule applies to the hostname.
func (r *BudgetBytesRule) Match(host string) bool {
	return strings.Contains(host, "budgetbytes.com")
}

// Extract builds a preview from the WP Recipe Maker card.
func (r *BudgetBytesRule) Extract(markup, sourceURL, fallbackTitle string, fallbackServings int) *foodrun.RecipePreview {
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

	if title := foodrun.NormalizeText(doc.Find(".wprm-recipe-name").First().Text()); title != "" {
		preview.Title = title
	}
	if n := firstInt(doc.Find(".wprm-recipe-servings").First().Text()); n > 0 {
		preview.Servings = n
	}

	doc.Find("li.wprm-recipe-ingredient").Each(func(_ int, sel *goquery.Selection) {
		line := foodrun.NormalizeText(sel.Text())
		if line == "" {
			return
		}
		preview.Ingredients = append(preview.Ingredients, foodrun.ParseIngredientLine(line))
	})

	return preview
}
