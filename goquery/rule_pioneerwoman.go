package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	foodrun "github.com/morrisxelijah/food-run"
)

// newsletterBanner is the subscription banner thepioneerwoman.com serves as
// the og:title on some cached pages, displacing the real recipe title.
const newsletterBanner = "Sign Up For The Pioneer Woman Newsletter"

var _ foodrun.DomainRule = (*PioneerWomanRule)(nil)

// PioneerWomanRule extracts recipes from thepioneerwoman.com. Besides the
// site's known ingredient list container, it fixes a title quirk: pages
// whose detected title is the newsletter-subscription banner get retitled
// with the first h1 that is not the banner text.
type PioneerWomanRule struct{}

// NewPioneerWomanRule creates a new PioneerWomanRule.
func NewPioneerWomanRule() *PioneerWomanRule {
	return &PioneerWomanRule{}
}

// Name returns the rule's identifier.
func (r *PioneerWomanRule) Name() string {
	return "pioneerwoman"
}

// Match reports whether the rule applies to the hostname.
func (r *PioneerWomanRule) Match(host string) bool {
	return strings.Contains(host, "thepioneerwoman.com")
}

// Extract builds a preview from the site's recipe card, retitling away from
// the newsletter banner when necessary.
func (r *PioneerWomanRule) Extract(markup, sourceURL, fallbackTitle string, fallbackServings int) *foodrun.RecipePreview {
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

	if strings.EqualFold(fallbackTitle, newsletterBanner) {
		doc.Find("h1").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			title := foodrun.NormalizeText(sel.Text())
			if title == "" || strings.EqualFold(title, newsletterBanner) {
				return true
			}
			preview.Title = title
			return false
		})
	}

	if n := firstInt(doc.Find(".recipe-yield").First().Text()); n > 0 {
		preview.Servings = n
	}

	doc.Find("ul.ingredient-lists li").Each(func(_ int, sel *goquery.Selection) {
		line := foodrun.NormalizeText(sel.Text())
		if line == "" {
			return
		}
		preview.Ingredients = append(preview.Ingredients, foodrun.ParseIngredientLine(line))
	})

	return preview
}
