package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	foodrun "github.com/morrisxelijah/food-run"
	"golang.org/x/net/html"
)

var _ foodrun.DomainRule = (*SeriousEatsRule)(nil)

// SeriousEatsRule extracts recipes from seriouseats.com. Long-form articles
// there interleave multiple lists between the ingredients heading and the
// procedure, so the generic section scan over the whole document picks up
// equipment and link lists. This rule anchors the scan to the article body
// container and walks the heading's sibling elements, harvesting list items
// until a stop heading is encountered.
type SeriousEatsRule struct{}

// NewSeriousEatsRule creates a new SeriousEatsRule.
func NewSeriousEatsRule() *SeriousEatsRule {
	return &SeriousEatsRule{}
}

// Name returns the rule's identifier.
func (r *SeriousEatsRule) Name() string {
	return "seriouseats"
}

// Match reports whether the rule applies to the hostname.
func (r *SeriousEatsRule) Match(host string) bool {
	return strings.Contains(host, "seriouseats.com")
}

// Extract builds a preview by sibling-walking from the last ingredients
// heading inside the article body.
func (r *SeriousEatsRule) Extract(markup, sourceURL, fallbackTitle string, fallbackServings int) *foodrun.RecipePreview {
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

	body := doc.Find("#article-content, .article-content, article").First()
	if body.Length() == 0 {
		body = doc.Selection
	}

	// Last heading mentioning "ingredient" inside the container.
	var heading *html.Node
	body.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		if strings.Contains(strings.ToLower(foodrun.NormalizeText(sel.Text())), "ingredient") {
			heading = sel.Nodes[0]
		}
	})
	if heading == nil {
		return preview
	}

	for n := heading.NextSibling; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}
		if isHeading(n) && containsAny(strings.ToLower(nodeText(n)), stopWords) {
			break
		}
		if n.Data == "ul" || n.Data == "ol" {
			for _, line := range listItems(n) {
				if line == "" || isNoiseLine(line) {
					continue
				}
				preview.Ingredients = append(preview.Ingredients, foodrun.ParseIngredientLine(line))
			}
		}
	}

	return preview
}
