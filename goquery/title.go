package goquery

import (
	"github.com/PuerkitoBio/goquery"
	foodrun "github.com/morrisxelijah/food-run"
)

// documentTitle returns the page's title metadata: og:title when present,
// otherwise the <title> element. Empty string when neither exists.
func documentTitle(doc *goquery.Document) string {
	if content, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if title := foodrun.NormalizeText(content); title != "" {
			return title
		}
	}
	return foodrun.NormalizeText(doc.Find("title").First().Text())
}

// bodyText returns the page's visible text for body-level scans such as
// the serving-count pattern search.
func bodyText(doc *goquery.Document) string {
	body := doc.Find("body")
	if body.Length() == 0 {
		return foodrun.NormalizeText(doc.Text())
	}
	return foodrun.NormalizeText(body.Text())
}
