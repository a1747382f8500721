package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// stopWords mark headings that end an ingredients section.
var stopWords = []string{"direction", "instruction", "method", "step"}

// extractHeuristic locates the ingredients list by document structure: the
// slice between the LAST heading mentioning "ingredient" and the first
// subsequent directions-like heading (or end of document). Pages often
// repeat an "Ingredients" label in a table of contents before the real
// section, which is why the last occurrence wins.
//
// Title and servings are not this strategy's concern; the orchestrator
// sources them from document metadata and body text.
func extractHeuristic(root *html.Node) candidate {
	events := collectEvents(root)

	start := -1
	for i, ev := range events {
		if ev.kind == eventHeading && strings.Contains(strings.ToLower(ev.text), "ingredient") {
			start = i
		}
	}
	if start < 0 {
		return candidate{}
	}

	stop := len(events)
	for i := start + 1; i < len(events); i++ {
		if events[i].kind == eventHeading && containsAny(strings.ToLower(events[i].text), stopWords) {
			stop = i
			break
		}
	}

	var cand candidate
	for i := start + 1; i < stop; i++ {
		if events[i].kind == eventListItem && !isNoiseLine(events[i].text) {
			cand.lines = append(cand.lines, events[i].text)
		}
	}

	// The slice after the stop heading, up to the next heading, is the
	// directions section; keep its markup for markdown conversion.
	if stop < len(events) {
		var sb strings.Builder
		for i := stop + 1; i < len(events); i++ {
			if events[i].kind == eventHeading {
				break
			}
			sb.WriteString(renderNode(events[i].node))
		}
		if sb.Len() > 0 {
			cand.directionsHTML = "<ol>" + sb.String() + "</ol>"
		}
	}

	return cand
}

// isNoiseLine reports whether a list item is nutritional or annotation noise
// rather than an ingredient: nutrition-facts rows, per-serving callouts, and
// footnotes routinely render as list items on recipe pages.
func isNoiseLine(line string) bool {
	l := strings.ToLower(line)
	if strings.HasPrefix(l, "per serving") || strings.HasPrefix(l, "note:") {
		return true
	}
	if strings.Contains(l, "nutrition information") || strings.Contains(l, "calories") {
		return true
	}
	return strings.Contains(l, "fat") && strings.Contains(l, "protein")
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
