package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// extractLastResort is the final generic pass when structured data, the
// heuristic section scan, and the tuned-rule registry all came up empty:
// find any heading containing "ingredient" and harvest the next list-like
// container after it. No noise filtering; by this point any structure at
// all beats nothing.
func extractLastResort(root *html.Node) candidate {
	elements := flattenElements(root)

	start := -1
	for i, n := range elements {
		if isHeading(n) && strings.Contains(strings.ToLower(nodeText(n)), "ingredient") {
			start = i
			break
		}
	}
	if start < 0 {
		return candidate{}
	}

	for _, n := range elements[start+1:] {
		if n.Data == "ul" || n.Data == "ol" {
			return candidate{lines: listItems(n)}
		}
	}
	return candidate{}
}
