package goquery

import (
	"bytes"
	"strings"

	foodrun "github.com/morrisxelijah/food-run"
	"golang.org/x/net/html"
)

// eventKind distinguishes the node kinds the section scans care about.
type eventKind int

const (
	eventHeading eventKind = iota
	eventListItem
)

// docEvent is one heading or list item encountered during a document-order
// walk. The section-boundary scans operate on a flat event slice with
// explicit index tracking instead of shared mutable scan state.
type docEvent struct {
	kind eventKind
	node *html.Node
	text string // normalized
}

// collectEvents walks the tree in document order and returns every heading
// (h1-h6) and list item as an event. Subtrees of matched elements are not
// descended into, so nested lists contribute their outermost items only.
func collectEvents(n *html.Node) []docEvent {
	var events []docEvent
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case isHeading(n):
				events = append(events, docEvent{kind: eventHeading, node: n, text: nodeText(n)})
				return
			case n.Data == "li":
				events = append(events, docEvent{kind: eventListItem, node: n, text: nodeText(n)})
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return events
}

// flattenElements returns all element nodes in document order.
func flattenElements(n *html.Node) []*html.Node {
	var nodes []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			nodes = append(nodes, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return nodes
}

// isHeading reports whether the node is an h1-h6 element.
func isHeading(n *html.Node) bool {
	if n.Type != html.ElementNode || len(n.Data) != 2 || n.Data[0] != 'h' {
		return false
	}
	return n.Data[1] >= '1' && n.Data[1] <= '6'
}

// nodeText returns the normalized concatenated text of a node's subtree.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return foodrun.NormalizeText(sb.String())
}

// renderNode converts an html.Node back to markup.
func renderNode(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// listItems returns the normalized text of every li in the node's subtree.
func listItems(n *html.Node) []string {
	var items []string
	for _, ev := range collectEvents(n) {
		if ev.kind == eventListItem {
			items = append(items, ev.text)
		}
	}
	return items
}
