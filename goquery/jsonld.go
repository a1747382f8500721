package goquery

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	foodrun "github.com/morrisxelijah/food-run"
)

// candidate is the intermediate result of a single extraction strategy
// before ingredient tokenization. Never exposed outside this package.
type candidate struct {
	title          string
	servings       int
	lines          []string
	directions     string // markdown, when the strategy produced steps directly
	directionsHTML string // raw HTML slice, converted later if a Converter is wired
}

// containerKeys are probed before other object keys when searching for a
// Recipe node. Go maps don't preserve JSON document order, so checking the
// well-known JSON-LD containers first keeps "first match wins" deterministic.
var containerKeys = []string{"@graph", "mainEntity", "mainEntityOfPage", "itemListElement", "hasPart"}

// extractStructured scans embedded JSON-LD blocks for a Recipe object and
// builds a candidate from the first match in document order. An empty-lines
// candidate means "try the next strategy"; malformed blocks never error.
func extractStructured(doc *goquery.Document) candidate {
	var cand candidate

	doc.Find("script").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		typ, _ := sel.Attr("type")
		if !strings.Contains(strings.ToLower(typ), "ld+json") {
			return true
		}

		parsed := parseLenient(sel.Text())
		if parsed == nil {
			return true
		}

		recipe := findRecipe(parsed)
		if recipe == nil {
			return true
		}

		cand = recipeCandidate(recipe)
		return false
	})

	return cand
}

// objectBoundaryRe matches adjacent top-level object boundaries produced by
// templates that concatenate JSON-LD objects without separators.
var objectBoundaryRe = regexp.MustCompile(`\}\s*\{`)

// parseLenient parses a JSON-LD block, attempting a strict parse first and
// then a single repair pass: wrap the block in an array and insert commas
// between adjacent object boundaries. Returns nil if both passes fail.
func parseLenient(text string) any {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err == nil {
		return v
	}

	repaired := "[" + objectBoundaryRe.ReplaceAllString(text, "},{") + "]"
	if err := json.Unmarshal([]byte(repaired), &v); err == nil {
		return v
	}
	return nil
}

// findRecipe recursively searches a parsed JSON structure for the first
// object whose @type is "Recipe" (string or list, case-insensitive).
func findRecipe(v any) map[string]any {
	switch n := v.(type) {
	case []any:
		for _, item := range n {
			if r := findRecipe(item); r != nil {
				return r
			}
		}
	case map[string]any:
		if isRecipeType(n["@type"]) {
			return n
		}

		probed := make(map[string]bool, len(containerKeys))
		for _, key := range containerKeys {
			probed[key] = true
			if child, ok := n[key]; ok {
				if r := findRecipe(child); r != nil {
					return r
				}
			}
		}

		rest := make([]string, 0, len(n))
		for key := range n {
			if !probed[key] {
				rest = append(rest, key)
			}
		}
		sort.Strings(rest)
		for _, key := range rest {
			if r := findRecipe(n[key]); r != nil {
				return r
			}
		}
	}
	return nil
}

// isRecipeType reports whether a JSON-LD @type value declares a Recipe.
func isRecipeType(v any) bool {
	switch t := v.(type) {
	case string:
		return strings.EqualFold(t, "Recipe")
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && strings.EqualFold(s, "Recipe") {
				return true
			}
		}
	}
	return false
}

// recipeCandidate maps a Recipe object's fields onto a candidate.
func recipeCandidate(obj map[string]any) candidate {
	return candidate{
		title:      firstString(obj, "name", "headline", "alternateName"),
		servings:   parseYield(obj, "recipeYield", "recipeServings", "yield"),
		lines:      ingredientLines(obj),
		directions: instructionSteps(obj),
	}
}

// firstString returns the first non-empty string value among the keys.
func firstString(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := obj[key].(string); ok {
			if normalized := foodrun.NormalizeText(s); normalized != "" {
				return normalized
			}
		}
	}
	return ""
}

var yieldNumberRe = regexp.MustCompile(`\d+`)

// parseYield extracts a positive serving count from the first populated
// yield-like field. Accepts a number, a string containing a number, or a
// list whose first element is either.
func parseYield(obj map[string]any, keys ...string) int {
	for _, key := range keys {
		if n := yieldValue(obj[key]); n > 0 {
			return n
		}
	}
	return 0
}

// firstInt returns the first positive integer embedded in s, or 0.
func firstInt(s string) int {
	if m := yieldNumberRe.FindString(s); m != "" {
		if n, err := strconv.Atoi(m); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

func yieldValue(v any) int {
	switch y := v.(type) {
	case float64:
		if y > 0 && y == float64(int(y)) {
			return int(y)
		}
	case string:
		if n := firstInt(y); n > 0 {
			return n
		}
	case []any:
		if len(y) > 0 {
			return yieldValue(y[0])
		}
	}
	return 0
}

// ingredientLines collects ingredient strings from recipeIngredient (or the
// legacy ingredients key). Entries are strings or objects with text|name.
func ingredientLines(obj map[string]any) []string {
	for _, key := range []string{"recipeIngredient", "ingredients"} {
		entries, ok := obj[key].([]any)
		if !ok {
			continue
		}

		var lines []string
		for _, entry := range entries {
			switch e := entry.(type) {
			case string:
				lines = append(lines, foodrun.NormalizeText(e))
			case map[string]any:
				if s := firstString(e, "text", "name"); s != "" {
					lines = append(lines, s)
				}
			}
		}
		if len(lines) > 0 {
			return lines
		}
	}
	return nil
}

// instructionSteps flattens recipeInstructions (strings, HowToStep objects,
// or HowToSection containers) into numbered markdown.
func instructionSteps(obj map[string]any) string {
	entries, ok := obj["recipeInstructions"].([]any)
	if !ok {
		return ""
	}

	var steps []string
	collectSteps(entries, &steps)
	if len(steps) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, step := range steps {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func collectSteps(entries []any, steps *[]string) {
	for _, entry := range entries {
		switch e := entry.(type) {
		case string:
			if s := foodrun.NormalizeText(e); s != "" {
				*steps = append(*steps, s)
			}
		case map[string]any:
			if nested, ok := e["itemListElement"].([]any); ok {
				collectSteps(nested, steps)
				continue
			}
			if s := firstString(e, "text", "name"); s != "" {
				*steps = append(*steps, s)
			}
		}
	}
}
