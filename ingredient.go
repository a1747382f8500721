package foodrun

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// NormalizeText decodes HTML entities and canonicalizes whitespace: runs of
// whitespace (including non-breaking spaces) collapse to a single space and
// leading/trailing whitespace is trimmed. Unknown entities pass through
// unchanged. Pure function, never fails.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(html.UnescapeString(s)), " ")
}

// ParseIngredientLine converts one free-text ingredient line into a
// structured record. Token counts refer to the whole normalized line:
//
//	"2 lbs ground beef"  -> {Amount: 2, Unit: "lbs", Name: "ground beef"}
//	"1 onion"            -> {Amount: 1, Name: "onion"}
//	"salt to taste"      -> {Name: "salt to taste"}
//	"2"                  -> {Amount: 2, Name: ""}
//
// The first token contributes an amount only if, after stripping characters
// other than digits, a decimal point, and a slash, it parses as a decimal or
// simple fraction. Identifying non-ingredient noise is the caller's job; the
// parser never fails and an empty resulting name is allowed.
func ParseIngredientLine(line string) IngredientRecord {
	line = NormalizeText(line)
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return IngredientRecord{Name: ""}
	}

	amount, ok := ParseAmount(tokens[0])
	if !ok {
		return IngredientRecord{Name: line}
	}

	rec := IngredientRecord{Amount: &amount}
	switch {
	case len(tokens) >= 3:
		rec.Unit = tokens[1]
		rec.Name = strings.Join(tokens[2:], " ")
	case len(tokens) == 2:
		rec.Name = tokens[1]
	default:
		rec.Name = ""
	}
	return rec
}

// ParseAmount parses a single token as a quantity. Characters that are not
// digits, a decimal point, or a slash are stripped first, so tokens like
// "2," and "(1/2)" still parse. Returns false if nothing numeric remains or
// the remainder is not a decimal or simple a/b fraction.
func ParseAmount(token string) (float64, bool) {
	var sb strings.Builder
	for _, r := range token {
		if (r >= '0' && r <= '9') || r == '.' || r == '/' {
			sb.WriteRune(r)
		}
	}
	cleaned := sb.String()
	if cleaned == "" {
		return 0, false
	}

	if num, den, ok := strings.Cut(cleaned, "/"); ok {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

var (
	servesRe   = regexp.MustCompile(`(?i)\bserves\s+(\d{1,3})\b`)
	servingsRe = regexp.MustCompile(`(?i)\b(\d{1,3})\s+servings?\b`)
)

// ParseServings scans free text for a serving-count pattern such as
// "serves 4" or "6 servings" and returns the first match. Returns 0 when no
// positive count is found.
func ParseServings(text string) int {
	for _, re := range []*regexp.Regexp{servesRe, servingsRe} {
		if m := re.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				return n
			}
		}
	}
	return 0
}
