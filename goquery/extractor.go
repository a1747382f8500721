// Package goquery implements the recipe extraction pipeline on top of
// parsed HTML. The orchestrating Extractor owns a strict fallback chain:
// embedded structured data, then a heading/list heuristic, then site-tuned
// rules, then a last-resort heading scan. The first strategy that yields at
// least one ingredient line wins outright; strategies never blend results.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	foodrun "github.com/morrisxelijah/food-run"
)

// Strategy names recorded on previews for explainability.
const (
	StrategyStructured = "structured-data"
	StrategyHeuristic  = "heuristic"
	StrategyFallback   = "heading-scan"
)

// DefaultTitle is the sentinel used when no strategy produced a title and
// the source URL is unusable.
const DefaultTitle = "Untitled recipe"

// Ensure Extractor implements foodrun.RecipeExtractor at compile time.
var _ foodrun.RecipeExtractor = (*Extractor)(nil)

// Extractor is the single entry point of the extraction pipeline.
// The zero-value-ish NewExtractor() is ready for concurrent use: per-call
// state lives on the stack and the rule registry is immutable after start.
type Extractor struct {
	rules     foodrun.RuleRegistry
	converter foodrun.Converter
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRules replaces the default site-tuned rule registry.
func WithRules(rules foodrun.RuleRegistry) Option {
	return func(e *Extractor) {
		e.rules = rules
	}
}

// WithConverter wires an HTML-to-markdown converter used to render the
// directions section harvested by the heuristic strategy. Without one,
// heuristic previews simply omit directions.
func WithConverter(c foodrun.Converter) Option {
	return func(e *Extractor) {
		e.converter = c
	}
}

// NewExtractor creates an Extractor with the built-in rule registry.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{rules: NewDefaultRegistry()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses markup retrieved from sourceURL and returns a best-effort
// preview. Only a malformed source URL is a hard failure; every internal
// strategy failure degrades to "this strategy found nothing" and the chain
// continues.
func (e *Extractor) Extract(markup string, sourceURL string) (*foodrun.RecipePreview, error) {
	u, err := url.Parse(sourceURL)
	if err != nil || !u.IsAbs() || u.Hostname() == "" {
		return nil, foodrun.Errorf(foodrun.EINVALID, "invalid source URL %q", sourceURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, foodrun.Errorf(foodrun.EINVALID, "failed to parse markup: %v", err)
	}
	root := doc.Selection.Nodes[0]

	docTitle := documentTitle(doc)
	body := bodyText(doc)

	if cand := extractStructured(doc); len(cand.lines) > 0 {
		return e.preview(cand, sourceURL, docTitle, body, StrategyStructured), nil
	}

	fallbackTitle := docTitle
	if fallbackTitle == "" {
		fallbackTitle = sourceURL
	}
	fallbackServings := foodrun.ParseServings(body)

	if cand := extractHeuristic(root); len(cand.lines) > 0 {
		return e.preview(cand, sourceURL, docTitle, body, StrategyHeuristic), nil
	}

	// A matching tuned rule is final for its domain, even when it finds
	// nothing: the rule knows the site better than the generic scan does.
	if e.rules != nil {
		if rule := e.rules.Lookup(u.Hostname()); rule != nil {
			p := rule.Extract(markup, sourceURL, fallbackTitle, fallbackServings)
			if p == nil {
				p = &foodrun.RecipePreview{Title: fallbackTitle, SourceURL: sourceURL, Servings: fallbackServings}
			}
			if p.Strategy == "" {
				p.Strategy = rule.Name()
			}
			if p.Ingredients == nil {
				p.Ingredients = []foodrun.IngredientRecord{}
			}
			return p, nil
		}
	}

	return e.preview(extractLastResort(root), sourceURL, docTitle, body, StrategyFallback), nil
}

// preview tokenizes a candidate's lines and reconciles title and servings:
// the strategy's own values win, then document metadata, then the URL, then
// the sentinel; servings fall back to the body-text pattern scan.
func (e *Extractor) preview(cand candidate, sourceURL, docTitle, body, strategy string) *foodrun.RecipePreview {
	title := cand.title
	if title == "" {
		title = docTitle
	}
	if title == "" {
		title = sourceURL
	}
	if title == "" {
		title = DefaultTitle
	}

	servings := cand.servings
	if servings == 0 {
		servings = foodrun.ParseServings(body)
	}

	ingredients := make([]foodrun.IngredientRecord, 0, len(cand.lines))
	for _, line := range cand.lines {
		ingredients = append(ingredients, foodrun.ParseIngredientLine(line))
	}

	directions := cand.directions
	if directions == "" && cand.directionsHTML != "" && e.converter != nil {
		if md, err := e.converter.Convert(cand.directionsHTML); err == nil {
			directions = strings.TrimSpace(md)
		}
	}

	return &foodrun.RecipePreview{
		Title:       title,
		SourceURL:   sourceURL,
		Servings:    servings,
		Ingredients: ingredients,
		Directions:  directions,
		Strategy:    strategy,
	}
}
