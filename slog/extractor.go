// Package slog provides logging decorators for foodrun services.
package slog

import (
	"log/slog"
	"time"

	foodrun "github.com/morrisxelijah/food-run"
)

// Ensure Extractor implements foodrun.RecipeExtractor at compile time.
var _ foodrun.RecipeExtractor = (*Extractor)(nil)

// Extractor wraps a RecipeExtractor with structured logging: which strategy
// won, how many ingredients it produced, and how long extraction took.
type Extractor struct {
	next   foodrun.RecipeExtractor
	logger *slog.Logger
}

// NewExtractor creates a new logging Extractor.
func NewExtractor(next foodrun.RecipeExtractor, logger *slog.Logger) *Extractor {
	return &Extractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *Extractor) Extract(markup string, sourceURL string) (*foodrun.RecipePreview, error) {
	begin := time.Now()
	preview, err := e.next.Extract(markup, sourceURL)
	if err != nil {
		e.logger.Error("extraction failed",
			"url", sourceURL,
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}

	e.logger.Info("extraction",
		"url", sourceURL,
		"strategy", preview.Strategy,
		"ingredients", len(preview.Ingredients),
		"servings", preview.Servings,
		"duration", time.Since(begin),
	)
	return preview, nil
}
