package foodrun

import (
	"context"
	"math"
	"time"
)

// IngredientRecord represents one ingredient extracted from a recipe page.
// Every field is provisional: the presentation layer treats all of them as
// editable before a recipe is confirmed.
type IngredientRecord struct {
	// Name may be empty when a line could not be parsed (e.g., a stray
	// numeric list item). Callers decide whether to filter such records.
	Name string `json:"name"`

	// Amount is nil when no leading quantity was recognized.
	Amount *float64 `json:"amount"`

	// Unit is set only when a unit token was recognized distinct from the
	// name. Empty string means no unit.
	Unit string `json:"unit,omitempty"`

	// Notes holds free-form annotations (e.g., "divided", "optional").
	Notes string `json:"notes,omitempty"`
}

// Validate returns an error if the record violates its invariants.
func (r *IngredientRecord) Validate() error {
	if r.Amount != nil {
		if math.IsNaN(*r.Amount) || math.IsInf(*r.Amount, 0) {
			return Errorf(EINVALID, "ingredient amount must be finite")
		}
		if *r.Amount < 0 {
			return Errorf(EINVALID, "ingredient amount must be non-negative")
		}
	}
	return nil
}

// RecipePreview is the best-effort structured result of extracting one page.
// It is newly constructed per extraction call and owned by the caller.
type RecipePreview struct {
	// Title is never empty; when nothing better is known it falls back to
	// the source URL or the "Untitled recipe" sentinel.
	Title     string `json:"title"`
	SourceURL string `json:"sourceUrl"`

	// Servings is 0 when unknown, positive otherwise.
	Servings int `json:"servings,omitempty"`

	// Ingredients preserves source document order.
	Ingredients []IngredientRecord `json:"ingredients"`

	// Description is a short summary of the page's main text, when one
	// could be extracted.
	Description string `json:"description,omitempty"`

	// Directions holds the preparation steps as markdown, when found.
	Directions string `json:"directions,omitempty"`

	// Strategy names the extraction strategy that produced this preview
	// (e.g., "structured-data", "heuristic", a tuned rule name).
	Strategy string `json:"strategy,omitempty"`
}

// Validate returns an error if the preview violates its invariants.
func (p *RecipePreview) Validate() error {
	if p.Title == "" {
		return Errorf(EINVALID, "preview title required")
	}
	if p.SourceURL == "" {
		return Errorf(EINVALID, "preview source URL required")
	}
	if p.Servings < 0 {
		return Errorf(EINVALID, "preview servings must be positive")
	}
	for i := range p.Ingredients {
		if err := p.Ingredients[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Recipe is a user-confirmed recipe persisted by a RecipeService.
type Recipe struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	SourceURL   string             `json:"sourceUrl"`
	Servings    int                `json:"servings,omitempty"`
	Description string             `json:"description,omitempty"`
	Directions  string             `json:"directions,omitempty"`
	Ingredients []IngredientRecord `json:"ingredients"`
	Tags        []string           `json:"tags,omitempty"`
	ContentHash string             `json:"contentHash"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// Validate returns an error if the recipe contains invalid fields.
func (r *Recipe) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "recipe title required")
	}
	if r.SourceURL == "" {
		return Errorf(EINVALID, "recipe source URL required")
	}
	return nil
}

// SortOrder represents the sort order for recipe queries.
type SortOrder string

// SortOrder constants for RecipeFilter.
const (
	SortByCreatedAt SortOrder = "created_at"
	SortByTitle     SortOrder = "title"
)

// RecipeFilter represents a filter for FindRecipes.
type RecipeFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`
	Host      *string `json:"host"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}

// RecipeService persists confirmed recipes.
type RecipeService interface {
	// CreateRecipe stores a confirmed preview scaled by the portion
	// multiplier. A multiplier of 1 stores the preview as-is; 2 doubles
	// every amount and the serving count. Returns EINVALID for a
	// non-positive multiplier or an invalid preview.
	CreateRecipe(ctx context.Context, preview *RecipePreview, multiplier float64) (*Recipe, error)

	// FindRecipeByID retrieves a recipe by ID.
	// Returns ENOTFOUND if the recipe does not exist.
	FindRecipeByID(ctx context.Context, id string) (*Recipe, error)

	// FindRecipes retrieves recipes matching the filter.
	FindRecipes(ctx context.Context, filter RecipeFilter) ([]*Recipe, error)

	// DeleteRecipe permanently removes a recipe and its ingredients.
	// Returns ENOTFOUND if the recipe does not exist.
	DeleteRecipe(ctx context.Context, id string) error
}
