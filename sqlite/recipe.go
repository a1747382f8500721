package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	foodrun "github.com/morrisxelijah/food-run"
)

// Compile-time interface verification.
var _ foodrun.RecipeService = (*RecipeService)(nil)

// RecipeService implements foodrun.RecipeService using SQLite.
type RecipeService struct {
	db *DB
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(db *DB) *RecipeService {
	return &RecipeService{db: db}
}

// hashRecipe computes xxHash over the fields that identify a recipe's
// content and returns a hex string. Two imports of the same page with the
// same extracted content hash identically.
func hashRecipe(r *foodrun.Recipe) string {
	var sb strings.Builder
	sb.WriteString(r.Title)
	sb.WriteByte('\n')
	sb.WriteString(r.SourceURL)
	sb.WriteByte('\n')
	sb.WriteString(r.Directions)
	for _, ing := range r.Ingredients {
		sb.WriteByte('\n')
		sb.WriteString(ing.Name)
		sb.WriteByte('|')
		if ing.Amount != nil {
			fmt.Fprintf(&sb, "%g", *ing.Amount)
		}
		sb.WriteByte('|')
		sb.WriteString(ing.Unit)
	}

	h := xxhash.Sum64String(sb.String())
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h)
	return hex.EncodeToString(b)
}

// scaleAmount multiplies an optional amount, preserving nil.
func scaleAmount(amount *float64, multiplier float64) *float64 {
	if amount == nil {
		return nil
	}
	v := *amount * multiplier
	return &v
}

// CreateRecipe stores a confirmed preview scaled by the portion multiplier.
func (s *RecipeService) CreateRecipe(ctx context.Context, preview *foodrun.RecipePreview, multiplier float64) (*foodrun.Recipe, error) {
	if multiplier <= 0 {
		return nil, foodrun.Errorf(foodrun.EINVALID, "portion multiplier must be positive")
	}
	if preview == nil {
		return nil, foodrun.Errorf(foodrun.EINVALID, "preview required")
	}
	if err := preview.Validate(); err != nil {
		return nil, err
	}

	recipe := &foodrun.Recipe{
		ID:          uuid.New().String(),
		Title:       preview.Title,
		SourceURL:   preview.SourceURL,
		Servings:    int(math.Round(float64(preview.Servings) * multiplier)),
		Description: preview.Description,
		Directions:  preview.Directions,
		Ingredients: make([]foodrun.IngredientRecord, len(preview.Ingredients)),
		CreatedAt:   time.Now().UTC(),
	}
	for i, ing := range preview.Ingredients {
		recipe.Ingredients[i] = foodrun.IngredientRecord{
			Name:   ing.Name,
			Amount: scaleAmount(ing.Amount, multiplier),
			Unit:   ing.Unit,
			Notes:  ing.Notes,
		}
	}
	recipe.ContentHash = hashRecipe(recipe)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO recipes (id, title, source_url, host, servings, description, directions, tags, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, recipe.ID, recipe.Title, recipe.SourceURL, hostOf(recipe.SourceURL), recipe.Servings,
		recipe.Description, recipe.Directions, strings.Join(recipe.Tags, ","),
		recipe.ContentHash, recipe.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	for i, ing := range recipe.Ingredients {
		var amount any
		if ing.Amount != nil {
			amount = *ing.Amount
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO ingredients (recipe_id, position, name, amount, unit, notes)
			VALUES (?, ?, ?, ?, ?, ?)
		`, recipe.ID, i, ing.Name, amount, ing.Unit, ing.Notes)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return recipe, nil
}

// hostOf returns the lowercased hostname of a URL, or "" if unparseable.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// FindRecipeByID retrieves a recipe by ID, including its ingredients in
// stored order.
func (s *RecipeService) FindRecipeByID(ctx context.Context, id string) (*foodrun.Recipe, error) {
	var recipe foodrun.Recipe
	var tags, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, source_url, servings, description, directions, tags, content_hash, created_at
		FROM recipes
		WHERE id = ?
	`, id).Scan(&recipe.ID, &recipe.Title, &recipe.SourceURL, &recipe.Servings,
		&recipe.Description, &recipe.Directions, &tags, &recipe.ContentHash, &createdAt)

	if err == sql.ErrNoRows {
		return nil, foodrun.Errorf(foodrun.ENOTFOUND, "recipe not found")
	}
	if err != nil {
		return nil, err
	}

	if recipe.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	recipe.Tags = splitTags(tags)

	if recipe.Ingredients, err = s.findIngredients(ctx, recipe.ID); err != nil {
		return nil, err
	}

	return &recipe, nil
}

// FindRecipes retrieves recipes matching the filter. Ingredients are loaded
// for every returned recipe.
func (s *RecipeService) FindRecipes(ctx context.Context, filter foodrun.RecipeFilter) ([]*foodrun.Recipe, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, source_url, servings, description, directions, tags, content_hash, created_at FROM recipes WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Host != nil {
		query.WriteString(" AND host = ?")
		args = append(args, strings.ToLower(*filter.Host))
	}

	switch filter.SortBy {
	case foodrun.SortByTitle:
		query.WriteString(" ORDER BY title ASC")
	default:
		query.WriteString(" ORDER BY created_at DESC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []*foodrun.Recipe
	for rows.Next() {
		var recipe foodrun.Recipe
		var tags, createdAt string

		if err := rows.Scan(&recipe.ID, &recipe.Title, &recipe.SourceURL, &recipe.Servings,
			&recipe.Description, &recipe.Directions, &tags, &recipe.ContentHash, &createdAt); err != nil {
			return nil, err
		}

		if recipe.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		recipe.Tags = splitTags(tags)

		recipes = append(recipes, &recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, recipe := range recipes {
		if recipe.Ingredients, err = s.findIngredients(ctx, recipe.ID); err != nil {
			return nil, err
		}
	}

	return recipes, nil
}

// UpdateRecipeTags replaces a recipe's tags.
func (s *RecipeService) UpdateRecipeTags(ctx context.Context, id string, tags []string) error {
	result, err := s.db.ExecContext(ctx, "UPDATE recipes SET tags = ? WHERE id = ?",
		strings.Join(tags, ","), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return foodrun.Errorf(foodrun.ENOTFOUND, "recipe not found")
	}

	return nil
}

// DeleteRecipe permanently removes a recipe. Ingredients cascade.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return foodrun.Errorf(foodrun.ENOTFOUND, "recipe not found")
	}

	return nil
}

func (s *RecipeService) findIngredients(ctx context.Context, recipeID string) ([]foodrun.IngredientRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, amount, unit, notes
		FROM ingredients
		WHERE recipe_id = ?
		ORDER BY position ASC
	`, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ingredients := []foodrun.IngredientRecord{}
	for rows.Next() {
		var ing foodrun.IngredientRecord
		var amount sql.NullFloat64

		if err := rows.Scan(&ing.Name, &amount, &ing.Unit, &ing.Notes); err != nil {
			return nil, err
		}
		if amount.Valid {
			ing.Amount = &amount.Float64
		}

		ingredients = append(ingredients, ing)
	}

	return ingredients, rows.Err()
}

func splitTags(tags string) []string {
	if tags == "" {
		return nil
	}
	return strings.Split(tags, ",")
}
