package mock

import (
	"context"

	foodrun "github.com/morrisxelijah/food-run"
)

var _ foodrun.RecipeService = (*RecipeService)(nil)

// RecipeService is a mock implementation of foodrun.RecipeService.
type RecipeService struct {
	CreateRecipeFn   func(ctx context.Context, preview *foodrun.RecipePreview, multiplier float64) (*foodrun.Recipe, error)
	FindRecipeByIDFn func(ctx context.Context, id string) (*foodrun.Recipe, error)
	FindRecipesFn    func(ctx context.Context, filter foodrun.RecipeFilter) ([]*foodrun.Recipe, error)
	DeleteRecipeFn   func(ctx context.Context, id string) error
}

func (s *RecipeService) CreateRecipe(ctx context.Context, preview *foodrun.RecipePreview, multiplier float64) (*foodrun.Recipe, error) {
	return s.CreateRecipeFn(ctx, preview, multiplier)
}

func (s *RecipeService) FindRecipeByID(ctx context.Context, id string) (*foodrun.Recipe, error) {
	return s.FindRecipeByIDFn(ctx, id)
}

func (s *RecipeService) FindRecipes(ctx context.Context, filter foodrun.RecipeFilter) ([]*foodrun.Recipe, error) {
	return s.FindRecipesFn(ctx, filter)
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, id string) error {
	return s.DeleteRecipeFn(ctx, id)
}
