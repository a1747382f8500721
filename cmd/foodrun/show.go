package main

import (
	"fmt"

	foodrun "github.com/morrisxelijah/food-run"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	recipe, err := deps.Recipes.FindRecipeByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", foodrun.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n", recipe.Title)
	fmt.Fprintf(deps.Stdout, "Source: %s\n", recipe.SourceURL)
	if recipe.Servings > 0 {
		fmt.Fprintf(deps.Stdout, "Serves %d\n", recipe.Servings)
	}
	if recipe.Description != "" {
		fmt.Fprintf(deps.Stdout, "%s\n", recipe.Description)
	}

	fmt.Fprintf(deps.Stdout, "\nIngredients (%d):\n", len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		fmt.Fprintf(deps.Stdout, "  %s\n", formatIngredient(ing))
	}

	if recipe.Directions != "" {
		fmt.Fprintf(deps.Stdout, "\nDirections:\n%s\n", recipe.Directions)
	}

	return nil
}
