package main

import (
	"fmt"
	"strings"

	foodrun "github.com/morrisxelijah/food-run"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := foodrun.RecipeFilter{SortBy: foodrun.SortByCreatedAt}
	if c.Host != "" {
		filter.Host = &c.Host
	}
	if c.ByName {
		filter.SortBy = foodrun.SortByTitle
	}

	recipes, err := deps.Recipes.FindRecipes(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", foodrun.ErrorMessage(err))
		return err
	}

	if len(recipes) == 0 {
		fmt.Fprintln(deps.Stdout, "No recipes found. Use 'foodrun save' to add one.")
		return nil
	}

	for _, r := range recipes {
		line := fmt.Sprintf("%s  %s", r.ID, r.Title)
		if r.Servings > 0 {
			line += fmt.Sprintf("  (serves %d)", r.Servings)
		}
		if len(r.Tags) > 0 {
			line += "  [" + strings.Join(r.Tags, ", ") + "]"
		}
		fmt.Fprintln(deps.Stdout, line)
	}

	return nil
}
