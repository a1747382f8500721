package main

import (
	"encoding/json"
	"fmt"

	foodrun "github.com/morrisxelijah/food-run"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	markup, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", foodrun.ErrorMessage(err))
		return err
	}

	preview, err := deps.Extractor.Extract(markup, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", foodrun.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(preview)
	}

	printPreview(deps, preview)
	return nil
}

// printPreview renders a preview in a readable terminal layout.
func printPreview(deps *Dependencies, preview *foodrun.RecipePreview) {
	fmt.Fprintf(deps.Stdout, "%s\n", preview.Title)
	if preview.Servings > 0 {
		fmt.Fprintf(deps.Stdout, "Serves %d\n", preview.Servings)
	}
	if preview.Description != "" {
		fmt.Fprintf(deps.Stdout, "%s\n", preview.Description)
	}

	fmt.Fprintf(deps.Stdout, "\nIngredients (%d):\n", len(preview.Ingredients))
	for _, ing := range preview.Ingredients {
		fmt.Fprintf(deps.Stdout, "  %s\n", formatIngredient(ing))
	}

	if preview.Directions != "" {
		fmt.Fprintf(deps.Stdout, "\nDirections:\n%s\n", preview.Directions)
	}

	fmt.Fprintf(deps.Stdout, "\n(extracted via %s)\n", preview.Strategy)
}

// formatIngredient renders one ingredient line for display.
func formatIngredient(ing foodrun.IngredientRecord) string {
	s := ""
	if ing.Amount != nil {
		s = fmt.Sprintf("%g ", *ing.Amount)
	}
	if ing.Unit != "" {
		s += ing.Unit + " "
	}
	s += ing.Name
	if ing.Notes != "" {
		s += " (" + ing.Notes + ")"
	}
	return s
}
