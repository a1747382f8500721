package main

import (
	"fmt"
	"strings"

	foodrun "github.com/morrisxelijah/food-run"
)

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	if c.Multiplier <= 0 {
		fmt.Fprintf(deps.Stderr, "error: multiplier must be positive\n")
		return foodrun.Errorf(foodrun.EINVALID, "multiplier must be positive")
	}

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

	if len(preview.Ingredients) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no ingredients found at %s\n", c.URL)
		return foodrun.Errorf(foodrun.ENOTFOUND, "no ingredients found at %s", c.URL)
	}

	recipe, err := deps.Recipes.CreateRecipe(deps.Ctx, preview, c.Multiplier)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", foodrun.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %q (%s) with %d ingredients\n",
		recipe.Title, recipe.ID, len(recipe.Ingredients))

	if deps.Suggester != nil {
		tags, err := deps.Suggester.SuggestTags(deps.Ctx, preview)
		if err != nil {
			// Tagging is best-effort; the recipe is already saved.
			fmt.Fprintf(deps.Stderr, "warning: tag suggestion failed: %s\n", foodrun.ErrorMessage(err))
			return nil
		}
		if len(tags) > 0 {
			if err := deps.Tags.UpdateRecipeTags(deps.Ctx, recipe.ID, tags); err != nil {
				fmt.Fprintf(deps.Stderr, "warning: saving tags failed: %s\n", foodrun.ErrorMessage(err))
				return nil
			}
			fmt.Fprintf(deps.Stdout, "Tagged: %s\n", strings.Join(tags, ", "))
		}
	}

	return nil
}
