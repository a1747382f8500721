package goquery_test

import (
	"testing"

	foodrun "github.com/morrisxelijah/food-run"
	"github.com/morrisxelijah/food-run/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure PioneerWomanRule implements foodrun.DomainRule at compile time.
var _ foodrun.DomainRule = (*goquery.PioneerWomanRule)(nil)

func TestPioneerWomanRule_Match(t *testing.T) {
	t.Parallel()

	r := goquery.NewPioneerWomanRule()

	assert.True(t, r.Match("www.thepioneerwoman.com"))
	assert.False(t, r.Match("pioneer.example.com"))
}

func TestPioneerWomanRule_Extract(t *testing.T) {
	t.Parallel()

	r := goquery.NewPioneerWomanRule()

	t.Run("retitles away from the newsletter banner", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body>
<h1>Sign Up For The Pioneer Woman Newsletter</h1>
<h1>Chicken Fried Steak</h1>
<ul class="ingredient-lists">
  <li>2 cups buttermilk</li>
</ul>
</body></html>`

		preview := r.Extract(markup, "https://www.thepioneerwoman.com/steak",
			"Sign Up For The Pioneer Woman Newsletter", 0)

		assert.Equal(t, "Chicken Fried Steak", preview.Title)
		require.Len(t, preview.Ingredients, 1)
		assert.Equal(t, "buttermilk", preview.Ingredients[0].Name)
	})

	t.Run("keeps a real fallback title", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body>
<h1>Sign Up For The Pioneer Woman Newsletter</h1>
<div class="recipe-body">
  <span class="recipe-yield">Serves 6</span>
  <ul class="ingredient-lists"><li>3 cups mashed potatoes</li></ul>
</div>
</body></html>`

		preview := r.Extract(markup, "https://www.thepioneerwoman.com/potatoes",
			"Perfect Potatoes", 0)

		assert.Equal(t, "Perfect Potatoes", preview.Title)
		assert.Equal(t, 6, preview.Servings)
		require.Len(t, preview.Ingredients, 1)
		assert.Equal(t, "mashed potatoes", preview.Ingredients[0].Name)
	})

	t.Run("banner with no other heading keeps the banner", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body><h1>Sign Up For The Pioneer Woman Newsletter</h1></body></html>`

		preview := r.Extract(markup, "https://www.thepioneerwoman.com/x",
			"Sign Up For The Pioneer Woman Newsletter", 0)

		assert.Equal(t, "Sign Up For The Pioneer Woman Newsletter", preview.Title)
		assert.Empty(t, preview.Ingredients)
	})
}
