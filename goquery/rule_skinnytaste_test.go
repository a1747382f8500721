package goquery_test

import (
	"testing"

	foodrun "github.com/morrisxelijah/food-run"
	"github.com/morrisxelijah/food-run/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure SkinnytasteRule implements foodrun.DomainRule at compile time.
var _ foodrun.DomainRule = (*goquery.SkinnytasteRule)(nil)

func TestSkinnytasteRule_Match(t *testing.T) {
	t.Parallel()

	r := goquery.NewSkinnytasteRule()

	assert.True(t, r.Match("www.skinnytaste.com"))
	assert.False(t, r.Match("skinny.example.org"))
}

func TestSkinnytasteRule_Extract(t *testing.T) {
	t.Parallel()

	r := goquery.NewSkinnytasteRule()

	t.Run("servings from the scaler input element", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body>
<input type="number" name="servings" value="4">
<div class="ingredients">
  <ul>
    <li>6 oz turkey bacon</li>
    <li>2 large eggs</li>
  </ul>
</div>
</body></html>`

		preview := r.Extract(markup, "https://www.skinnytaste.com/bake", "Breakfast Bake", 0)

		assert.Equal(t, "Breakfast Bake", preview.Title)
		assert.Equal(t, 4, preview.Servings)
		assert.Equal(t, "skinnytaste", preview.Strategy)

		require.Len(t, preview.Ingredients, 2)
		assert.Equal(t, "turkey bacon", preview.Ingredients[0].Name)
		assert.Equal(t, "oz", preview.Ingredients[0].Unit)
	})

	t.Run("yield text when no input element", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body>
<div class="servings-adjuster"><span class="yield">Serves 8</span></div>
<div class="ingredients"><ul><li>1 cup oats</li></ul></div>
</body></html>`

		preview := r.Extract(markup, "https://www.skinnytaste.com/oats", "Oats", 0)

		assert.Equal(t, 8, preview.Servings)
	})

	t.Run("fallback servings survive an empty page", func(t *testing.T) {
		t.Parallel()

		preview := r.Extract("<html></html>", "https://www.skinnytaste.com/x", "X", 2)

		assert.Equal(t, 2, preview.Servings)
		assert.Empty(t, preview.Ingredients)
	})
}
