package foodrun_test

import (
	"fmt"
	"strings"
	"testing"

	foodrun "github.com/morrisxelijah/food-run"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	t.Run("decodes entities", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "salt & pepper", foodrun.NormalizeText("salt &amp; pepper"))
		assert.Equal(t, `"fresh" <basil>`, foodrun.NormalizeText("&quot;fresh&quot; &lt;basil&gt;"))
	})

	t.Run("collapses whitespace including nbsp", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "2 cups flour", foodrun.NormalizeText("  2\t cups&nbsp;\n flour  "))
	})

	t.Run("unknown entities pass through", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "&bogus; token", foodrun.NormalizeText("&bogus;   token"))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, foodrun.NormalizeText("   "))
	})
}

func TestParseIngredientLine(t *testing.T) {
	t.Parallel()

	t.Run("amount unit and name from three or more tokens", func(t *testing.T) {
		t.Parallel()

		rec := foodrun.ParseIngredientLine("2 lbs ground beef")

		require.NotNil(t, rec.Amount)
		assert.Equal(t, 2.0, *rec.Amount)
		assert.Equal(t, "lbs", rec.Unit)
		assert.Equal(t, "ground beef", rec.Name)
	})

	t.Run("two tokens means no unit", func(t *testing.T) {
		t.Parallel()

		rec := foodrun.ParseIngredientLine("1 onion")

		require.NotNil(t, rec.Amount)
		assert.Equal(t, 1.0, *rec.Amount)
		assert.Empty(t, rec.Unit)
		assert.Equal(t, "onion", rec.Name)
	})

	t.Run("fractional amount", func(t *testing.T) {
		t.Parallel()

		rec := foodrun.ParseIngredientLine("1/2 cup sugar")

		require.NotNil(t, rec.Amount)
		assert.Equal(t, 0.5, *rec.Amount)
		assert.Equal(t, "cup", rec.Unit)
		assert.Equal(t, "sugar", rec.Name)
	})

	t.Run("decimal amount with trailing punctuation", func(t *testing.T) {
		t.Parallel()

		rec := foodrun.ParseIngredientLine("1.5, tsp vanilla extract")

		require.NotNil(t, rec.Amount)
		assert.Equal(t, 1.5, *rec.Amount)
		assert.Equal(t, "tsp", rec.Unit)
		assert.Equal(t, "vanilla extract", rec.Name)
	})

	t.Run("non-numeric first token keeps whole line as name", func(t *testing.T) {
		t.Parallel()

		rec := foodrun.ParseIngredientLine("salt and pepper to taste")

		assert.Nil(t, rec.Amount)
		assert.Empty(t, rec.Unit)
		assert.Equal(t, "salt and pepper to taste", rec.Name)
	})

	t.Run("entirely numeric line yields empty name", func(t *testing.T) {
		t.Parallel()

		rec := foodrun.ParseIngredientLine("2")

		require.NotNil(t, rec.Amount)
		assert.Equal(t, 2.0, *rec.Amount)
		assert.Empty(t, rec.Name)
	})

	t.Run("entity-encoded line is normalized first", func(t *testing.T) {
		t.Parallel()

		rec := foodrun.ParseIngredientLine("3&nbsp;cups&nbsp;flour")

		require.NotNil(t, rec.Amount)
		assert.Equal(t, 3.0, *rec.Amount)
		assert.Equal(t, "cups", rec.Unit)
		assert.Equal(t, "flour", rec.Name)
	})

	t.Run("empty line never fails", func(t *testing.T) {
		t.Parallel()

		rec := foodrun.ParseIngredientLine("")

		assert.Nil(t, rec.Amount)
		assert.Empty(t, rec.Name)
	})

	t.Run("idempotent over reconstructed text", func(t *testing.T) {
		t.Parallel()

		lines := []string{
			"2 lbs ground beef",
			"1 onion",
			"1/2 cup sugar",
			"salt and pepper to taste",
		}
		for _, line := range lines {
			first := foodrun.ParseIngredientLine(line)

			var parts []string
			if first.Amount != nil {
				parts = append(parts, strings.TrimRight(strings.TrimRight(
					fmt.Sprintf("%g", *first.Amount), "0"), "."))
			}
			if first.Unit != "" {
				parts = append(parts, first.Unit)
			}
			if first.Name != "" {
				parts = append(parts, first.Name)
			}

			second := foodrun.ParseIngredientLine(strings.Join(parts, " "))
			assert.Equal(t, first, second, "line %q", line)
		}
	})
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  float64
		ok    bool
	}{
		{"2", 2, true},
		{"2.5", 2.5, true},
		{"3/4", 0.75, true},
		{"(1/2)", 0.5, true},
		{"1,", 1, true},
		{"cup", 0, false},
		{"", 0, false},
		{"1/0", 0, false},
		{".", 0, false},
	}
	for _, tt := range tests {
		got, ok := foodrun.ParseAmount(tt.token)
		assert.Equal(t, tt.ok, ok, "token %q", tt.token)
		if tt.ok {
			assert.Equal(t, tt.want, got, "token %q", tt.token)
		}
	}
}

func TestParseServings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, foodrun.ParseServings("This recipe serves 4 people."))
	assert.Equal(t, 6, foodrun.ParseServings("Yield: 6 servings"))
	assert.Equal(t, 1, foodrun.ParseServings("makes 1 serving"))
	assert.Zero(t, foodrun.ParseServings("no counts here"))
	assert.Zero(t, foodrun.ParseServings(""))
}
