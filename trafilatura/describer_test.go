package trafilatura_test

import (
	"strings"
	"testing"

	foodrun "github.com/morrisxelijah/food-run"
	"github.com/morrisxelijah/food-run/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Describer implements foodrun.Describer at compile time.
var _ foodrun.Describer = (*trafilatura.Describer)(nil)

func TestDescriber_Describe(t *testing.T) {
	t.Parallel()

	t.Run("prefers page description metadata", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>One Pot Chili</title>
<meta name="description" content="A hearty weeknight chili made in one pot.">
</head>
<body>
<article>
<h1>One Pot Chili</h1>
<p>This chili has been a family favorite for years and comes together fast.</p>
</article>
</body>
</html>`

		d := trafilatura.NewDescriber()
		desc, err := d.Describe(html)

		require.NoError(t, err)
		assert.Equal(t, "A hearty weeknight chili made in one pot.", desc)
	})

	t.Run("falls back to main content prose", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>One Pot Chili</title></head>
<body>
<nav><a href="/">Home</a><a href="/recipes">Recipes</a></nav>
<article>
<h1>One Pot Chili</h1>
<p>This hearty chili comes together in a single pot on a weeknight.</p>
<p>Serve with cornbread and a dollop of sour cream on top.</p>
</article>
<footer>Copyright 2026</footer>
</body>
</html>`

		d := trafilatura.NewDescriber()
		desc, err := d.Describe(html)

		require.NoError(t, err)
		assert.NotEmpty(t, desc)
		assert.LessOrEqual(t, len(desc), trafilatura.MaxDescriptionLen+len("…"))
	})

	t.Run("truncates long descriptions at a word boundary", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("hearty weeknight chili ", 40)
		html := `<!DOCTYPE html>
<html>
<head>
<title>Chili</title>
<meta name="description" content="` + long + `">
</head>
<body><article><h1>Chili</h1><p>Body text.</p></article></body>
</html>`

		d := trafilatura.NewDescriber()
		desc, err := d.Describe(html)

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(desc, "…"))
		assert.LessOrEqual(t, len(desc), trafilatura.MaxDescriptionLen+len("…"))
	})

	t.Run("rejects empty markup", func(t *testing.T) {
		t.Parallel()

		d := trafilatura.NewDescriber()
		_, err := d.Describe("")
		require.Error(t, err)
		assert.Equal(t, foodrun.EINVALID, foodrun.ErrorCode(err))
	})
}
