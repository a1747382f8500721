package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	foodrun "github.com/morrisxelijah/food-run"
	foodrunhttp "github.com/morrisxelijah/food-run/http"
	"github.com/morrisxelijah/food-run/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() (*foodrunhttp.Server, *mock.Fetcher, *mock.RecipeExtractor, *mock.RecipeService) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	fetcher := &mock.Fetcher{}
	extractor := &mock.RecipeExtractor{}
	recipes := &mock.RecipeService{}

	s := foodrunhttp.NewServer(logger)
	s.Fetcher = fetcher
	s.Extractor = extractor
	s.RecipeService = recipes
	return s, fetcher, extractor, recipes
}

func TestServer_Parse(t *testing.T) {
	t.Parallel()

	t.Run("fetches and extracts a preview", func(t *testing.T) {
		t.Parallel()

		s, fetcher, extractor, _ := newTestServer()
		fetcher.FetchFn = func(ctx context.Context, url string) (string, error) {
			assert.Equal(t, "https://example.com/recipes/chili", url)
			return "<html></html>", nil
		}
		extractor.ExtractFn = func(markup, sourceURL string) (*foodrun.RecipePreview, error) {
			assert.Equal(t, "<html></html>", markup)
			return &foodrun.RecipePreview{
				Title:       "Chili",
				SourceURL:   sourceURL,
				Servings:    4,
				Ingredients: []foodrun.IngredientRecord{{Name: "beans"}},
				Strategy:    "structured-data",
			}, nil
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/parse",
			strings.NewReader(`{"url":"https://example.com/recipes/chili"}`))
		s.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got foodrun.RecipePreview
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "Chili", got.Title)
		assert.Equal(t, 4, got.Servings)
		assert.Len(t, got.Ingredients, 1)
	})

	t.Run("rejects missing URL", func(t *testing.T) {
		t.Parallel()

		s, _, _, _ := newTestServer()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", strings.NewReader(`{}`))
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		s, _, _, _ := newTestServer()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", strings.NewReader(`{"url":`))
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("maps extraction errors onto HTTP statuses", func(t *testing.T) {
		t.Parallel()

		s, fetcher, extractor, _ := newTestServer()
		fetcher.FetchFn = func(ctx context.Context, url string) (string, error) {
			return "<html></html>", nil
		}
		extractor.ExtractFn = func(markup, sourceURL string) (*foodrun.RecipePreview, error) {
			return nil, foodrun.Errorf(foodrun.EINVALID, "malformed source URL")
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/parse",
			strings.NewReader(`{"url":"::broken"}`))
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, foodrun.EINVALID, body["code"])
		assert.Equal(t, "malformed source URL", body["error"])
	})

	t.Run("uses the render fetcher when requested", func(t *testing.T) {
		t.Parallel()

		s, fetcher, extractor, _ := newTestServer()
		fetcher.FetchFn = func(ctx context.Context, url string) (string, error) {
			t.Fatal("plain fetcher should not be used for render requests")
			return "", nil
		}
		renderer := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>rendered</html>", nil
			},
		}
		s.RenderFetcher = renderer
		extractor.ExtractFn = func(markup, sourceURL string) (*foodrun.RecipePreview, error) {
			assert.Equal(t, "<html>rendered</html>", markup)
			return &foodrun.RecipePreview{Title: "Chili", SourceURL: sourceURL}, nil
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/parse",
			strings.NewReader(`{"url":"https://example.com/recipes/chili","render":true}`))
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects render requests when no renderer is wired", func(t *testing.T) {
		t.Parallel()

		s, _, _, _ := newTestServer()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/parse",
			strings.NewReader(`{"url":"https://example.com/recipes/chili","render":true}`))
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("maps fetch failures to service unavailable", func(t *testing.T) {
		t.Parallel()

		s, fetcher, _, _ := newTestServer()
		fetcher.FetchFn = func(ctx context.Context, url string) (string, error) {
			return "", foodrun.Errorf(foodrun.EUNAVAILABLE, "HTTP 502 for %s", url)
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/parse",
			strings.NewReader(`{"url":"https://example.com/recipes/chili"}`))
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestServer_CreateRecipe(t *testing.T) {
	t.Parallel()

	t.Run("confirms a preview with a multiplier", func(t *testing.T) {
		t.Parallel()

		s, _, _, recipes := newTestServer()
		recipes.CreateRecipeFn = func(ctx context.Context, preview *foodrun.RecipePreview, multiplier float64) (*foodrun.Recipe, error) {
			assert.Equal(t, 2.0, multiplier)
			return &foodrun.Recipe{ID: "abc", Title: preview.Title, SourceURL: preview.SourceURL}, nil
		}

		body, err := json.Marshal(map[string]any{
			"preview": &foodrun.RecipePreview{
				Title:       "Chili",
				SourceURL:   "https://example.com/recipes/chili",
				Ingredients: []foodrun.IngredientRecord{},
			},
			"multiplier": 2.0,
		})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes", bytes.NewReader(body))
		s.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got foodrun.Recipe
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "abc", got.ID)
	})

	t.Run("defaults missing multiplier to 1", func(t *testing.T) {
		t.Parallel()

		s, _, _, recipes := newTestServer()
		recipes.CreateRecipeFn = func(ctx context.Context, preview *foodrun.RecipePreview, multiplier float64) (*foodrun.Recipe, error) {
			assert.Equal(t, 1.0, multiplier)
			return &foodrun.Recipe{ID: "abc", Title: preview.Title, SourceURL: preview.SourceURL}, nil
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes",
			strings.NewReader(`{"preview":{"title":"Chili","sourceUrl":"https://example.com/r","ingredients":[]}}`))
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("rejects a missing preview", func(t *testing.T) {
		t.Parallel()

		s, _, _, _ := newTestServer()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes", strings.NewReader(`{"multiplier":2}`))
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Recipes(t *testing.T) {
	t.Parallel()

	t.Run("lists recipes with host filter", func(t *testing.T) {
		t.Parallel()

		s, _, _, recipes := newTestServer()
		recipes.FindRecipesFn = func(ctx context.Context, filter foodrun.RecipeFilter) ([]*foodrun.Recipe, error) {
			require.NotNil(t, filter.Host)
			assert.Equal(t, "example.com", *filter.Host)
			return []*foodrun.Recipe{{ID: "abc", Title: "Chili"}}, nil
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes?host=example.com", nil)
		s.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Recipes []*foodrun.Recipe `json:"recipes"`
			Count   int               `json:"count"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, 1, body.Count)
		assert.Equal(t, "Chili", body.Recipes[0].Title)
	})

	t.Run("retrieves a recipe by ID", func(t *testing.T) {
		t.Parallel()

		s, _, _, recipes := newTestServer()
		recipes.FindRecipeByIDFn = func(ctx context.Context, id string) (*foodrun.Recipe, error) {
			assert.Equal(t, "abc", id)
			return &foodrun.Recipe{ID: "abc", Title: "Chili"}, nil
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/abc", nil)
		s.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("returns 404 for unknown recipe", func(t *testing.T) {
		t.Parallel()

		s, _, _, recipes := newTestServer()
		recipes.FindRecipeByIDFn = func(ctx context.Context, id string) (*foodrun.Recipe, error) {
			return nil, foodrun.Errorf(foodrun.ENOTFOUND, "recipe not found")
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/zzz", nil)
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("deletes a recipe", func(t *testing.T) {
		t.Parallel()

		s, _, _, recipes := newTestServer()
		var deleted string
		recipes.DeleteRecipeFn = func(ctx context.Context, id string) error {
			deleted = id
			return nil
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/recipes/abc", nil)
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "abc", deleted)
	})
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	s, _, _, _ := newTestServer()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
