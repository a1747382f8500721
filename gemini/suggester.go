// Package gemini suggests tags for confirmed recipes using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	foodrun "github.com/morrisxelijah/food-run"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// MaxTags caps how many tags a suggestion may carry.
const MaxTags = 5

// Ensure TagSuggester implements foodrun.TagSuggester at compile time.
var _ foodrun.TagSuggester = (*TagSuggester)(nil)

// TagSuggester implements foodrun.TagSuggester using Google Gemini.
type TagSuggester struct {
	client *genai.Client
}

// NewTagSuggester creates a new TagSuggester.
func NewTagSuggester(client *genai.Client) *TagSuggester {
	return &TagSuggester{client: client}
}

// SuggestTags proposes up to MaxTags tags for a recipe preview, most
// relevant first.
func (s *TagSuggester) SuggestTags(ctx context.Context, preview *foodrun.RecipePreview) ([]string, error) {
	if preview == nil {
		return nil, foodrun.Errorf(foodrun.EINVALID, "preview required")
	}
	if preview.Title == "" {
		return nil, foodrun.Errorf(foodrun.EINVALID, "preview title required")
	}

	prompt := BuildUserPrompt(preview)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, foodrun.Errorf(foodrun.EINTERNAL, "gemini returned nil result")
	}

	return ParseTags(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a recipe cataloging assistant. Given a recipe, reply with a comma-separated list of at most five lowercase tags covering cuisine, meal type, and main ingredient. Reply with the tags only, most relevant first.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the recipe summary.
func BuildUserPrompt(preview *foodrun.RecipePreview) string {
	var sb strings.Builder
	sb.WriteString("<recipe>\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", preview.Title)
	if preview.Servings > 0 {
		fmt.Fprintf(&sb, "<servings>%d</servings>\n", preview.Servings)
	}
	if preview.Description != "" {
		fmt.Fprintf(&sb, "<description>%s</description>\n", preview.Description)
	}
	sb.WriteString("<ingredients>\n")
	for _, ing := range preview.Ingredients {
		fmt.Fprintf(&sb, "<ingredient>%s</ingredient>\n", ing.Name)
	}
	sb.WriteString("</ingredients>\n")
	sb.WriteString("</recipe>\n\n")
	sb.WriteString("Suggest tags for this recipe.")
	return sb.String()
}

// ParseTags splits a model reply into a clean tag list: trimmed, lowercased,
// deduplicated, capped at MaxTags.
func ParseTags(reply string) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(reply, ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		tag = strings.Trim(tag, ".")
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
		if len(tags) == MaxTags {
			break
		}
	}
	return tags
}
