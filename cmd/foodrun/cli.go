package main

import (
	"context"
	"io"

	foodrun "github.com/morrisxelijah/food-run"
	"github.com/morrisxelijah/food-run/crawl"
	"github.com/morrisxelijah/food-run/sqlite"
)

// TagStore updates stored recipe tags. Implemented by sqlite.RecipeService.
type TagStore interface {
	UpdateRecipeTags(ctx context.Context, id string, tags []string) error
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Recipes   foodrun.RecipeService
	Tags      TagStore
	Fetcher   foodrun.Fetcher
	Renderer  foodrun.Fetcher
	Extractor foodrun.RecipeExtractor
	URLs      foodrun.URLSource
	Suggester foodrun.TagSuggester
	Importer  *crawl.Importer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetch and extraction details to stderr"`

	Parse  ParseCmd  `cmd:"" help:"Extract a recipe preview from a URL"`
	Save   SaveCmd   `cmd:"" help:"Extract a recipe and store it"`
	Import ImportCmd `cmd:"" help:"Import every recipe from a site's sitemap"`
	List   ListCmd   `cmd:"" help:"List stored recipes"`
	Show   ShowCmd   `cmd:"" help:"Show one stored recipe"`
	Delete DeleteCmd `cmd:"" help:"Delete a stored recipe"`
	Serve  ServeCmd  `cmd:"" help:"Run the JSON API server"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	URL    string `arg:"" help:"Recipe page URL"`
	Render bool   `short:"r" help:"Render the page in a headless browser first"`
	JSON   bool   `help:"Print the preview as JSON"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	URL        string  `arg:"" help:"Recipe page URL"`
	Multiplier float64 `short:"m" default:"1" help:"Portion multiplier applied to amounts and servings"`
	Render     bool    `short:"r" help:"Render the page in a headless browser first"`
	Tag        bool    `short:"t" help:"Suggest tags for the saved recipe (needs GEMINI_API_KEY)"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	URL         string   `arg:"" help:"Site base URL"`
	Filter      []string `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
	Concurrency int      `short:"c" default:"5" help:"Concurrent fetch limit"`
	Rate        float64  `default:"2" help:"Requests per second per domain"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Host   string `help:"Only recipes from this host"`
	ByName bool   `help:"Sort by title instead of creation time"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Recipe ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Recipe ID"`
	Force bool   `help:"Confirm deletion"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr   string `default:":8080" help:"Bind address"`
	Render bool   `help:"Start a headless browser to serve render-enabled parse requests"`
}
