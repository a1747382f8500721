// Command foodrun extracts structured recipes from web pages and manages a
// local recipe collection.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/morrisxelijah/food-run/bloom"
	"github.com/morrisxelijah/food-run/crawl"
	"github.com/morrisxelijah/food-run/gemini"
	"github.com/morrisxelijah/food-run/goquery"
	"github.com/morrisxelijah/food-run/htmltomarkdown"
	foodrunhttp "github.com/morrisxelijah/food-run/http"
	"github.com/morrisxelijah/food-run/rod"
	foodrunslog "github.com/morrisxelijah/food-run/slog"
	"github.com/morrisxelijah/food-run/sqlite"
	"github.com/morrisxelijah/food-run/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("foodrun"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'foodrun --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set FOODRUN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Wire core services into dependencies
	recipes := sqlite.NewRecipeService(m.DB)
	deps.DB = m.DB
	deps.Recipes = recipes
	deps.Tags = recipes
	deps.URLs = foodrunhttp.NewURLSource(nil)
	deps.Extractor = foodrunslog.NewExtractor(
		goquery.NewExtractor(
			goquery.WithRules(goquery.NewDefaultRegistry()),
			goquery.WithConverter(htmltomarkdown.NewConverter()),
		),
		logger,
	)

	// Wire command-specific dependencies
	needsBrowser := (cmd == "parse" && cli.Parse.Render) ||
		(cmd == "save" && cli.Save.Render) ||
		(cmd == "serve" && cli.Serve.Render)
	if needsBrowser {
		fetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()
		deps.Renderer = rod.NewLoggingFetcher(fetcher, logger)
	}

	if needsBrowser && cmd != "serve" {
		deps.Fetcher = deps.Renderer
	} else {
		fetcher := foodrunhttp.NewFetcher()
		defer fetcher.Close()
		deps.Fetcher = fetcher
	}

	if cmd == "save" && cli.Save.Tag {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Suggester = gemini.NewTagSuggester(client)
	}

	if cmd == "import" {
		deps.Importer = &crawl.Importer{
			URLs:        deps.URLs,
			Fetcher:     deps.Fetcher,
			Extractor:   deps.Extractor,
			Describer:   trafilatura.NewDescriber(),
			Recipes:     deps.Recipes,
			Seen:        bloom.NewFilter(importExpectedURLs, importFalsePositiveRate),
			RateLimiter: foodrunhttp.NewDomainLimiter(cli.Import.Rate),
			Concurrency: cli.Import.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

// Bloom filter sizing for import deduplication.
const (
	importExpectedURLs      = 10000
	importFalsePositiveRate = 0.01
)

func defaultDBPath() string {
	if path := os.Getenv("FOODRUN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "foodrun.db"
	}
	dir := filepath.Join(home, ".foodrun")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "foodrun.db")
}
