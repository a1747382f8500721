// Package crawl provides bulk recipe import orchestration.
// It coordinates sitemap discovery, fetching, extraction, and storage of
// recipe pages from a whole site.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	foodrun "github.com/morrisxelijah/food-run"
	"golang.org/x/sync/errgroup"
)

// Importer orchestrates the bulk import of a recipe site.
type Importer struct {
	URLs        foodrun.URLSource
	Fetcher     foodrun.Fetcher
	Extractor   foodrun.RecipeExtractor
	Describer   foodrun.Describer // optional
	Recipes     foodrun.RecipeService
	Seen        foodrun.SeenFilter    // optional
	RateLimiter foodrun.DomainLimiter // optional
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of an import operation.
type Result struct {
	Imported int
	Skipped  int
	Failed   int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressImported
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during an import operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Title     string
	Error     error
}

// ProgressFunc is a callback for reporting import progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	position int
	url      string
	preview  *foodrun.RecipePreview
	skipped  bool
	err      error
}

// ImportSite discovers recipe URLs from a site's sitemap, extracts each
// page, and stores every page that yields at least one ingredient. Pages
// that extract nothing are skipped, not failed. The progress callback, if
// provided, receives events as the import proceeds.
func (im *Importer) ImportSite(ctx context.Context, baseURL string, filter *foodrun.URLFilter, progress ProgressFunc) (*Result, error) {
	urls, err := im.URLs.DiscoverURLs(ctx, baseURL, filter)
	if err != nil {
		return nil, fmt.Errorf("sitemap discovery: %w", err)
	}

	// Drop URLs already handled in this run or a previous one.
	if im.Seen != nil {
		fresh := urls[:0]
		for _, u := range urls {
			if im.Seen.Seen(u) {
				continue
			}
			im.Seen.Add(u)
			fresh = append(fresh, u)
		}
		urls = fresh
	}

	if len(urls) == 0 {
		return &Result{}, nil
	}

	concurrency := im.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan pageResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, pageURL := range urls {
			g.Go(func() error {
				resultCh <- im.processURL(gctx, i, pageURL)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in discovery order so recipes are stored the way the
	// sitemap listed them.
	results := make([]pageResult, total)
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			URL:       result.url,
			Error:     result.err,
		}
		switch {
		case result.err != nil:
			event.Type = ProgressFailed
		case result.skipped:
			event.Type = ProgressSkipped
		default:
			event.Type = ProgressImported
			event.Title = result.preview.Title
		}
		progress(event)
	}

	var res Result
	for _, result := range results {
		switch {
		case result.err != nil:
			res.Failed++
		case result.skipped:
			res.Skipped++
		default:
			if _, err := im.Recipes.CreateRecipe(ctx, result.preview, 1); err != nil {
				res.Failed++
				continue
			}
			res.Imported++
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &res, nil
}

// processURL fetches and extracts a single page.
func (im *Importer) processURL(ctx context.Context, position int, pageURL string) pageResult {
	result := pageResult{position: position, url: pageURL}

	if im.RateLimiter != nil {
		parsed, err := url.Parse(pageURL)
		if err != nil {
			result.err = err
			return result
		}
		if err := im.RateLimiter.Wait(ctx, parsed.Hostname()); err != nil {
			result.err = err
			return result
		}
	}

	delays := im.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	markup, err := FetchWithRetryDelays(ctx, pageURL, im.Fetcher.Fetch, nil, delays)
	if err != nil {
		result.err = err
		return result
	}

	preview, err := im.Extractor.Extract(markup, pageURL)
	if err != nil {
		result.err = err
		return result
	}

	if len(preview.Ingredients) == 0 {
		result.skipped = true
		return result
	}

	if im.Describer != nil && preview.Description == "" {
		if desc, err := im.Describer.Describe(markup); err == nil {
			preview.Description = desc
		}
	}

	result.preview = preview
	return result
}

// TruncateURL shortens a URL for display, keeping the end which is more
// informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}
