package main

import (
	"fmt"
	"regexp"

	foodrun "github.com/morrisxelijah/food-run"
	"github.com/morrisxelijah/food-run/crawl"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	// Compile filters early so a bad pattern fails before any fetching.
	var urlFilter *foodrun.URLFilter
	if len(c.Filter) > 0 {
		urlFilter = &foodrun.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d URLs\n", event.Total)
		case crawl.ProgressImported:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, event.Title)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] failed %s: %v\n",
				event.Completed, event.Total, crawl.TruncateURL(event.URL, 60), event.Error)
		}
	}

	result, err := deps.Importer.ImportSite(deps.Ctx, c.URL, urlFilter, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error importing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d recipes (%d skipped, %d failed)\n",
		result.Imported, result.Skipped, result.Failed)
	return nil
}
