package main

import (
	"fmt"
	"regexp"

	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/scan"
)

// Run executes the site command.
func (c *SiteCmd) Run(deps *Dependencies) error {
	urlFilter, err := c.compileFilter(deps)
	if err != nil {
		return err
	}

	// Preview mode: show URLs without scanning
	if c.Preview {
		urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL, urlFilter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
			return err
		}
		for _, u := range urls {
			fmt.Fprintln(deps.Stdout, u)
		}
		return nil
	}

	if c.Concurrency > 0 {
		deps.Scanner.Concurrency = c.Concurrency
	}

	progress := func(event scan.ProgressEvent) {
		switch event.Type {
		case scan.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d URLs\n", event.Total)
		case scan.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case scan.ProgressFinished:
			// Summary printed after the scan completes
		}
	}

	result, err := deps.Scanner.ScanSite(deps.Ctx, c.URL, urlFilter, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error scanning: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Scanned %d pages (%d elements, %d failed)\n",
		result.Scanned, result.Elements, result.Failed)
	return nil
}

// compileFilter validates regex patterns early so a typo fails before any
// network work starts.
func (c *SiteCmd) compileFilter(deps *Dependencies) (*pagelens.URLFilter, error) {
	if len(c.Filter) == 0 && len(c.Exclude) == 0 {
		return nil, nil
	}

	urlFilter := &pagelens.URLFilter{}
	for _, pattern := range c.Filter {
		re, err := regexp.Compile(pattern)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
			return nil, err
		}
		urlFilter.Include = append(urlFilter.Include, re)
	}
	for _, pattern := range c.Exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: invalid exclude pattern %q: %v\n", pattern, err)
			return nil, err
		}
		urlFilter.Exclude = append(urlFilter.Exclude, re)
	}
	return urlFilter, nil
}
