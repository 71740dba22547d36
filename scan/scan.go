// Package scan orchestrates page scanning: fetching rendered HTML,
// extracting and disambiguating elements, building the content digest,
// generating scenarios, and persisting the result.
package scan

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/pagelens/pagelens"
	"golang.org/x/sync/errgroup"
)

// Scanner coordinates the collaborators of a scan. Fetcher and Elements
// are required; everything else is optional and skipped when nil.
type Scanner struct {
	Fetcher     pagelens.Fetcher
	Elements    pagelens.ElementExtractor
	Content     pagelens.ContentExtractor
	Converter   pagelens.Converter
	Generator   pagelens.ScenarioGenerator
	Scans       pagelens.ScanService
	Sitemaps    pagelens.SitemapService
	Visited     pagelens.VisitedFilter
	RateLimiter pagelens.DomainLimiter
	Configs     map[pagelens.Category]pagelens.CategoryConfig
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a site scan.
type Result struct {
	Scanned  int
	Failed   int
	Elements int
}

// ProgressEvent reports progress during a site scan.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting site scan progress.
type ProgressFunc func(event ProgressEvent)

// ScanURL scans a single page and returns the persisted scan record.
// A failed fetch is folded into the fetch sentinel so the extractor
// reports it as EUNAVAILABLE, mirroring how unreachable pages surface
// to the consumer.
func (s *Scanner) ScanURL(ctx context.Context, pageURL string) (*pagelens.Scan, error) {
	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, domainOf(pageURL)); err != nil {
			return nil, err
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, pageURL, s.Fetcher.Fetch, nil, delays)
	if err != nil {
		html = pagelens.FetchSentinel(err)
	}

	elements, err := s.Elements.Extract(html, pageURL)
	if err != nil {
		return nil, err
	}

	configs := s.Configs
	if configs == nil {
		configs = pagelens.DefaultConfigs()
	}
	elements.ResolveAll(configs)

	scan := &pagelens.Scan{
		URL:      pageURL,
		Elements: elements,
	}

	// The digest is best effort. Element extraction succeeding is what
	// makes a scan; a page whose prose resists content extraction still
	// yields a useful record.
	if s.Content != nil {
		if extracted, err := s.Content.Extract(html); err == nil {
			scan.Title = extracted.Title
			if s.Converter != nil && extracted.ContentHTML != "" {
				if digest, err := s.Converter.Convert(extracted.ContentHTML); err == nil {
					scan.Digest = digest
				}
			}
		}
	}

	if s.Generator != nil {
		scenarios, err := s.Generator.GenerateScenarios(ctx, pageURL, elements)
		if err != nil {
			return nil, fmt.Errorf("generating scenarios: %w", err)
		}
		scan.Scenarios = scenarios
	}

	if s.Scans != nil {
		if err := s.Scans.CreateScan(ctx, scan); err != nil {
			return nil, fmt.Errorf("persisting scan: %w", err)
		}
	}

	return scan, nil
}

// scanResult holds the outcome of scanning a single URL during a site
// scan.
type scanResult struct {
	url      string
	elements int
	err      error
}

// ScanSite discovers a site's pages through its sitemap and scans each
// one. The progress callback, if provided, receives events as the scan
// proceeds.
func (s *Scanner) ScanSite(ctx context.Context, baseURL string, filter *pagelens.URLFilter, progress ProgressFunc) (*Result, error) {
	if s.Sitemaps == nil {
		return nil, pagelens.Errorf(pagelens.EINVALID, "sitemap service required for site scans")
	}

	urls, err := s.Sitemaps.DiscoverURLs(ctx, baseURL, filter)
	if err != nil {
		return nil, fmt.Errorf("sitemap discovery: %w", err)
	}

	// Drop URLs an earlier scan already covered.
	if s.Visited != nil {
		fresh := urls[:0]
		for _, u := range urls {
			if s.Visited.Test(u) {
				continue
			}
			s.Visited.Add(u)
			fresh = append(fresh, u)
		}
		urls = fresh
	}

	if len(urls) == 0 {
		return &Result{}, nil
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan scanResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, u := range urls {
			g.Go(func() error {
				scan, err := s.ScanURL(gctx, u)
				r := scanResult{url: u, err: err}
				if err == nil {
					r.elements = scan.Elements.Total()
				}
				resultCh <- r
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var result Result
	for r := range resultCh {
		completed.Add(1)
		if r.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       r.url,
					Error:     r.err,
				})
			}
			continue
		}

		result.Scanned++
		result.Elements += r.elements
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       r.url,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &result, nil
}

// domainOf extracts the host for rate limiting; unparseable URLs share
// one bucket.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
