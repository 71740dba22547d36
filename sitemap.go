package pagelens

import (
	"context"
	"regexp"
)

// SitemapService discovers the pages of a site ahead of a site-wide scan.
type SitemapService interface {
	// DiscoverURLs returns the page URLs listed in the site's sitemap.
	// Sitemap locations are read from robots.txt first, with /sitemap.xml
	// as the fallback, and sitemap indexes are followed recursively.
	//
	// A nil filter returns every discovered URL.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter restricts which discovered URLs are scanned.
type URLFilter struct {
	// Include patterns. When non-empty, a URL must match at least one.
	Include []*regexp.Regexp

	// Exclude patterns, applied after Include. A URL matching any of
	// them is dropped.
	Exclude []*regexp.Regexp
}

// Match reports whether the URL passes the filter. A nil filter passes
// everything.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}
	if len(f.Include) > 0 && !matchesAny(f.Include, url) {
		return false
	}
	return !matchesAny(f.Exclude, url)
}

func matchesAny(patterns []*regexp.Regexp, url string) bool {
	for _, re := range patterns {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}
