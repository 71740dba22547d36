package pagelens

import "context"

// VisitedFilter tracks URLs already scanned during a site-wide scan.
type VisitedFilter interface {
	// Add marks a URL as visited.
	Add(url string)

	// Test returns true if the URL might have been visited.
	// False positives are allowed; false negatives are not.
	Test(url string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
