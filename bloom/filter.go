// Package bloom tracks visited URLs during site-wide scans using a
// Bloom filter.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/pagelens/pagelens"
)

// Ensure Filter implements pagelens.VisitedFilter at compile time.
var _ pagelens.VisitedFilter = (*Filter)(nil)

// Filter remembers which page URLs a scan has already processed.
// A positive Test may rarely be a false positive, which at worst skips a
// page; a page is never scanned twice.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Filter sized for n expected URLs with the
// given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add marks a URL as visited.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL might have been visited.
// False positives are possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of visited URLs.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
