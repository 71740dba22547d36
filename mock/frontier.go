package mock

import (
	"context"

	"github.com/pagelens/pagelens"
)

var _ pagelens.VisitedFilter = (*VisitedFilter)(nil)

// VisitedFilter is a mock implementation of pagelens.VisitedFilter.
type VisitedFilter struct {
	AddFn  func(url string)
	TestFn func(url string) bool
}

func (f *VisitedFilter) Add(url string) {
	f.AddFn(url)
}

func (f *VisitedFilter) Test(url string) bool {
	return f.TestFn(url)
}

var _ pagelens.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of pagelens.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
