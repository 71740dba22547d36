package mock

import (
	"context"

	"github.com/pagelens/pagelens"
)

var _ pagelens.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of pagelens.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *pagelens.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *pagelens.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
