package mock

import "github.com/pagelens/pagelens"

var _ pagelens.ElementExtractor = (*ElementExtractor)(nil)

// ElementExtractor is a mock implementation of pagelens.ElementExtractor.
type ElementExtractor struct {
	ExtractFn func(markup, baseURL string) (*pagelens.PageElements, error)
}

func (e *ElementExtractor) Extract(markup, baseURL string) (*pagelens.PageElements, error) {
	return e.ExtractFn(markup, baseURL)
}

var _ pagelens.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of pagelens.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(rawHTML string) (*pagelens.ExtractResult, error)
}

func (e *ContentExtractor) Extract(rawHTML string) (*pagelens.ExtractResult, error) {
	return e.ExtractFn(rawHTML)
}
