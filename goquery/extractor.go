// Package goquery implements element extraction on top of a parsed HTML
// document tree.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagelens/pagelens"
)

// Ensure Extractor implements pagelens.ElementExtractor.
var _ pagelens.ElementExtractor = (*Extractor)(nil)

// Extractor walks rendered page markup and collects categorized element
// records with the surrounding DOM context needed to tell lookalike
// elements apart.
type Extractor struct {
	maxElements int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMaxElements overrides the global element budget shared across all
// categories.
func WithMaxElements(n int) Option {
	return func(e *Extractor) { e.maxElements = n }
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{maxElements: pagelens.DefaultMaxElements}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// budget bounds the total number of records emitted across categories.
// Extraction stops mid-category once the limit is reached; categories
// earlier in the pass order win the remaining headroom.
type budget struct {
	limit int
	used  int
}

func (b *budget) take()           { b.used++ }
func (b *budget) exhausted() bool { return b.used >= b.limit }

// Extract parses the markup and collects element records per category.
// Markup carrying a fetch failure sentinel short-circuits with an
// EUNAVAILABLE error before any parsing happens.
func (e *Extractor) Extract(markup string, baseURL string) (*pagelens.PageElements, error) {
	if pagelens.IsFetchSentinel(markup) {
		return nil, pagelens.Errorf(pagelens.EUNAVAILABLE, "%s", markup)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EINVALID, "failed to parse HTML: %v", err)
	}

	var base *url.URL
	if baseURL != "" {
		base, err = url.Parse(baseURL)
		if err != nil {
			return nil, pagelens.Errorf(pagelens.EINVALID, "invalid base URL %q: %v", baseURL, err)
		}
	}

	// Scripts and styles contribute no UI elements and pollute text
	// extraction.
	doc.Find("script, style").Remove()

	b := &budget{limit: e.maxElements}

	return &pagelens.PageElements{
		Headings:   extractHeadings(doc, b),
		Paragraphs: extractParagraphs(doc, b),
		Links:      extractLinks(doc, b),
		Buttons:    extractButtons(doc, b),
		Images:     extractImages(doc, base, b),
		Icons:      extractIcons(doc, b),
		Forms:      extractForms(doc, b),
		Landmarks:  extractLandmarks(doc, b),
	}, nil
}
