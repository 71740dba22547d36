package pagelens

// DefaultMaxElements bounds the total number of records extracted from one
// page. The budget is a resource-protection cutoff, not an error: when it
// is reached, extraction stops emitting and returns what was collected.
const DefaultMaxElements = 5000

// ElementExtractor walks a page's rendered markup once and produces, per
// category, an ordered sequence of element records with surrounding DOM
// context.
type ElementExtractor interface {
	// Extract parses the markup and returns the extracted elements.
	// The baseURL resolves relative links and image sources to absolute
	// form. If markup is a fetch-failure sentinel (see IsFetchSentinel),
	// Extract returns an EUNAVAILABLE error carrying the sentinel and no
	// category data. Missing or malformed attributes degrade to absent
	// fields, never to errors.
	Extract(markup string, baseURL string) (*PageElements, error)
}

// ExtractResult holds the main content extracted from an HTML page,
// used to build a scan report digest.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML, with boilerplate
	// (nav, footer, sidebar, ads) removed.
	ContentHTML string
}

// ContentExtractor extracts main content from HTML pages, removing
// boilerplate.
type ContentExtractor interface {
	Extract(html string) (*ExtractResult, error)
}
