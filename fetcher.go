package pagelens

import (
	"context"
	"fmt"
	"strings"
)

// FetchErrorPrefix marks a markup string that carries a fetch failure
// instead of rendered HTML. Extractors must detect it and short-circuit.
const FetchErrorPrefix = "Error fetching URL"

// Fetcher retrieves rendered markup from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content.
type Fetcher interface {
	// Fetch navigates to the URL, waits for the page to render, and
	// returns the rendered HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// FetchSentinel converts a fetch error into the sentinel markup string the
// extraction boundary understands.
func FetchSentinel(err error) string {
	return fmt.Sprintf("%s: %v", FetchErrorPrefix, err)
}

// IsFetchSentinel reports whether a markup string is a fetch-failure
// sentinel rather than HTML.
func IsFetchSentinel(markup string) bool {
	return strings.HasPrefix(markup, FetchErrorPrefix)
}
