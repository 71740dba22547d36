package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/pagelens/pagelens"
)

// headingSelector matches all six heading levels.
const headingSelector = "h1, h2, h3, h4, h5, h6"

// extractHeadings collects headings with non-empty text, capturing full
// DOM context so consumers can see enclosing interactive containers.
func extractHeadings(doc *goquery.Document, b *budget) []*pagelens.Element {
	var out []*pagelens.Element
	doc.Find(headingSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if b.exhausted() {
			return false
		}
		text := cleanText(sel)
		if text == "" {
			return true
		}
		el := &pagelens.Element{
			Tag:             tagName(sel),
			Text:            text,
			ID:              attr(sel, "id"),
			Classes:         classList(sel),
			AriaLabel:       attr(sel, "aria-label"),
			Role:            attr(sel, "role"),
			SequentialIndex: len(out),
		}
		captureDOMContext(el, sel)
		out = append(out, el)
		b.take()
		return true
	})
	return out
}
