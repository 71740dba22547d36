package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagelens/pagelens"
)

// extractLinks collects anchors that carry an href, with full DOM
// context so link classification can inspect enclosing menus, tabs, and
// navigation regions.
func extractLinks(doc *goquery.Document, b *budget) []*pagelens.Element {
	var out []*pagelens.Element
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if b.exhausted() {
			return false
		}
		href, _ := sel.Attr("href")
		el := &pagelens.Element{
			Tag:             "a",
			Text:            cleanText(sel),
			ID:              attr(sel, "id"),
			Classes:         classList(sel),
			AriaLabel:       attr(sel, "aria-label"),
			Role:            attr(sel, "role"),
			Href:            strings.TrimSpace(href),
			SequentialIndex: len(out),
		}
		// External-link markers are injected by the rendering pass.
		_, external := sel.Attr("data-external-link-popup")
		_, whitelisted := sel.Attr("data-external-skipped-whitelisted")
		el.IsExternal = external
		el.ExternalPopup = external && !whitelisted
		captureDOMContext(el, sel)
		el.LinkType = pagelens.ClassifyLink(el)
		out = append(out, el)
		b.take()
		return true
	})
	return out
}
