package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagelens/pagelens"
)

// extractImages collects images with a src, resolving URLs against the
// page base and flagging clickable images and likely logos.
func extractImages(doc *goquery.Document, base *url.URL, b *budget) []*pagelens.Element {
	var out []*pagelens.Element
	doc.Find("img").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if b.exhausted() {
			return false
		}
		src := attr(sel, "src")
		if src == "" {
			return true
		}
		alt := attr(sel, "alt")
		el := &pagelens.Element{
			Tag:             "img",
			Alt:             alt,
			Src:             resolveRef(base, src),
			ID:              attr(sel, "id"),
			Classes:         classList(sel),
			Parent:          briefParent(sel),
			PrevSiblingText: prevSiblingText(sel),
			NextSiblingText: nextSiblingText(sel),
			SequentialIndex: len(out),
		}
		if parent := sel.Parent(); tagName(parent) == "a" {
			el.IsClickable = true
			if href := attr(parent, "href"); href != "" {
				el.ParentHref = resolveRef(base, href)
			}
		}
		el.IsLikelyLogo = strings.Contains(strings.ToLower(alt), "logo") ||
			sel.ParentsFiltered("header").Length() > 0
		out = append(out, el)
		b.take()
		return true
	})
	return out
}
