package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagelens/pagelens"
)

// extractIcons collects icon-like i/span elements, then standalone svg
// icons. Sibling text here considers only raw adjacent text nodes; an
// icon's meaning usually comes from the word printed right next to it.
func extractIcons(doc *goquery.Document, b *budget) []*pagelens.Element {
	var out []*pagelens.Element

	doc.Find("i, span").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if b.exhausted() {
			return false
		}
		classes := classList(sel)
		ariaLabel := attr(sel, "aria-label")
		role := attr(sel, "role")
		text := cleanText(sel)
		if !qualifiesAsIcon(ariaLabel, role, text, classes) {
			return true
		}
		out = append(out, &pagelens.Element{
			Tag:             tagName(sel),
			Text:            text,
			Classes:         classes,
			AriaLabel:       ariaLabel,
			Role:            role,
			Title:           attr(sel, "title"),
			Parent:          briefParent(sel),
			PrevSiblingText: adjacentText(sel, false),
			NextSiblingText: adjacentText(sel, true),
			SequentialIndex: len(out),
		})
		b.take()
		return true
	})

	// Svgs nested in a link or button are already represented by that
	// element and skipped.
	doc.Find("svg").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if b.exhausted() {
			return false
		}
		ariaLabel := attr(sel, "aria-label")
		role := attr(sel, "role")
		title := cleanText(sel.Find("title").First())
		if role != "img" && ariaLabel == "" && title == "" {
			return true
		}
		if sel.ParentsFiltered("a, button").Length() > 0 {
			return true
		}
		out = append(out, &pagelens.Element{
			Tag:             "svg",
			Role:            role,
			AriaLabel:       ariaLabel,
			Title:           title,
			Classes:         classList(sel),
			Parent:          briefParent(sel),
			PrevSiblingText: adjacentText(sel, false),
			NextSiblingText: adjacentText(sel, true),
			SequentialIndex: len(out),
		})
		b.take()
		return true
	})

	return out
}

// qualifiesAsIcon applies the i/span inclusion rules: an aria-label,
// role=img, an icon or logo class token, or an empty element that still
// carries classes.
func qualifiesAsIcon(ariaLabel, role, text string, classes []string) bool {
	if ariaLabel != "" || role == "img" {
		return true
	}
	for _, c := range classes {
		lc := strings.ToLower(c)
		if strings.Contains(lc, "icon") || strings.Contains(lc, "logo") {
			return true
		}
	}
	return text == "" && len(classes) > 0
}
