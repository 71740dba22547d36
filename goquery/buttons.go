package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/pagelens/pagelens"
)

// buttonSelector matches explicit buttons, button-like inputs, and
// role=button elements.
const buttonSelector = `button, input[type="button"], input[type="submit"], input[type="reset"], [role="button"]`

// extractButtons collects standalone buttons. Buttons inside forms are
// owned by form extraction and skipped here.
func extractButtons(doc *goquery.Document, b *budget) []*pagelens.Element {
	var out []*pagelens.Element
	doc.Find(buttonSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if b.exhausted() {
			return false
		}
		if sel.Closest("form").Length() > 0 {
			return true
		}
		text := cleanText(sel)
		if text == "" {
			text = attr(sel, "value")
		}
		if text == "" {
			text = attr(sel, "aria-label")
		}
		containsIcon := sel.ChildrenFiltered("i, span, svg").Length() > 0
		if text == "" && !containsIcon {
			return true
		}
		btnType := attr(sel, "type")
		if btnType == "" {
			btnType = "button"
		}
		out = append(out, &pagelens.Element{
			Tag:             tagName(sel),
			Type:            btnType,
			Text:            text,
			ID:              attr(sel, "id"),
			Name:            attr(sel, "name"),
			Classes:         classList(sel),
			ContainsIcon:    containsIcon,
			Parent:          briefParent(sel),
			PrevSiblingText: prevSiblingText(sel),
			NextSiblingText: nextSiblingText(sel),
			SequentialIndex: len(out),
		})
		b.take()
		return true
	})
	return out
}
