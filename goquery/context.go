package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagelens/pagelens"
	"golang.org/x/net/html"
)

// attr returns the trimmed attribute value, or "" when absent.
func attr(sel *goquery.Selection, name string) string {
	v, _ := sel.Attr(name)
	return strings.TrimSpace(v)
}

// classList splits the class attribute into tokens.
func classList(sel *goquery.Selection) []string {
	return strings.Fields(attr(sel, "class"))
}

// cleanText returns the selection's text content with all whitespace
// runs collapsed to single spaces.
func cleanText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

func tagName(sel *goquery.Selection) string { return goquery.NodeName(sel) }

// parentSummary captures the fields used for ancestor context, including
// the ARIA state that drives link classification.
func parentSummary(sel *goquery.Selection) pagelens.NodeSummary {
	return pagelens.NodeSummary{
		Tag:            tagName(sel),
		ID:             attr(sel, "id"),
		Classes:        classList(sel),
		Role:           attr(sel, "role"),
		AriaLabel:      attr(sel, "aria-label"),
		AriaExpanded:   attr(sel, "aria-expanded"),
		AriaControls:   attr(sel, "aria-controls"),
		AriaLabelledBy: attr(sel, "aria-labelledby"),
	}
}

// siblingSummary captures the fields used for sibling and child context.
func siblingSummary(sel *goquery.Selection) pagelens.NodeSummary {
	return pagelens.NodeSummary{
		Tag:     tagName(sel),
		ID:      attr(sel, "id"),
		Classes: classList(sel),
		Role:    attr(sel, "role"),
		Text:    cleanText(sel),
	}
}

// briefParent is the compact parent summary used by the flat categories
// (paragraphs, buttons, images, icons).
func briefParent(sel *goquery.Selection) *pagelens.NodeSummary {
	parent := sel.Parent()
	if parent.Length() == 0 {
		return nil
	}
	return &pagelens.NodeSummary{
		Tag:     tagName(parent),
		ID:      attr(parent, "id"),
		Classes: classList(parent),
	}
}

// isInteractive reports whether an ancestor is user-actionable, either by
// tag or by ARIA role.
func isInteractive(sel *goquery.Selection) bool {
	switch tagName(sel) {
	case "a", "button":
		return true
	}
	switch attr(sel, "role") {
	case "button", "tab", "menuitem":
		return true
	}
	return false
}

// maxSiblingWindow bounds the captured sibling context on each side.
const maxSiblingWindow = 3

// captureDOMContext fills the element's parent, ancestor, sibling, child,
// and interactive-ancestor context from its position in the document.
// Ancestors run nearest-first; interactive ancestors keep that order so
// the closest container decides classification.
func captureDOMContext(el *pagelens.Element, sel *goquery.Selection) {
	sel.Parents().Each(func(i int, p *goquery.Selection) {
		info := parentSummary(p)
		if i == 0 {
			parent := info
			el.Parent = &parent
		} else {
			el.Ancestors = append(el.Ancestors, info)
		}
		if isInteractive(p) {
			el.InteractiveAncestors = append(el.InteractiveAncestors, info)
		}
	})

	for s := sel.Prev(); s.Length() > 0 && len(el.PrevSiblings) < maxSiblingWindow; s = s.Prev() {
		el.PrevSiblings = append(el.PrevSiblings, siblingSummary(s))
	}
	for s := sel.Next(); s.Length() > 0 && len(el.NextSiblings) < maxSiblingWindow; s = s.Next() {
		el.NextSiblings = append(el.NextSiblings, siblingSummary(s))
	}

	sel.Children().Each(func(_ int, c *goquery.Selection) {
		el.Children = append(el.Children, siblingSummary(c))
	})
}

// prevSiblingText prefers an immediately adjacent raw text node, then
// falls back to the nearest previous element sibling's text.
func prevSiblingText(sel *goquery.Selection) string {
	if t := adjacentText(sel, false); t != "" {
		return t
	}
	if prev := sel.Prev(); prev.Length() > 0 {
		return cleanText(prev)
	}
	return ""
}

// nextSiblingText is the forward counterpart of prevSiblingText.
func nextSiblingText(sel *goquery.Selection) string {
	if t := adjacentText(sel, true); t != "" {
		return t
	}
	if next := sel.Next(); next.Length() > 0 {
		return cleanText(next)
	}
	return ""
}

// adjacentText returns the immediately adjacent sibling node's content
// when that node is a non-empty raw text node.
func adjacentText(sel *goquery.Selection, forward bool) string {
	if len(sel.Nodes) == 0 {
		return ""
	}
	n := sel.Nodes[0].PrevSibling
	if forward {
		n = sel.Nodes[0].NextSibling
	}
	if n != nil && n.Type == html.TextNode {
		return strings.Join(strings.Fields(n.Data), " ")
	}
	return ""
}

// resolveRef resolves a possibly relative reference against the page
// base URL. Unparseable references pass through unchanged.
func resolveRef(base *url.URL, ref string) string {
	if base == nil || ref == "" {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}
