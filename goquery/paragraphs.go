package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagelens/pagelens"
	"golang.org/x/net/html"
)

// minParagraphRunes is the minimum text length for a paragraph to
// qualify; shorter paragraphs are almost always layout filler.
const minParagraphRunes = 10

// snippetRunes bounds the stored paragraph text snippet.
const snippetRunes = 100

// extractParagraphs collects substantive paragraphs with the flat
// parent and sibling-text context used for disambiguation.
func extractParagraphs(doc *goquery.Document, b *budget) []*pagelens.Element {
	var out []*pagelens.Element
	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if b.exhausted() {
			return false
		}
		if insideInteractive(sel) || headingOnlyChild(sel) {
			return true
		}
		text := cleanText(sel)
		if utf8.RuneCountInString(text) <= minParagraphRunes {
			return true
		}
		out = append(out, &pagelens.Element{
			Tag:             "p",
			Snippet:         snippet(text, snippetRunes),
			ID:              attr(sel, "id"),
			Classes:         classList(sel),
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

// insideInteractive reports whether the paragraph's immediate parent is
// a link or button; such text belongs to the parent's own category.
func insideInteractive(sel *goquery.Selection) bool {
	parent := sel.Parent()
	if parent.Length() == 0 {
		return false
	}
	switch tagName(parent) {
	case "a", "button":
		return true
	}
	return strings.EqualFold(attr(parent, "role"), "button")
}

// headingOnlyChild reports whether the paragraph's only meaningful child
// is a heading; its content is owned by the headings category.
func headingOnlyChild(sel *goquery.Selection) bool {
	if len(sel.Nodes) == 0 {
		return false
	}
	var only *html.Node
	for n := sel.Nodes[0].FirstChild; n != nil; n = n.NextSibling {
		switch n.Type {
		case html.TextNode:
			if strings.TrimSpace(n.Data) == "" {
				continue
			}
		case html.ElementNode:
		default:
			continue
		}
		if only != nil {
			return false
		}
		only = n
	}
	return only != nil && only.Type == html.ElementNode && isHeadingTag(only.Data)
}

func isHeadingTag(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// snippet truncates text to limit runes, marking truncation with an
// ellipsis.
func snippet(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
