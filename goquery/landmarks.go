package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/pagelens/pagelens"
)

// semanticTags is the fixed set of landmark tags reported as per-tag
// aggregate counts.
var semanticTags = []string{"header", "footer", "nav", "main", "section", "article", "aside"}

func extractLandmarks(doc *goquery.Document, b *budget) []*pagelens.Landmark {
	var out []*pagelens.Landmark
	for _, tag := range semanticTags {
		if b.exhausted() {
			break
		}
		if n := doc.Find(tag).Length(); n > 0 {
			out = append(out, &pagelens.Landmark{Tag: tag, Count: n})
			b.take()
		}
	}
	return out
}
