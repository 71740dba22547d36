package pagelens

import (
	"fmt"
	"strings"
)

// categoryOrder fixes the display order of categories.
var categoryOrder = []Category{
	CategoryHeadings, CategoryParagraphs, CategoryLinks, CategoryButtons,
	CategoryImages, CategoryIcons, CategoryForms, CategoryLandmarks,
}

// FormatScan formats a scan summary for display: the URL, per-category
// record counts, and how many records carry uniqueness context.
func FormatScan(s *Scan) string {
	var sb strings.Builder
	header := s.Title
	if header == "" {
		header = s.URL
	}
	fmt.Fprintf(&sb, "## Scan: %s\n", header)
	if s.Title != "" {
		fmt.Fprintf(&sb, "URL: %s\n", s.URL)
	}

	if s.Elements == nil {
		return sb.String()
	}

	byCategory := s.Elements.ByCategory()
	for _, category := range categoryOrder {
		switch category {
		case CategoryForms:
			if n := len(s.Elements.Forms); n > 0 {
				fmt.Fprintf(&sb, "%s: %d\n", category, n)
			}
		case CategoryLandmarks:
			if n := len(s.Elements.Landmarks); n > 0 {
				fmt.Fprintf(&sb, "%s: %d\n", category, n)
			}
		default:
			elements := byCategory[category]
			if len(elements) == 0 {
				continue
			}
			annotated := 0
			for _, el := range elements {
				if el.Uniqueness != nil {
					annotated++
				}
			}
			fmt.Fprintf(&sb, "%s: %d (%d disambiguated)\n", category, len(elements), annotated)
		}
	}
	return sb.String()
}

// DescribeElement builds a short human phrase for one element, using its
// primary identity and uniqueness context when present.
func DescribeElement(el *Element) string {
	label := el.Text
	if label == "" {
		label = el.AriaLabel
	}
	if label == "" {
		label = el.Alt
	}
	if label == "" {
		label = el.Snippet
	}

	var sb strings.Builder
	if label != "" {
		fmt.Fprintf(&sb, "the %s %q", el.Tag, label)
	} else {
		fmt.Fprintf(&sb, "the %s element #%d", el.Tag, el.SequentialIndex)
	}
	if el.Uniqueness != nil {
		fmt.Fprintf(&sb, " (%s: %s)", el.Uniqueness.Level, el.Uniqueness.Value)
	}
	return sb.String()
}
