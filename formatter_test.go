package pagelens_test

import (
	"testing"

	"github.com/pagelens/pagelens"
	"github.com/stretchr/testify/assert"
)

func TestFormatScan(t *testing.T) {
	t.Parallel()

	scan := &pagelens.Scan{
		URL:   "https://example.com",
		Title: "Example",
		Elements: &pagelens.PageElements{
			Links: []*pagelens.Element{
				{Tag: "a", Text: "Docs", Uniqueness: &pagelens.UniquenessContext{Level: "href", Value: "docs"}},
				{Tag: "a", Text: "Blog"},
			},
			Landmarks: []*pagelens.Landmark{{Tag: "header", Count: 1}},
		},
	}

	out := pagelens.FormatScan(scan)

	assert.Contains(t, out, "## Scan: Example")
	assert.Contains(t, out, "links: 2 (1 disambiguated)")
	assert.Contains(t, out, "semantic_elements: 1")
}

func TestDescribeElement(t *testing.T) {
	t.Parallel()

	t.Run("uses text and uniqueness context", func(t *testing.T) {
		t.Parallel()

		el := &pagelens.Element{
			Tag:        "a",
			Text:       "Docs",
			Uniqueness: &pagelens.UniquenessContext{Level: "href", Value: "docs/intro"},
		}
		assert.Equal(t, `the a "Docs" (href: docs/intro)`, pagelens.DescribeElement(el))
	})

	t.Run("falls back to sequential index", func(t *testing.T) {
		t.Parallel()

		el := &pagelens.Element{Tag: "span", SequentialIndex: 4}
		assert.Equal(t, "the span element #4", pagelens.DescribeElement(el))
	})
}
