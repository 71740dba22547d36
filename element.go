package pagelens

// Category identifies a class of extracted UI element. Each category has
// its own extraction rules and its own uniqueness-resolution configuration,
// but all categories share the Element shape and the resolution algorithm.
type Category string

// The closed set of extraction categories.
const (
	CategoryHeadings   Category = "headings"
	CategoryParagraphs Category = "paragraphs"
	CategoryLinks      Category = "links"
	CategoryButtons    Category = "buttons"
	CategoryImages     Category = "images_and_logos"
	CategoryIcons      Category = "icons"
	CategoryForms      Category = "forms"
	CategoryLandmarks  Category = "semantic_elements"
)

// NodeSummary is a compact description of a node near an extracted element:
// its parent, an ancestor, a sibling, or a direct child. ARIA state is
// captured so consumers can tell when reaching the element requires prior
// interaction (expanding an accordion, opening a menu).
type NodeSummary struct {
	Tag            string   `json:"tag"`
	ID             string   `json:"id,omitempty"`
	Classes        []string `json:"classes,omitempty"`
	Role           string   `json:"role,omitempty"`
	AriaLabel      string   `json:"ariaLabel,omitempty"`
	AriaExpanded   string   `json:"ariaExpanded,omitempty"`
	AriaControls   string   `json:"ariaControls,omitempty"`
	AriaLabelledBy string   `json:"ariaLabelledby,omitempty"`
	Text           string   `json:"text,omitempty"`
}

// UniquenessContext records the minimal extra context that distinguishes an
// element from others sharing its primary identifier. It is absent until
// assigned by Resolve, and assigned only when extra context was needed.
type UniquenessContext struct {
	Level string `json:"level"`
	Value string `json:"value"`
}

// Element represents one extracted UI element with its identity attributes
// and a bounded window of surrounding DOM context.
//
// Attribute fields use the empty string for "absent": empty attribute
// values are normalized away at extraction time, so "" never participates
// in uniqueness grouping as a real value.
type Element struct {
	Tag       string   `json:"tag"`
	Text      string   `json:"text,omitempty"`
	Snippet   string   `json:"textSnippet,omitempty"`
	ID        string   `json:"id,omitempty"`
	Classes   []string `json:"classes,omitempty"`
	Name      string   `json:"name,omitempty"`
	Type      string   `json:"type,omitempty"`
	Href      string   `json:"href,omitempty"`
	Src       string   `json:"src,omitempty"`
	Alt       string   `json:"alt,omitempty"`
	AriaLabel string   `json:"ariaLabel,omitempty"`
	Title     string   `json:"title,omitempty"`
	Role      string   `json:"role,omitempty"`

	// LinkType is set on link records from the link's DOM context; see
	// ClassifyLink.
	LinkType LinkType `json:"linkType,omitempty"`

	// Category-specific flags.
	IsExternal    bool   `json:"isExternalLink,omitempty"`
	ExternalPopup bool   `json:"externalLinkPopup,omitempty"`
	ContainsIcon  bool   `json:"containsIcon,omitempty"`
	IsLikelyLogo  bool   `json:"isLikelyLogo,omitempty"`
	IsClickable   bool   `json:"isClickable,omitempty"`
	ParentHref    string `json:"parentHref,omitempty"`

	// Surrounding DOM context. Ancestors are ordered nearest first,
	// root-most last. Sibling windows hold at most three entries each.
	Parent               *NodeSummary  `json:"parent,omitempty"`
	Ancestors            []NodeSummary `json:"ancestors,omitempty"`
	PrevSiblings         []NodeSummary `json:"prevSiblings,omitempty"`
	NextSiblings         []NodeSummary `json:"nextSiblings,omitempty"`
	PrevSiblingText      string        `json:"prevSiblingText,omitempty"`
	NextSiblingText      string        `json:"nextSiblingText,omitempty"`
	Children             []NodeSummary `json:"children,omitempty"`
	InteractiveAncestors []NodeSummary `json:"interactiveAncestors,omitempty"`

	// SequentialIndex is the 0-based position among elements of the same
	// category, in document order. Unique and monotonically increasing
	// within a category.
	SequentialIndex int `json:"sequentialIndex"`

	// Uniqueness is set by Resolve when the element needed extra context
	// beyond its primary identifier to be uniquely describable. Elements
	// that are unique by primary identifier, or irreducibly ambiguous,
	// carry no uniqueness context.
	Uniqueness *UniquenessContext `json:"uniquenessContext,omitempty"`
}

// FormField describes one non-hidden input field of a form.
type FormField struct {
	// Identifier is a human phrase naming the field, chosen from its
	// label, placeholder, aria-label, name, or id, in that order.
	Identifier string `json:"identifier"`
	Tag        string `json:"tag"`
	Type       string `json:"type"`
	Name       string `json:"name,omitempty"`
	ID         string `json:"id,omitempty"`
	Required   bool   `json:"required"`
}

// SubmitButton describes a form's submit control.
type SubmitButton struct {
	Text       string `json:"text"`
	Identifier string `json:"identifier"`
	Tag        string `json:"tag"`
	ID         string `json:"id,omitempty"`
}

// Form represents an extracted form with at least one non-hidden input
// field and a discoverable submit control.
type Form struct {
	// Identifier is a best-effort human identifier for the form, chosen
	// by a fixed priority order (aria-label, id, framework form-id
	// attribute, legend, internal heading, preceding heading, login
	// heuristic, positional fallback).
	Identifier      string       `json:"formIdentifier"`
	ID              string       `json:"id,omitempty"`
	Action          string       `json:"action,omitempty"`
	Method          string       `json:"method"`
	Inputs          []FormField  `json:"inputs"`
	Submit          *SubmitButton `json:"submitButton"`
	SequentialIndex int          `json:"sequentialIndex"`
}

// Landmark is an aggregate structural fact: how many times a semantic
// sectioning tag (header, footer, nav, ...) occurs on the page.
type Landmark struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// PageElements holds every extracted element of a page grouped by
// category. Empty categories are omitted from JSON output.
type PageElements struct {
	Headings   []*Element  `json:"headings,omitempty"`
	Paragraphs []*Element  `json:"paragraphs,omitempty"`
	Links      []*Element  `json:"links,omitempty"`
	Buttons    []*Element  `json:"buttons,omitempty"`
	Images     []*Element  `json:"images_and_logos,omitempty"`
	Icons      []*Element  `json:"icons,omitempty"`
	Forms      []*Form     `json:"forms,omitempty"`
	Landmarks  []*Landmark `json:"semantic_elements,omitempty"`
}

// ByCategory returns the element categories that participate in uniqueness
// resolution, keyed by category name. Forms and landmarks are excluded:
// forms carry their own identifier chain and landmarks are aggregates.
func (p *PageElements) ByCategory() map[Category][]*Element {
	m := make(map[Category][]*Element)
	if len(p.Headings) > 0 {
		m[CategoryHeadings] = p.Headings
	}
	if len(p.Paragraphs) > 0 {
		m[CategoryParagraphs] = p.Paragraphs
	}
	if len(p.Links) > 0 {
		m[CategoryLinks] = p.Links
	}
	if len(p.Buttons) > 0 {
		m[CategoryButtons] = p.Buttons
	}
	if len(p.Images) > 0 {
		m[CategoryImages] = p.Images
	}
	if len(p.Icons) > 0 {
		m[CategoryIcons] = p.Icons
	}
	return m
}

// Total returns the number of records across all categories.
func (p *PageElements) Total() int {
	n := len(p.Headings) + len(p.Paragraphs) + len(p.Links) +
		len(p.Buttons) + len(p.Images) + len(p.Icons)
	n += len(p.Forms)
	n += len(p.Landmarks)
	return n
}

// ResolveAll runs uniqueness resolution over every resolvable category
// using the supplied per-category configurations. Categories without a
// configuration are left untouched.
func (p *PageElements) ResolveAll(configs map[Category]CategoryConfig) {
	for category, elements := range p.ByCategory() {
		if cfg, ok := configs[category]; ok {
			Resolve(elements, cfg)
		}
	}
}
