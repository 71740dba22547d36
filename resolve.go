package pagelens

import (
	"fmt"
	"strings"
)

// CategoryConfig configures uniqueness resolution for one category.
type CategoryConfig struct {
	// PrimaryKey names the field used to group elements before
	// disambiguation (e.g. "text", "text_snippet", "alt", "aria_label").
	PrimaryKey string

	// Hierarchy is the ordered list of context levels used to refine
	// ambiguous groups, most specific and human-meaningful first. A level
	// is a direct field name, a dotted path into the parent summary
	// ("parent.id"), or a composite derivation ("sibling_text",
	// "parent_classes", "parent_description", "href", "classes").
	Hierarchy []string
}

// DefaultConfigs returns the per-category resolution configurations.
// The hierarchy orderings are deliberate tie-breaks: own id before parent
// id before sibling text before class lists.
func DefaultConfigs() map[Category]CategoryConfig {
	return map[Category]CategoryConfig{
		CategoryParagraphs: {
			PrimaryKey: "text_snippet",
			Hierarchy: []string{
				"id", "parent.id", "parent_classes", "sibling_text",
				"parent_description", "classes",
			},
		},
		CategoryLinks: {
			PrimaryKey: "text",
			Hierarchy: []string{
				"id", "aria_label", "text", "href", "parent.id",
				"parent_classes", "sibling_text", "classes",
			},
		},
		CategoryHeadings: {
			PrimaryKey: "text",
			Hierarchy: []string{
				"id", "parent.id", "sibling_text", "parent_classes",
				"parent_description", "classes",
			},
		},
		CategoryImages: {
			PrimaryKey: "alt",
			Hierarchy: []string{
				"alt", "id", "src", "parent.id", "sibling_text",
				"parent_classes", "parent_description", "classes",
			},
		},
		CategoryIcons: {
			PrimaryKey: "aria_label",
			Hierarchy: []string{
				"aria_label", "title", "text", "parent.id", "sibling_text",
				"parent_description", "classes",
			},
		},
		CategoryButtons: {
			PrimaryKey: "text",
			Hierarchy: []string{
				"id", "text", "name", "type", "parent.id", "sibling_text",
				"parent_classes", "parent_description", "classes",
			},
		},
	}
}

// groupKey is a grouping value for one context level. Elements that lack a
// value at a level (ok=false) form their own subgroup, distinct from every
// real value.
type groupKey struct {
	ok    bool
	value string
}

// Resolve annotates every element that needs it with the minimal context
// that uniquely identifies it among elements sharing its primary value.
//
// Groups are refined one context level at a time: a subgroup of size one is
// resolved at that level, a larger subgroup carries forward to the next
// level. Elements still grouped after the hierarchy is exhausted are left
// unannotated; irreducible ambiguity is a valid terminal outcome. Elements
// whose primary value is already unique pass through untouched.
//
// Resolution mutates elements in place and never reorders them. It is
// deterministic: the same input and configuration produce the same
// annotations every run.
func Resolve(elements []*Element, cfg CategoryConfig) []*Element {
	// Initial grouping by primary key. Elements with no primary value
	// group together as well; the hierarchy may still split them.
	groups := make(map[groupKey][]*Element)
	var order []groupKey
	for _, el := range elements {
		key := keyFor(el, cfg.PrimaryKey)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], el)
	}

	for _, key := range order {
		group := groups[key]
		if len(group) == 1 {
			continue
		}
		resolveGroup(group, cfg)
	}
	return elements
}

// resolveGroup refines one ambiguous group through the context hierarchy.
func resolveGroup(group []*Element, cfg CategoryConfig) {
	ambiguous := group

	for _, level := range cfg.Hierarchy {
		if len(ambiguous) == 0 {
			break
		}

		subgroups := make(map[groupKey][]*Element)
		for _, el := range ambiguous {
			key := keyFor(el, level)
			subgroups[key] = append(subgroups[key], el)
		}

		var carry []*Element
		for _, el := range ambiguous {
			key := keyFor(el, level)
			if len(subgroups[key]) > 1 {
				carry = append(carry, el)
				continue
			}
			// Resolved at this level. An element resolved by lacking a
			// value others had gets no annotation; there is nothing to say.
			if !key.ok {
				continue
			}
			el.Uniqueness = resolvedContext(el, level, key.value, cfg.PrimaryKey)
		}
		ambiguous = carry
	}
	// Anything left is irreducibly ambiguous and stays unannotated.
}

// resolvedContext builds the annotation for an element resolved at the
// given level. When link-style resolution (primary key "text") succeeds at
// the "id" level, the href-derived context is reported instead when
// available, since a path is more informative to a reader than an id. The
// scope of this substitution is deliberately narrow.
func resolvedContext(el *Element, level, value, primaryKey string) *UniquenessContext {
	if level == "id" && primaryKey == "text" {
		if href, ok := contextValue(el, "href"); ok {
			return &UniquenessContext{Level: "href", Value: href}
		}
	}
	return &UniquenessContext{Level: level, Value: value}
}

func keyFor(el *Element, path string) groupKey {
	v, ok := contextValue(el, path)
	return groupKey{ok: ok, value: v}
}

// contextValue resolves a context-level name against an element. It
// returns ok=false when the value is missing or unreachable; the explicit
// no-value state still participates in grouping.
func contextValue(el *Element, path string) (string, bool) {
	switch path {
	case "sibling_text":
		// Prefer next-sibling text, fall back to previous.
		if el.NextSiblingText != "" {
			return el.NextSiblingText, true
		}
		return present(el.PrevSiblingText)
	case "parent_classes":
		if el.Parent != nil && len(el.Parent.Classes) > 0 {
			return strings.Join(el.Parent.Classes, " "), true
		}
		return "", false
	case "parent_description":
		return parentDescription(el.Parent)
	case "href":
		return present(hrefPath(el.Href))
	case "classes":
		if len(el.Classes) > 0 {
			return strings.Join(el.Classes, " "), true
		}
		return "", false
	}

	if field, isParent := strings.CutPrefix(path, "parent."); isParent {
		if el.Parent == nil {
			return "", false
		}
		switch field {
		case "id":
			return present(el.Parent.ID)
		case "tag":
			return present(el.Parent.Tag)
		case "role":
			return present(el.Parent.Role)
		case "aria_label":
			return present(el.Parent.AriaLabel)
		}
		return "", false
	}

	switch path {
	case "id":
		return present(el.ID)
	case "text":
		return present(el.Text)
	case "text_snippet":
		return present(el.Snippet)
	case "alt":
		return present(el.Alt)
	case "aria_label":
		return present(el.AriaLabel)
	case "title":
		return present(el.Title)
	case "name":
		return present(el.Name)
	case "type":
		return present(el.Type)
	case "src":
		return present(el.Src)
	case "role":
		return present(el.Role)
	case "tag":
		return present(el.Tag)
	}
	return "", false
}

// parentDescription builds a human phrase for the parent: its tag plus id
// (preferred) or classes (fallback), or a bare tag name.
func parentDescription(parent *NodeSummary) (string, bool) {
	if parent == nil {
		return "", false
	}
	tag := parent.Tag
	if tag == "" {
		tag = "element"
	}
	switch {
	case parent.ID != "":
		return fmt.Sprintf("%s with ID %q", tag, parent.ID), true
	case len(parent.Classes) > 0:
		return fmt.Sprintf("%s with classes %q", tag, strings.Join(parent.Classes, " ")), true
	default:
		return "parent " + tag, true
	}
}

// hrefPath compacts an href into a path-based disambiguator: scheme and
// host stripped, trailing slash and query string removed.
func hrefPath(href string) string {
	if href == "" {
		return ""
	}
	// Strip scheme and host ("https://example.com/a/b" -> "a/b").
	if i := strings.Index(href, "//"); i >= 0 {
		href = href[i+2:]
	}
	if parts := strings.SplitN(href, "/", 2); len(parts) == 2 {
		href = parts[1]
	}
	href = strings.TrimRight(href, "/")
	if i := strings.Index(href, "?"); i >= 0 {
		href = href[:i]
	}
	return href
}

func present(v string) (string, bool) {
	if v == "" {
		return "", false
	}
	return v, true
}
