package pagelens

import "strings"

// LinkType classifies a link by the structural role it plays on the page,
// derived from the link's captured ancestor context.
type LinkType string

// Link classifications, most specific first.
const (
	LinkMenuItem        LinkType = "menu_item"
	LinkSubmenuItem     LinkType = "submenu_item"
	LinkDropdownTrigger LinkType = "dropdown_trigger"
	LinkDropdownItem    LinkType = "dropdown_item"
	LinkAccordionItem   LinkType = "accordion_item"
	LinkTabItem         LinkType = "tab_item"
	LinkHeaderNavItem   LinkType = "header_nav_item"
	LinkFooterNavItem   LinkType = "footer_nav_item"
	LinkSidebarNavItem  LinkType = "sidebar_nav_item"
	LinkNavItem         LinkType = "nav_item"
	LinkBreadcrumbItem  LinkType = "breadcrumb_item"
	LinkPaginationItem  LinkType = "pagination_item"
	LinkFooterLink      LinkType = "footer_link"
	LinkHeaderLink      LinkType = "header_link"
	LinkSidebarLink     LinkType = "sidebar_link"
	LinkSocialLink      LinkType = "social_link"
	LinkActionLink      LinkType = "action_link"
	LinkRegular         LinkType = "regular_link"
)

// actionTexts are link texts that signal a call-to-action link.
var actionTexts = []string{
	"read more", "learn more", "view", "see", "click here", "get started",
}

// ClassifyLink determines the type of a link element from its DOM context.
// Interactive ancestors are checked first (menus, dropdowns, accordions,
// tabs), then enclosing landmarks (navigation, header, footer, sidebar),
// then the link's own text.
func ClassifyLink(el *Element) LinkType {
	if anyNode(el.InteractiveAncestors, func(n NodeSummary) bool { return n.Role == "menuitem" }) {
		if anyNode(el.InteractiveAncestors, hasAriaExpanded) {
			return LinkSubmenuItem
		}
		return LinkMenuItem
	}

	if anyNode(el.InteractiveAncestors, func(n NodeSummary) bool { return n.AriaControls != "" }) {
		if anyNode(el.InteractiveAncestors, hasAriaExpanded) {
			return LinkDropdownTrigger
		}
		return LinkDropdownItem
	}

	if anyNode(el.InteractiveAncestors, hasAriaExpanded) {
		return LinkAccordionItem
	}

	if anyNode(el.InteractiveAncestors, func(n NodeSummary) bool { return n.Role == "tab" }) {
		return LinkTabItem
	}

	if anyNode(el.Ancestors, func(n NodeSummary) bool { return n.Role == "navigation" }) {
		switch {
		case anyNode(el.Ancestors, hasClassToken("header")):
			return LinkHeaderNavItem
		case anyNode(el.Ancestors, hasClassToken("footer")):
			return LinkFooterNavItem
		case anyNode(el.Ancestors, hasClassToken("sidebar")):
			return LinkSidebarNavItem
		}
		return LinkNavItem
	}

	if anyNode(el.Ancestors, navLabelled("breadcrumb")) {
		return LinkBreadcrumbItem
	}
	if anyNode(el.Ancestors, navLabelled("pagination")) {
		return LinkPaginationItem
	}

	if anyNode(el.Ancestors, func(n NodeSummary) bool { return n.Tag == "footer" }) {
		return LinkFooterLink
	}
	if anyNode(el.Ancestors, func(n NodeSummary) bool { return n.Tag == "header" }) {
		return LinkHeaderLink
	}
	if anyNode(el.Ancestors, hasClassToken("sidebar")) {
		return LinkSidebarLink
	}
	if anyNode(el.Ancestors, hasClassToken("social")) {
		return LinkSocialLink
	}

	lower := strings.ToLower(el.Text)
	for _, action := range actionTexts {
		if strings.Contains(lower, action) {
			return LinkActionLink
		}
	}

	return LinkRegular
}

func anyNode(nodes []NodeSummary, match func(NodeSummary) bool) bool {
	for _, n := range nodes {
		if match(n) {
			return true
		}
	}
	return false
}

func hasAriaExpanded(n NodeSummary) bool {
	return n.AriaExpanded != ""
}

func hasClassToken(token string) func(NodeSummary) bool {
	return func(n NodeSummary) bool {
		for _, c := range n.Classes {
			if c == token {
				return true
			}
		}
		return false
	}
}

func navLabelled(label string) func(NodeSummary) bool {
	return func(n NodeSummary) bool {
		return n.Role == "navigation" && strings.Contains(strings.ToLower(n.AriaLabel), label)
	}
}
