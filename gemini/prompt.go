package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pagelens/pagelens"
)

// uniquenessRules tells the model how to phrase a uniquenessContext
// annotation, keyed by the context level.
const uniquenessRules = `If an element carries a "uniquenessContext" object, append its value to the element description according to the "level" key:
- "id": with ID "<value>"
- "parent.id": within the element with ID "<value>"
- "parent_classes": within an element with classes "<value>"
- "parent_description": within the <value>
- "sibling_text": near the text "<value>"
- "classes": with classes "<value>"
- "href": pointing to "<value>"
- "aria_label": labelled "<value>"
- "alt": with alt text "<value>"
- "title": titled "<value>"
- any other level: with <level> "<value>"
Elements without a "uniquenessContext" are described by their primary identifier alone.`

// interactionRules covers elements hidden behind menus, tabs, and
// accordions, derived from the interactiveAncestors context.
const interactionRules = `Before verifying an element, inspect its "interactiveAncestors" and "ancestors":
- A menuitem or aria-controls ancestor means the enclosing menu must be opened first; add the clicks needed to reach the element.
- An aria-expanded ancestor means the container must be expanded first.
- A role=tab ancestor means the tab must be activated first.
Order the steps so every required interaction happens before the final visibility check.`

// marshalJSON renders the input data block of a prompt.
func marshalJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}

// BuildHeadingPrompt builds the prompt for heading visibility scenarios.
func BuildHeadingPrompt(elements []*pagelens.Element, url string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `Based on the following heading elements extracted from %s, generate one Gherkin scenario per heading verifying that the heading is visible. Each object carries full DOM context: parent, ancestors, siblings, and interactive ancestors.

%s

%s

Identify each heading by the most specific field available, in order: id, aria-label, text. Include the heading level in the scenario title when it helps.

Tag every scenario with @heading @visibility. Output only Scenario blocks, no Feature or Background.

Extracted headings:
%s`, url, interactionRules, uniquenessRules, marshalJSON(elements))
	return sb.String()
}

// BuildParagraphPrompt builds the prompt for paragraph scenarios.
func BuildParagraphPrompt(elements []*pagelens.Element, url string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `Based on the following paragraph elements extracted from %s, generate one Gherkin scenario per paragraph with a Then step verifying the paragraph text is visible. Use the "snippet" field as the base description.

%s

Tag every scenario with @paragraph @content. Output only Scenario blocks, no Feature or Background.

Extracted paragraphs:
%s`, url, uniquenessRules, marshalJSON(elements))
	return sb.String()
}

// BuildLinkPrompt builds the prompt for link navigation scenarios.
func BuildLinkPrompt(elements []*pagelens.Element, url string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `Based on the following link elements extracted from %s, generate Gherkin scenarios verifying each link is visible and navigates to its href when clicked. Each object carries full DOM context including interactive ancestors.

%s

%s

Identify each link by text, falling back to aria-label, then id. Links flagged "externalPopup" open a confirmation dialog before leaving the site; include the dialog step. Mention the link's region (navigation, footer, breadcrumbs) in the scenario title when the ancestors show one.

Tag every scenario with @link @navigation. Output only Scenario blocks, no Feature or Background.

Extracted links:
%s`, url, interactionRules, uniquenessRules, marshalJSON(elements))
	return sb.String()
}

// BuildButtonPrompt builds the prompt for button scenarios.
func BuildButtonPrompt(elements []*pagelens.Element, url string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `Based on the following button elements extracted from %s, generate one Gherkin scenario per button verifying it is visible and enabled. Use the button text as the base identifier, falling back to name, then id. Buttons with "containsIcon" and no text are icon buttons; describe them by their parent or sibling context.

%s

Tag every scenario with @button @interaction. Output only Scenario blocks, no Feature or Background.

Extracted buttons:
%s`, url, uniquenessRules, marshalJSON(elements))
	return sb.String()
}

// BuildImagePrompt builds the prompt for image and logo scenarios.
func BuildImagePrompt(elements []*pagelens.Element, url string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `Based on the following image elements extracted from %s, generate one Gherkin scenario per image verifying it is displayed. Use the alt text as the base identifier, falling back to the src filename. Images flagged "isLikelyLogo" should be described as logos. Images flagged "isClickable" also get a step verifying the click navigates to "parentHref".

%s

Tag every scenario with @image @visibility. Output only Scenario blocks, no Feature or Background.

Extracted images:
%s`, url, uniquenessRules, marshalJSON(elements))
	return sb.String()
}

// BuildIconPrompt builds the prompt for icon scenarios.
func BuildIconPrompt(elements []*pagelens.Element, url string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `Based on the following icon elements extracted from %s, generate one Gherkin scenario per icon verifying it is visible. Use the best available identifier in order: aria-label, title, text, classes.

%s

Tag every scenario with @icon @visibility. Output only Scenario blocks, no Feature or Background.

Extracted icons:
%s`, url, uniquenessRules, marshalJSON(elements))
	return sb.String()
}

// BuildFormPrompt builds the prompt for form scenarios.
func BuildFormPrompt(forms []*pagelens.Form, url string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `Based on the following form elements extracted from %s, generate Gherkin scenarios for each form covering: every field is visible (use the "identifier" of each input), required fields reject empty submission, and a valid submission through the form's submit button succeeds. Refer to each form by its "identifier".

Tag every scenario with @form @validation. Output only Scenario blocks, no Feature or Background.

Extracted forms:
%s`, url, marshalJSON(forms))
	return sb.String()
}

// BuildUserStoryPrompt converts a free-form user story into full Gherkin
// scenarios, independent of any extracted page.
func BuildUserStoryPrompt(userStory string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `Convert the following user story into comprehensive Gherkin test scenarios. Include positive and negative cases, edge cases, and boundary conditions.

User story:
%s

Requirements:
- Use proper Gherkin syntax with Feature, Scenario, Given, When, Then
- Add descriptive scenario titles and organizing tags
- Create at least 3-5 scenarios covering different cases
- Focus on functional requirements`, userStory)
	return sb.String()
}
