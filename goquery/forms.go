package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagelens/pagelens"
)

// loginIndicators are keywords that suggest a login form.
var loginIndicators = []string{"login", "log in", "signin", "sign in", "logon", "log on"}

// usernameFieldNames are input name fragments suggesting a username or
// email field.
var usernameFieldNames = []string{"user", "email", "username", "login"}

// extractForms collects forms that have at least one visible input and a
// discoverable submit control.
func extractForms(doc *goquery.Document, b *budget) []*pagelens.Form {
	var out []*pagelens.Form
	doc.Find("form").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if b.exhausted() {
			return false
		}
		form := buildForm(sel, len(out))
		if form == nil {
			return true
		}
		out = append(out, form)
		b.take()
		return true
	})
	return out
}

// buildForm assembles one form record, or nil when the form has no
// non-hidden inputs or no submit control.
func buildForm(sel *goquery.Selection, index int) *pagelens.Form {
	formID := attr(sel, "id")
	form := &pagelens.Form{
		Identifier:      formIdentifier(sel, formID, index),
		ID:              formID,
		Action:          attr(sel, "action"),
		Method:          formMethod(sel),
		SequentialIndex: index,
	}

	sel.Find("input, textarea, select, button").Each(func(_ int, inp *goquery.Selection) {
		tag := tagName(inp)
		inpType := strings.ToLower(attr(inp, "type"))
		if tag == "input" && inpType == "hidden" {
			return
		}
		if isSubmitControl(tag, inpType) {
			if form.Submit == nil {
				form.Submit = submitButton(inp, tag)
			}
			return
		}
		form.Inputs = append(form.Inputs, formField(sel, inp, tag, inpType))
	})

	if len(form.Inputs) == 0 || form.Submit == nil {
		return nil
	}
	return form
}

func formMethod(sel *goquery.Selection) string {
	if method := strings.ToLower(attr(sel, "method")); method != "" {
		return method
	}
	return "get"
}

// isSubmitControl: a bare <button> defaults to type=submit; an <input>
// must say so explicitly.
func isSubmitControl(tag, inpType string) bool {
	switch tag {
	case "button":
		return inpType == "" || inpType == "submit"
	case "input":
		return inpType == "submit"
	}
	return false
}

func submitButton(inp *goquery.Selection, tag string) *pagelens.SubmitButton {
	text := ""
	if tag == "input" {
		text = attr(inp, "value")
	}
	if text == "" {
		text = cleanText(inp)
	}
	if text == "" {
		text = "Submit"
	}
	identifier := fmt.Sprintf("the %q button", text)
	id := attr(inp, "id")
	if id != "" {
		identifier += fmt.Sprintf(" with ID %q", id)
	}
	return &pagelens.SubmitButton{Text: text, Identifier: identifier, Tag: tag, ID: id}
}

// formField builds the record for one visible input, preferring an
// associated label, then placeholder, aria-label, name, and id for the
// human identifier.
func formField(form, inp *goquery.Selection, tag, inpType string) pagelens.FormField {
	if inpType == "" {
		inpType = tag
	}
	id := attr(inp, "id")
	name := attr(inp, "name")
	_, required := inp.Attr("required")

	label := ""
	if id != "" {
		label = cleanText(form.Find(fmt.Sprintf("label[for=%q]", id)))
	}
	if label == "" && tagName(inp.Parent()) == "label" {
		label = cleanText(inp.Parent())
	}

	var identifier string
	switch {
	case label != "":
		identifier = fmt.Sprintf("%q field", label)
	case attr(inp, "placeholder") != "":
		identifier = fmt.Sprintf("field with placeholder %q", attr(inp, "placeholder"))
	case attr(inp, "aria-label") != "":
		identifier = fmt.Sprintf("field labelled %q", attr(inp, "aria-label"))
	case name != "":
		identifier = fmt.Sprintf("field named %q", name)
	case id != "":
		identifier = fmt.Sprintf("field with ID %q", id)
	default:
		identifier = inpType + " field"
	}

	return pagelens.FormField{
		Identifier: identifier,
		Tag:        tag,
		Type:       inpType,
		Name:       name,
		ID:         id,
		Required:   required,
	}
}

// formIdentifier picks a best-effort human identifier for the form.
// First match wins: aria-label, id, framework form-id attribute, legend,
// internal heading, preceding heading, parent's preceding heading, login
// heuristics, positional fallback.
func formIdentifier(sel *goquery.Selection, formID string, index int) string {
	if ariaLabel := attr(sel, "aria-label"); ariaLabel != "" {
		return fmt.Sprintf("the form labelled %q", ariaLabel)
	}
	if formID != "" {
		return fmt.Sprintf("the form with ID %q", formID)
	}
	if dataID := attr(sel, "data-di-form-id"); dataID != "" {
		return fmt.Sprintf("the %q form", dataID)
	}
	if legend := cleanText(sel.Find("legend").First()); legend != "" {
		return fmt.Sprintf("the %q form", legend)
	}
	if heading := cleanText(sel.Find(headingSelector).First()); heading != "" {
		return fmt.Sprintf("the %q form", heading)
	}
	if prev := sel.Prev(); prev.Is(headingSelector) {
		if heading := cleanText(prev); heading != "" {
			return fmt.Sprintf("the form under the %q heading", heading)
		}
	}
	if parent := sel.Parent(); parent.Length() > 0 {
		if prev := parent.Prev(); prev.Is(headingSelector) {
			if heading := cleanText(prev); heading != "" {
				return fmt.Sprintf("the form within the %s under the %q heading", tagName(parent), heading)
			}
		}
	}
	if isLoginForm(sel, formID) {
		return "the login form"
	}
	return fmt.Sprintf("form #%d", index+1)
}

// isLoginForm checks class and id keywords first, then falls back to the
// field shape: a username-like input alongside a password input.
func isLoginForm(sel *goquery.Selection, formID string) bool {
	for _, class := range classList(sel) {
		if containsAny(strings.ToLower(class), loginIndicators) {
			return true
		}
	}
	if formID != "" && containsAny(strings.ToLower(formID), loginIndicators) {
		return true
	}

	hasUsername := false
	sel.Find("input[name]").EachWithBreak(func(_ int, inp *goquery.Selection) bool {
		if containsAny(strings.ToLower(attr(inp, "name")), usernameFieldNames) {
			hasUsername = true
			return false
		}
		return true
	})
	return hasUsername && sel.Find(`input[type="password"]`).Length() > 0
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
