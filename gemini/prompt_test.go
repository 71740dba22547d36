package gemini_test

import (
	"testing"

	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHeadingPrompt(t *testing.T) {
	t.Parallel()

	elements := []*pagelens.Element{
		{
			Tag:  "h2",
			Text: "Pricing",
			InteractiveAncestors: []pagelens.NodeSummary{
				{Tag: "button", AriaExpanded: "false", AriaControls: "pricing-panel"},
			},
		},
	}

	prompt := gemini.BuildHeadingPrompt(elements, "https://example.com")

	assert.Contains(t, prompt, "https://example.com")
	assert.Contains(t, prompt, `"Pricing"`)
	assert.Contains(t, prompt, "pricing-panel")
	assert.Contains(t, prompt, "@heading @visibility")
	assert.Contains(t, prompt, "interactiveAncestors")
}

func TestBuildParagraphPrompt_IncludesUniquenessContext(t *testing.T) {
	t.Parallel()

	elements := []*pagelens.Element{
		{
			Tag:        "p",
			Snippet:    "Shipping is free on orders over fifty dollars.",
			Uniqueness: &pagelens.UniquenessContext{Level: "parent.id", Value: "shipping-info"},
		},
	}

	prompt := gemini.BuildParagraphPrompt(elements, "https://example.com/shop")

	assert.Contains(t, prompt, "shipping-info")
	assert.Contains(t, prompt, "uniquenessContext")
	assert.Contains(t, prompt, `"parent.id"`)
	assert.Contains(t, prompt, "@paragraph @content")
}

func TestBuildLinkPrompt_MentionsExternalPopups(t *testing.T) {
	t.Parallel()

	elements := []*pagelens.Element{
		{Tag: "a", Text: "Docs", Href: "/docs", ExternalPopup: true},
	}

	prompt := gemini.BuildLinkPrompt(elements, "https://example.com")

	assert.Contains(t, prompt, "externalPopup")
	assert.Contains(t, prompt, "@link @navigation")
}

func TestBuildFormPrompt(t *testing.T) {
	t.Parallel()

	forms := []*pagelens.Form{
		{
			Identifier: "the login form",
			Inputs: []pagelens.FormField{
				{Identifier: `field named "username"`, Tag: "input", Type: "text", Name: "username", Required: true},
			},
			Submit: &pagelens.SubmitButton{Text: "Sign in", Identifier: `the "Sign in" button`, Tag: "input"},
		},
	}

	prompt := gemini.BuildFormPrompt(forms, "https://example.com/login")

	assert.Contains(t, prompt, "the login form")
	assert.Contains(t, prompt, "Sign in")
	assert.Contains(t, prompt, "@form @validation")
}

func TestBuildUserStoryPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildUserStoryPrompt("As a shopper I want to save items for later so that I can buy them next payday.")

	assert.Contains(t, prompt, "save items for later")
	assert.Contains(t, prompt, "Gherkin")
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.NotEmpty(t, config.SystemInstruction.Parts)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "Gherkin")
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, float64(*config.Temperature), 0.001)
}
