// Package gemini generates Gherkin test scenarios from extracted page
// elements using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/pagelens/pagelens"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// DefaultMaxPromptTokens bounds a single category prompt. Pages with
// thousands of elements can exceed the model context window otherwise.
const DefaultMaxPromptTokens = 200_000

// Ensure Generator implements pagelens.ScenarioGenerator at compile time.
var _ pagelens.ScenarioGenerator = (*Generator)(nil)

// Generator implements pagelens.ScenarioGenerator using Google Gemini.
// Each element category is generated with its own specialized prompt and
// the results are concatenated into one scenario document.
type Generator struct {
	client          *genai.Client
	counter         pagelens.TokenCounter
	maxPromptTokens int
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithTokenCounter enables prompt-size checking before each model call.
func WithTokenCounter(tc pagelens.TokenCounter) GeneratorOption {
	return func(g *Generator) { g.counter = tc }
}

// WithMaxPromptTokens overrides the per-prompt token budget.
func WithMaxPromptTokens(n int) GeneratorOption {
	return func(g *Generator) { g.maxPromptTokens = n }
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client, opts ...GeneratorOption) *Generator {
	g := &Generator{
		client:          client,
		maxPromptTokens: DefaultMaxPromptTokens,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// categoryPrompt pairs a category with its prompt builder.
type categoryPrompt struct {
	category pagelens.Category
	build    func(elements []*pagelens.Element, url string) string
}

// promptOrder fixes the order of generated sections.
var promptOrder = []categoryPrompt{
	{pagelens.CategoryHeadings, BuildHeadingPrompt},
	{pagelens.CategoryParagraphs, BuildParagraphPrompt},
	{pagelens.CategoryLinks, BuildLinkPrompt},
	{pagelens.CategoryButtons, BuildButtonPrompt},
	{pagelens.CategoryImages, BuildImagePrompt},
	{pagelens.CategoryIcons, BuildIconPrompt},
}

// GenerateScenarios produces Gherkin scenario text covering the page's
// extracted elements, one section per non-empty category.
func (g *Generator) GenerateScenarios(ctx context.Context, pageURL string, elements *pagelens.PageElements) (string, error) {
	if pageURL == "" {
		return "", pagelens.Errorf(pagelens.EINVALID, "page URL required")
	}
	if elements == nil {
		return "", pagelens.Errorf(pagelens.EINVALID, "elements required")
	}

	byCategory := elements.ByCategory()

	var sections []string
	for _, cp := range promptOrder {
		els := byCategory[cp.category]
		if len(els) == 0 {
			continue
		}

		text, err := g.generateSection(ctx, cp.build(els, pageURL))
		if err != nil {
			return "", fmt.Errorf("generating %s scenarios: %w", cp.category, err)
		}
		sections = append(sections, fmt.Sprintf("# --- %s ---\n%s", cp.category, strings.TrimSpace(text)))
	}

	if len(elements.Forms) > 0 {
		text, err := g.generateSection(ctx, BuildFormPrompt(elements.Forms, pageURL))
		if err != nil {
			return "", fmt.Errorf("generating form scenarios: %w", err)
		}
		sections = append(sections, fmt.Sprintf("# --- forms ---\n%s", strings.TrimSpace(text)))
	}

	if len(sections) == 0 {
		return "", pagelens.Errorf(pagelens.EINVALID, "no elements to generate scenarios for")
	}

	return strings.Join(sections, "\n\n"), nil
}

// generateSection runs one prompt through the model.
func (g *Generator) generateSection(ctx context.Context, prompt string) (string, error) {
	if g.counter != nil {
		n, err := g.counter.CountTokens(ctx, prompt)
		if err != nil {
			return "", err
		}
		if n > g.maxPromptTokens {
			return "", pagelens.Errorf(pagelens.EINVALID, "prompt of %d tokens exceeds budget of %d", n, g.maxPromptTokens)
		}
	}

	result, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", pagelens.Errorf(pagelens.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a senior QA engineer writing Gherkin test scenarios for web pages. Follow the instructions in each request precisely and output only Gherkin text.",
			}},
		},
		Temperature: &temp,
	}
}
