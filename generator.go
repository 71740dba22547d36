package pagelens

import "context"

// ScenarioGenerator turns resolved element records into natural-language
// test scenario text. Implementations consume the primary identity fields
// plus the uniqueness context (when present) to describe each element
// unambiguously.
type ScenarioGenerator interface {
	// GenerateScenarios produces Gherkin scenario text covering the
	// extracted elements of the page at pageURL.
	GenerateScenarios(ctx context.Context, pageURL string, elements *PageElements) (string, error)
}

// TokenCounter counts model tokens in text, used to keep generation
// prompts under the model's context window.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
