package mock

import (
	"context"

	"github.com/pagelens/pagelens"
)

var _ pagelens.ScenarioGenerator = (*ScenarioGenerator)(nil)

// ScenarioGenerator is a mock implementation of pagelens.ScenarioGenerator.
type ScenarioGenerator struct {
	GenerateScenariosFn func(ctx context.Context, pageURL string, elements *pagelens.PageElements) (string, error)
}

func (g *ScenarioGenerator) GenerateScenarios(ctx context.Context, pageURL string, elements *pagelens.PageElements) (string, error) {
	return g.GenerateScenariosFn(ctx, pageURL, elements)
}

var _ pagelens.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of pagelens.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}
