package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pagelens/pagelens"
)

// Ensure LoggingScenarioGenerator implements pagelens.ScenarioGenerator.
var _ pagelens.ScenarioGenerator = (*LoggingScenarioGenerator)(nil)

// LoggingScenarioGenerator wraps a ScenarioGenerator with debug logging.
// Generation is the slowest part of a scan, so the duration here is the
// one worth watching.
type LoggingScenarioGenerator struct {
	next   pagelens.ScenarioGenerator
	logger *slog.Logger
}

// NewLoggingScenarioGenerator creates a new LoggingScenarioGenerator.
func NewLoggingScenarioGenerator(next pagelens.ScenarioGenerator, logger *slog.Logger) *LoggingScenarioGenerator {
	return &LoggingScenarioGenerator{next: next, logger: logger}
}

// GenerateScenarios delegates to the wrapped generator and logs the
// operation.
func (g *LoggingScenarioGenerator) GenerateScenarios(ctx context.Context, pageURL string, elements *pagelens.PageElements) (scenarios string, err error) {
	defer func(begin time.Time) {
		total := 0
		if elements != nil {
			total = elements.Total()
		}
		g.logger.Info("scenario generation",
			"url", pageURL,
			"elements", total,
			"bytes", len(scenarios),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.GenerateScenarios(ctx, pageURL, elements)
}
