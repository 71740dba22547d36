// Package slog provides logging decorators for pagelens services.
package slog

import (
	"log/slog"
	"time"

	"github.com/pagelens/pagelens"
)

// Ensure LoggingElementExtractor implements pagelens.ElementExtractor.
var _ pagelens.ElementExtractor = (*LoggingElementExtractor)(nil)

// LoggingElementExtractor wraps an ElementExtractor with debug logging.
type LoggingElementExtractor struct {
	next   pagelens.ElementExtractor
	logger *slog.Logger
}

// NewLoggingElementExtractor creates a new LoggingElementExtractor.
func NewLoggingElementExtractor(next pagelens.ElementExtractor, logger *slog.Logger) *LoggingElementExtractor {
	return &LoggingElementExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingElementExtractor) Extract(markup, baseURL string) (elements *pagelens.PageElements, err error) {
	defer func(begin time.Time) {
		total := 0
		if elements != nil {
			total = elements.Total()
		}
		e.logger.Info("element extraction",
			"url", baseURL,
			"bytes", len(markup),
			"elements", total,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(markup, baseURL)
}
