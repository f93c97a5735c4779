package slog

import (
	"log/slog"
	"time"

	"github.com/selmap/selmap"
)

// Ensure LoggingMatcher implements selmap.Matcher.
var _ selmap.Matcher = (*LoggingMatcher)(nil)

// LoggingMatcher wraps a Matcher with debug logging for selector matching.
type LoggingMatcher struct {
	next   selmap.Matcher
	logger *slog.Logger
}

// NewLoggingMatcher creates a new LoggingMatcher.
func NewLoggingMatcher(next selmap.Matcher, logger *slog.Logger) *LoggingMatcher {
	return &LoggingMatcher{next: next, logger: logger}
}

// Match runs the wrapped matcher, logging the selector, match count and
// duration.
func (m *LoggingMatcher) Match(doc selmap.Document, selector string) ([]string, error) {
	begin := time.Now()
	texts, err := m.next.Match(doc, selector)
	if err != nil {
		m.logger.Error("selector match failed",
			"selector", selector,
			"duration", time.Since(begin),
			"error", selmap.ErrorMessage(err),
		)
		return nil, err
	}
	m.logger.Info("selector matched",
		"selector", selector,
		"matches", len(texts),
		"duration", time.Since(begin),
	)
	return texts, nil
}
