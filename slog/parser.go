// Package slog provides logging decorators for the selmap interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/selmap/selmap"
)

// Ensure LoggingParser implements selmap.Parser.
var _ selmap.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging for document parsing.
type LoggingParser struct {
	next   selmap.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next selmap.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse parses the document, logging input size, duration and outcome.
func (p *LoggingParser) Parse(html string) (selmap.Document, error) {
	begin := time.Now()
	doc, err := p.next.Parse(html)
	if err != nil {
		p.logger.Error("html parse failed",
			"bytes", len(html),
			"duration", time.Since(begin),
			"error", selmap.ErrorMessage(err),
		)
		return nil, err
	}
	p.logger.Info("html parsed",
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return doc, nil
}
