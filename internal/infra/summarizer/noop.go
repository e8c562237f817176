package summarizer

import (
	"context"
	"time"

	"news-insight/internal/utils/text"
)

// NoOp "summarizes" by keeping the first MaxLength words of the input.
// It needs no network and is meant for development and tests.
type NoOp struct {
	bounds  Bounds
	metrics SummaryMetricsRecorder
}

// NewNoOp creates a NoOp summarizer. Zero bounds select the defaults.
func NewNoOp(bounds Bounds) *NoOp {
	return &NoOp{bounds: bounds.orDefault(), metrics: NewPrometheusSummaryMetrics()}
}

// Summarize returns the first MaxLength words of input.
func (n *NoOp) Summarize(ctx context.Context, input string) (string, error) {
	summary := text.TruncateWords(input, n.bounds.MaxLength)
	observe(ctx, n.metrics, "noop", n.bounds, summary, time.Duration(0))
	return summary, nil
}
