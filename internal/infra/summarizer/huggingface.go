package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// DefaultHuggingFaceModel is the abstractive summarization model used by default.
const DefaultHuggingFaceModel = "facebook/bart-large-cnn"

// Inferer runs a hosted inference call. *huggingface.Client implements it.
type Inferer interface {
	Infer(ctx context.Context, model, inputs string, parameters map[string]any, out any) error
}

// HuggingFaceConfig selects the model and length window.
type HuggingFaceConfig struct {
	Model   string
	Bounds  Bounds
	Timeout time.Duration
}

// HuggingFace summarizes text with a hosted seq2seq model. Decoding is
// deterministic (do_sample=false) so the same input yields the same summary.
type HuggingFace struct {
	client  Inferer
	model   string
	bounds  Bounds
	timeout time.Duration
	metrics SummaryMetricsRecorder
}

type summaryOutput struct {
	SummaryText string `json:"summary_text"`
}

// NewHuggingFace validates cfg and builds the summarizer.
func NewHuggingFace(client Inferer, cfg HuggingFaceConfig) (*HuggingFace, error) {
	bounds := cfg.Bounds.orDefault()
	if err := bounds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid huggingface summarizer configuration: %w", err)
	}
	model := cfg.Model
	if model == "" {
		model = DefaultHuggingFaceModel
	}

	slog.Info("initialized huggingface summarizer",
		slog.String("model", model),
		slog.Int("min_length", bounds.MinLength),
		slog.Int("max_length", bounds.MaxLength))

	return &HuggingFace{
		client:  client,
		model:   model,
		bounds:  bounds,
		timeout: timeoutOrDefault(cfg.Timeout),
		metrics: NewPrometheusSummaryMetrics(),
	}, nil
}

// Summarize runs the summarization model with deterministic decoding.
func (h *HuggingFace) Summarize(ctx context.Context, input string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	params := map[string]any{
		"min_length": h.bounds.MinLength,
		"max_length": h.bounds.MaxLength,
		"do_sample":  false,
	}

	start := time.Now()
	var out []summaryOutput
	if err := h.client.Infer(ctx, h.model, input, params, &out); err != nil {
		slog.ErrorContext(ctx, "summarization failed",
			slog.String("provider", "huggingface"),
			slog.Duration("duration", time.Since(start)),
			slog.Any("error", err))
		return "", fmt.Errorf("huggingface summarize: %w", err)
	}
	if len(out) == 0 {
		return "", errors.New("huggingface summarize: empty response")
	}

	summary := strings.TrimSpace(out[0].SummaryText)
	observe(ctx, h.metrics, "huggingface", h.bounds, summary, time.Since(start))
	return summary, nil
}
