// Package summarizer provides the article summarizers: a hosted HuggingFace
// model (default), OpenAI and Claude chat models, and a NoOp truncator.
// Every implementation reports summary length against the configured word
// bounds through Prometheus.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"news-insight/internal/resilience/circuitbreaker"
	"news-insight/internal/utils/text"
)

// DefaultClaudeModel is used when ClaudeConfig.Model is empty.
const DefaultClaudeModel = string(anthropic.ModelClaudeSonnet4_5_20250929)

// ClaudeConfig holds configuration for the Claude summarizer.
type ClaudeConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Bounds  Bounds
	Timeout time.Duration
}

// Validate checks bounds and required fields.
func (c ClaudeConfig) Validate() error {
	if c.APIKey == "" {
		return errors.New("anthropic api key cannot be empty")
	}
	if err := c.Bounds.orDefault().Validate(); err != nil {
		return fmt.Errorf("invalid bounds: %w", err)
	}
	return nil
}

// Claude summarizes with Anthropic's messages API. The SDK's own retries are
// disabled so each article costs at most one call.
type Claude struct {
	client         anthropic.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	model          string
	bounds         Bounds
	timeout        time.Duration
	metrics        SummaryMetricsRecorder
}

// NewClaude validates cfg and creates the summarizer.
func NewClaude(cfg ClaudeConfig) (*Claude, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid claude summarizer configuration: %w", err)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	model := cfg.Model
	if model == "" {
		model = DefaultClaudeModel
	}
	bounds := cfg.Bounds.orDefault()

	slog.Info("initialized claude summarizer",
		slog.String("model", model),
		slog.Int("min_length", bounds.MinLength),
		slog.Int("max_length", bounds.MaxLength))

	return &Claude{
		client:         anthropic.NewClient(opts...),
		circuitBreaker: circuitbreaker.New(circuitbreaker.ClaudeSummarizerConfig()),
		model:          model,
		bounds:         bounds,
		timeout:        timeoutOrDefault(cfg.Timeout),
		metrics:        NewPrometheusSummaryMetrics(),
	}, nil
}

// Summarize asks Claude for a summary within the configured word bounds.
func (c *Claude) Summarize(ctx context.Context, input string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	summary, err := circuitbreaker.Run(c.circuitBreaker, func() (string, error) {
		return c.doSummarize(ctx, input)
	})
	if err != nil {
		return "", fmt.Errorf("claude summarize: %w", err)
	}
	return summary, nil
}

func (c *Claude) doSummarize(ctx context.Context, input string) (string, error) {
	start := time.Now()
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   int64(maxTokens(c.bounds)),
		Temperature: anthropic.Float(0),
		System:      []anthropic.TextBlockParam{{Text: buildPrompt(c.bounds)}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text.TruncateRunes(input, maxInputRunes))),
		},
	})
	duration := time.Since(start)
	if err != nil {
		slog.ErrorContext(ctx, "summarization failed",
			slog.String("provider", "claude"),
			slog.Duration("duration", duration),
			slog.Any("error", err))
		return "", fmt.Errorf("claude api error: %w", err)
	}
	if len(message.Content) == 0 {
		return "", errors.New("claude api returned empty response")
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		return "", errors.New("claude api returned unexpected response type")
	}

	summary := strings.TrimSpace(textBlock.Text)
	observe(ctx, c.metrics, "claude", c.bounds, summary, duration)
	return summary, nil
}

// Breaker returns the circuit breaker guarding API calls.
func (c *Claude) Breaker() *circuitbreaker.CircuitBreaker {
	return c.circuitBreaker
}
