package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"news-insight/internal/resilience/circuitbreaker"
	"news-insight/internal/utils/text"
)

// DefaultOpenAIModel is used when OpenAIConfig.Model is empty.
const DefaultOpenAIModel = openai.GPT4oMini

// OpenAIConfig holds configuration for the OpenAI summarizer.
type OpenAIConfig struct {
	APIKey string
	// BaseURL overrides the API endpoint. Empty means api.openai.com.
	BaseURL string
	Model   string
	Bounds  Bounds
	Timeout time.Duration
}

// Validate checks bounds and required fields.
func (c OpenAIConfig) Validate() error {
	if c.APIKey == "" {
		return errors.New("openai api key cannot be empty")
	}
	if err := c.Bounds.orDefault().Validate(); err != nil {
		return fmt.Errorf("invalid bounds: %w", err)
	}
	return nil
}

// OpenAI summarizes with a chat completion model. Each call goes through a
// circuit breaker and is attempted once.
type OpenAI struct {
	client         *openai.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	model          string
	bounds         Bounds
	timeout        time.Duration
	metrics        SummaryMetricsRecorder
}

// NewOpenAI validates cfg and creates the summarizer.
func NewOpenAI(cfg OpenAIConfig) (*OpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid openai summarizer configuration: %w", err)
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}
	bounds := cfg.Bounds.orDefault()

	slog.Info("initialized openai summarizer",
		slog.String("model", model),
		slog.Int("min_length", bounds.MinLength),
		slog.Int("max_length", bounds.MaxLength))

	return &OpenAI{
		client:         openai.NewClientWithConfig(clientCfg),
		circuitBreaker: circuitbreaker.New(circuitbreaker.OpenAISummarizerConfig()),
		model:          model,
		bounds:         bounds,
		timeout:        timeoutOrDefault(cfg.Timeout),
		metrics:        NewPrometheusSummaryMetrics(),
	}, nil
}

// Summarize asks the chat model for a summary within the configured word bounds.
func (o *OpenAI) Summarize(ctx context.Context, input string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	summary, err := circuitbreaker.Run(o.circuitBreaker, func() (string, error) {
		return o.doSummarize(ctx, input)
	})
	if err != nil {
		return "", fmt.Errorf("openai summarize: %w", err)
	}
	return summary, nil
}

func (o *OpenAI) doSummarize(ctx context.Context, input string) (string, error) {
	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: buildPrompt(o.bounds)},
			{Role: openai.ChatMessageRoleUser, Content: text.TruncateRunes(input, maxInputRunes)},
		},
		// omitempty drops a literal zero.
		Temperature: math.SmallestNonzeroFloat32,
		MaxTokens:   maxTokens(o.bounds),
	})
	duration := time.Since(start)
	if err != nil {
		slog.ErrorContext(ctx, "summarization failed",
			slog.String("provider", "openai"),
			slog.Duration("duration", duration),
			slog.Any("error", err))
		return "", fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai api returned empty response")
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	observe(ctx, o.metrics, "openai", o.bounds, summary, duration)
	return summary, nil
}

// buildPrompt asks for a summary whose word count falls inside bounds.
func buildPrompt(b Bounds) string {
	return fmt.Sprintf("Summarize the following news article in plain English prose "+
		"between %d and %d words. Reply with the summary only.", b.MinLength, b.MaxLength)
}

// maxTokens leaves room for roughly two tokens per word.
func maxTokens(b Bounds) int {
	return b.MaxLength*2 + 16
}

// Breaker returns the circuit breaker guarding API calls.
func (o *OpenAI) Breaker() *circuitbreaker.CircuitBreaker {
	return o.circuitBreaker
}
