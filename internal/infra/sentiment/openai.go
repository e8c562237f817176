package sentiment

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
	"news-insight/internal/usecase/news"
	"news-insight/internal/utils/text"
)

const classifyPrompt = "Classify the sentiment of the following news article. " +
	"Answer with exactly one word: POSITIVE or NEGATIVE."

// OpenAIConfig holds configuration for the OpenAI classifier.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// OpenAI classifies sentiment with a chat completion model.
type OpenAI struct {
	client         *openai.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	model          string
	timeout        time.Duration
}

var _ news.Classifier = (*OpenAI)(nil)

// NewOpenAI creates the classifier. The API key is required.
func NewOpenAI(cfg OpenAIConfig) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key cannot be empty")
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	slog.Info("initialized openai sentiment classifier", slog.String("model", model))

	return &OpenAI{
		client:         openai.NewClientWithConfig(clientCfg),
		circuitBreaker: circuitbreaker.New(circuitbreaker.OpenAISentimentConfig()),
		model:          model,
		timeout:        timeout,
	}, nil
}

// Classify asks the model for POSITIVE or NEGATIVE. The score is always 1.
func (o *OpenAI) Classify(ctx context.Context, input string) (news.Classification, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	c, err := circuitbreaker.Run(o.circuitBreaker, func() (news.Classification, error) {
		return o.doClassify(ctx, input)
	})
	if err != nil {
		return news.Classification{}, fmt.Errorf("openai classify: %w", err)
	}
	return c, nil
}

func (o *OpenAI) doClassify(ctx context.Context, input string) (news.Classification, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: classifyPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text.TruncateRunes(input, 10000)},
		},
		// omitempty drops a literal zero.
		Temperature: math.SmallestNonzeroFloat32,
		MaxTokens:   4,
	})
	if err != nil {
		return news.Classification{}, fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return news.Classification{}, errors.New("openai api returned empty response")
	}

	label := normalizeLabel(resp.Choices[0].Message.Content)
	if label == "" {
		return news.Classification{}, fmt.Errorf("openai returned unexpected label %q", resp.Choices[0].Message.Content)
	}
	return news.Classification{Label: label, Score: 1}, nil
}

// normalizeLabel extracts POSITIVE or NEGATIVE from a model reply such as
// "Positive." and returns "" for anything else.
func normalizeLabel(reply string) string {
	word := strings.ToUpper(strings.Trim(strings.TrimSpace(reply), ".!\"' "))
	switch word {
	case "POSITIVE", "NEGATIVE":
		return word
	}
	return ""
}

// Breaker returns the circuit breaker guarding API calls.
func (o *OpenAI) Breaker() *circuitbreaker.CircuitBreaker {
	return o.circuitBreaker
}
