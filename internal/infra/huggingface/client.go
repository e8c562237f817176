// Package huggingface is a minimal client for the HuggingFace Inference API.
// It backs both the summarization and the sentiment-classification adapters.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"news-insight/internal/resilience/circuitbreaker"
)

// DefaultBaseURL is the public serverless inference endpoint.
const DefaultBaseURL = "https://api-inference.huggingface.co"

// maxResponseBytes bounds how much of an inference response is read.
const maxResponseBytes = 4 << 20

// Config holds the connection settings for the inference API.
type Config struct {
	// BaseURL is the API root, without the /models suffix.
	BaseURL string

	// Token is the bearer token. Anonymous calls are allowed but heavily throttled.
	Token string

	// Timeout bounds a single inference call.
	Timeout time.Duration

	// RequestsPerSecond paces outbound calls. Zero disables pacing.
	RequestsPerSecond float64
}

// Client performs inference calls against hosted models.
// It is safe for concurrent use.
type Client struct {
	baseURL        string
	token          string
	httpClient     *http.Client
	limiter        *rate.Limiter
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// APIError is returned when the inference API answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("huggingface api error (status %d): %s", e.StatusCode, e.Message)
}

type request struct {
	Inputs     string         `json:"inputs"`
	Parameters map[string]any `json:"parameters,omitempty"`
	Options    requestOptions `json:"options"`
}

type requestOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type errorBody struct {
	Error string `json:"error"`
}

// NewClient builds a client from cfg.
func NewClient(cfg Config) *Client {
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		baseURL:        base,
		token:          cfg.Token,
		httpClient:     &http.Client{Timeout: timeout},
		limiter:        limiter,
		circuitBreaker: circuitbreaker.New(circuitbreaker.HuggingFaceConfig()),
	}
}

// Infer posts inputs and parameters to the given model and decodes the JSON answer into out.
func (c *Client) Infer(ctx context.Context, model, inputs string, parameters map[string]any, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("huggingface rate limiter: %w", err)
		}
	}

	body, err := circuitbreaker.Run(c.circuitBreaker, func() ([]byte, error) {
		return c.do(ctx, model, inputs, parameters)
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode huggingface response for %s: %w", model, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, model, inputs string, parameters map[string]any) ([]byte, error) {
	payload, err := json.Marshal(request{
		Inputs:     inputs,
		Parameters: parameters,
		Options:    requestOptions{WaitForModel: true},
	})
	if err != nil {
		return nil, fmt.Errorf("encode huggingface request: %w", err)
	}

	endpoint := c.baseURL + "/models/" + escapeModel(model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build huggingface request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("huggingface request to %s: %w", model, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read huggingface response: %w", err)
	}

	slog.DebugContext(ctx, "huggingface inference completed",
		slog.String("model", model),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := http.StatusText(resp.StatusCode)
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil && eb.Error != "" {
			msg = eb.Error
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	return body, nil
}

// escapeModel escapes each path segment of an "owner/name" model id.
func escapeModel(model string) string {
	parts := strings.Split(model, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

// Breaker returns the circuit breaker guarding inference calls.
func (c *Client) Breaker() *circuitbreaker.CircuitBreaker {
	return c.circuitBreaker
}
