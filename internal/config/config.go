// Package config loads the service configuration from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Provider names accepted by SUMMARIZER_PROVIDER and SENTIMENT_PROVIDER.
const (
	ProviderHuggingFace = "huggingface"
	ProviderOpenAI      = "openai"
	ProviderClaude      = "claude"
	ProviderNoOp        = "noop"
	ProviderLexicon     = "lexicon"
)

// Config is the complete service configuration.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR"        envDefault:":8000"`
	Version         string        `env:"VERSION"          envDefault:"dev"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSOrigin      string        `env:"CORS_ALLOWED_ORIGIN" envDefault:"http://localhost:3000"`

	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	NewsAPI     NewsAPIConfig
	HuggingFace HuggingFaceConfig
	Summarizer  SummarizerConfig
	Sentiment   SentimentConfig
	OpenAI      OpenAIConfig
	Claude      ClaudeConfig

	// EnrichParallelism bounds concurrent article enrichment. 1 is sequential.
	EnrichParallelism int `env:"ENRICH_PARALLELISM" envDefault:"4"`
}

// NewsAPIConfig configures the headline source.
type NewsAPIConfig struct {
	APIKey  string        `env:"NEWS_API_KEY,required,notEmpty"`
	BaseURL string        `env:"NEWSAPI_BASE_URL" envDefault:"https://newsapi.org"`
	Timeout time.Duration `env:"NEWSAPI_TIMEOUT"  envDefault:"10s"`
}

// HuggingFaceConfig configures the inference API shared by the default
// summarizer and classifier.
type HuggingFaceConfig struct {
	Token             string        `env:"HF_API_TOKEN"`
	BaseURL           string        `env:"HF_BASE_URL"            envDefault:"https://api-inference.huggingface.co"`
	Timeout           time.Duration `env:"HF_TIMEOUT"             envDefault:"60s"`
	RequestsPerSecond float64       `env:"HF_REQUESTS_PER_SECOND" envDefault:"0"`
}

// SummarizerConfig selects the summarizer and its length bounds in words.
type SummarizerConfig struct {
	Provider  string `env:"SUMMARIZER_PROVIDER" envDefault:"huggingface"`
	Model     string `env:"SUMMARIZER_MODEL"`
	MinLength int    `env:"SUMMARY_MIN_LENGTH"  envDefault:"30"`
	MaxLength int    `env:"SUMMARY_MAX_LENGTH"  envDefault:"130"`
}

// SentimentConfig selects the sentiment classifier.
type SentimentConfig struct {
	Provider string `env:"SENTIMENT_PROVIDER" envDefault:"huggingface"`
	Model    string `env:"SENTIMENT_MODEL"`
}

// OpenAIConfig is shared by the OpenAI summarizer and classifier.
type OpenAIConfig struct {
	APIKey string `env:"OPENAI_API_KEY"`
	Model  string `env:"OPENAI_MODEL"`
}

// ClaudeConfig configures the Claude summarizer.
type ClaudeConfig struct {
	APIKey string `env:"ANTHROPIC_API_KEY"`
	Model  string `env:"CLAUDE_MODEL"`
}

// Load parses the process environment and validates the result.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Summarizer.Provider = strings.ToLower(strings.TrimSpace(cfg.Summarizer.Provider))
	cfg.Sentiment.Provider = strings.ToLower(strings.TrimSpace(cfg.Sentiment.Provider))
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate checks cross-field constraints that struct tags cannot express.
func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR cannot be empty")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	if c.NewsAPI.Timeout <= 0 {
		return fmt.Errorf("NEWSAPI_TIMEOUT must be positive")
	}
	if c.HuggingFace.Timeout <= 0 {
		return fmt.Errorf("HF_TIMEOUT must be positive")
	}
	if c.HuggingFace.RequestsPerSecond < 0 {
		return fmt.Errorf("HF_REQUESTS_PER_SECOND cannot be negative")
	}
	if c.EnrichParallelism < 1 {
		return fmt.Errorf("ENRICH_PARALLELISM must be at least 1")
	}

	if c.Summarizer.MinLength < 1 || c.Summarizer.MinLength > c.Summarizer.MaxLength || c.Summarizer.MaxLength > 1024 {
		return fmt.Errorf("SUMMARY_MIN_LENGTH and SUMMARY_MAX_LENGTH must satisfy 1 <= min <= max <= 1024, got %d and %d",
			c.Summarizer.MinLength, c.Summarizer.MaxLength)
	}

	switch c.Summarizer.Provider {
	case ProviderHuggingFace, ProviderNoOp:
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when SUMMARIZER_PROVIDER=openai")
		}
	case ProviderClaude:
		if c.Claude.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required when SUMMARIZER_PROVIDER=claude")
		}
	default:
		return fmt.Errorf("unknown SUMMARIZER_PROVIDER %q", c.Summarizer.Provider)
	}

	switch c.Sentiment.Provider {
	case ProviderHuggingFace, ProviderLexicon:
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when SENTIMENT_PROVIDER=openai")
		}
	default:
		return fmt.Errorf("unknown SENTIMENT_PROVIDER %q", c.Sentiment.Provider)
	}

	return nil
}
