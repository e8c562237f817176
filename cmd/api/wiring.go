package main

import (
	"fmt"
	"log/slog"

	"news-insight/internal/config"
	hhttp "news-insight/internal/handler/http"
	"news-insight/internal/infra/huggingface"
	"news-insight/internal/infra/newsapi"
	"news-insight/internal/infra/sentiment"
	"news-insight/internal/infra/summarizer"
	"news-insight/internal/resilience/circuitbreaker"
	"news-insight/internal/usecase/news"
)

// app holds the assembled use case and the breakers reported on /health.
type app struct {
	Service  *news.Service
	Breakers []hhttp.Breaker
}

// guarded is implemented by LLM-backed components that own a breaker.
type guarded interface {
	Breaker() *circuitbreaker.CircuitBreaker
}

func buildApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	source := newsapi.NewClient(newsapi.Config{
		APIKey:  cfg.NewsAPI.APIKey,
		BaseURL: cfg.NewsAPI.BaseURL,
		Timeout: cfg.NewsAPI.Timeout,
	})
	breakers := []hhttp.Breaker{source.Breaker()}

	var hf *huggingface.Client
	if cfg.Summarizer.Provider == config.ProviderHuggingFace || cfg.Sentiment.Provider == config.ProviderHuggingFace {
		hf = huggingface.NewClient(huggingface.Config{
			BaseURL:           cfg.HuggingFace.BaseURL,
			Token:             cfg.HuggingFace.Token,
			Timeout:           cfg.HuggingFace.Timeout,
			RequestsPerSecond: cfg.HuggingFace.RequestsPerSecond,
		})
		breakers = append(breakers, hf.Breaker())
	}

	sum, err := buildSummarizer(cfg, hf)
	if err != nil {
		return nil, err
	}
	cls, err := buildClassifier(cfg, hf)
	if err != nil {
		return nil, err
	}
	for _, c := range []any{sum, cls} {
		if g, ok := c.(guarded); ok {
			breakers = append(breakers, g.Breaker())
		}
	}

	return &app{
		Service: &news.Service{
			Source:      source,
			Summarizer:  sum,
			Classifier:  cls,
			Parallelism: cfg.EnrichParallelism,
			Logger:      logger,
		},
		Breakers: breakers,
	}, nil
}

func buildSummarizer(cfg *config.Config, hf *huggingface.Client) (news.Summarizer, error) {
	bounds := summarizer.Bounds{MinLength: cfg.Summarizer.MinLength, MaxLength: cfg.Summarizer.MaxLength}

	switch cfg.Summarizer.Provider {
	case config.ProviderHuggingFace:
		return summarizer.NewHuggingFace(hf, summarizer.HuggingFaceConfig{
			Model:   cfg.Summarizer.Model,
			Bounds:  bounds,
			Timeout: cfg.HuggingFace.Timeout,
		})
	case config.ProviderOpenAI:
		return summarizer.NewOpenAI(summarizer.OpenAIConfig{
			APIKey: cfg.OpenAI.APIKey,
			Model:  firstNonEmpty(cfg.Summarizer.Model, cfg.OpenAI.Model),
			Bounds: bounds,
		})
	case config.ProviderClaude:
		return summarizer.NewClaude(summarizer.ClaudeConfig{
			APIKey: cfg.Claude.APIKey,
			Model:  firstNonEmpty(cfg.Summarizer.Model, cfg.Claude.Model),
			Bounds: bounds,
		})
	case config.ProviderNoOp:
		return summarizer.NewNoOp(bounds), nil
	}
	return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Summarizer.Provider)
}

func buildClassifier(cfg *config.Config, hf *huggingface.Client) (news.Classifier, error) {
	switch cfg.Sentiment.Provider {
	case config.ProviderHuggingFace:
		return sentiment.NewHuggingFace(hf, cfg.Sentiment.Model), nil
	case config.ProviderOpenAI:
		return sentiment.NewOpenAI(sentiment.OpenAIConfig{
			APIKey: cfg.OpenAI.APIKey,
			Model:  firstNonEmpty(cfg.Sentiment.Model, cfg.OpenAI.Model),
		})
	case config.ProviderLexicon:
		return sentiment.NewLexicon(), nil
	}
	return nil, fmt.Errorf("unknown sentiment provider %q", cfg.Sentiment.Provider)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
