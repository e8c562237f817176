// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Enrichment stages used as label values.
const (
	StageFetch     = "fetch"
	StageValidate  = "validate"
	StageSummarize = "summarize"
	StageClassify  = "classify"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, route, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds.
	// The upper buckets are wide because /api/news waits on model inference.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestsInFlight tracks the current number of HTTP requests being processed.
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	// HTTPResponseSize measures HTTP response body size in bytes
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)
)

// Enrichment metrics track the news pipeline
var (
	// HeadlinesFetchedTotal counts articles returned by the news source per category.
	HeadlinesFetchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_headlines_fetched_total",
			Help: "Total number of articles returned by the news source",
		},
		[]string{"category"},
	)

	// ArticlesEnrichedTotal counts articles that received a summary and a sentiment.
	ArticlesEnrichedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "news_articles_enriched_total",
			Help: "Total number of articles summarized and classified",
		},
	)

	// ArticlesSkippedTotal counts articles dropped for having no content.
	ArticlesSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "news_articles_skipped_total",
			Help: "Total number of articles skipped because their content was empty",
		},
	)

	// EnrichmentFailuresTotal counts failed pipeline stages.
	EnrichmentFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_enrichment_failures_total",
			Help: "Total number of failed enrichment stages",
		},
		[]string{"stage"},
	)

	// StageDuration measures the duration of each external call.
	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_enrichment_stage_duration_seconds",
			Help:    "Duration of news fetch, summarization and classification calls",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		},
		[]string{"stage"},
	)

	// SentimentTotal counts emitted sentiment labels.
	SentimentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_sentiment_total",
			Help: "Total number of articles per sentiment label",
		},
		[]string{"sentiment"},
	)
)
