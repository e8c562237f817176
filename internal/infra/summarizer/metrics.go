package summarizer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"news-insight/internal/utils/text"
)

// SummaryMetricsRecorder records summary length and latency.
// Tests inject a fake; production uses PrometheusSummaryMetrics.
type SummaryMetricsRecorder interface {
	// RecordLength records the summary length in words.
	RecordLength(provider string, words int)

	// RecordOutOfBounds counts a summary outside the configured bounds.
	RecordOutOfBounds(provider string)

	// RecordCompliance sets the last-seen within-bounds gauge.
	RecordCompliance(provider string, within bool)

	// RecordDuration records the time taken to generate a summary.
	RecordDuration(provider string, duration time.Duration)
}

// PrometheusSummaryMetrics implements SummaryMetricsRecorder using Prometheus metrics.
type PrometheusSummaryMetrics struct {
	lengthHistogram   *prometheus.HistogramVec
	outOfBounds       *prometheus.CounterVec
	complianceGauge   *prometheus.GaugeVec
	durationHistogram *prometheus.HistogramVec
}

var (
	prometheusMetricsInstance *PrometheusSummaryMetrics
	prometheusMetricsOnce     sync.Once
)

func getOrCreateHistogramVec(opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	h := prometheus.NewHistogramVec(opts, labels)
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.HistogramVec)
		}
		return promauto.NewHistogramVec(opts, labels)
	}
	return h
}

func getOrCreateCounterVec(opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
		return promauto.NewCounterVec(opts, labels)
	}
	return c
}

func getOrCreateGaugeVec(opts prometheus.GaugeOpts, labels []string) *prometheus.GaugeVec {
	g := prometheus.NewGaugeVec(opts, labels)
	if err := prometheus.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.GaugeVec)
		}
		return promauto.NewGaugeVec(opts, labels)
	}
	return g
}

// NewPrometheusSummaryMetrics returns the process-wide recorder, registering
// its collectors on first use.
func NewPrometheusSummaryMetrics() *PrometheusSummaryMetrics {
	prometheusMetricsOnce.Do(func() {
		labels := []string{"provider"}
		prometheusMetricsInstance = &PrometheusSummaryMetrics{
			lengthHistogram: getOrCreateHistogramVec(prometheus.HistogramOpts{
				Name:    "news_summary_length_words",
				Help:    "Distribution of summary lengths in words",
				Buckets: []float64{10, 30, 50, 70, 90, 110, 130, 200},
			}, labels),
			outOfBounds: getOrCreateCounterVec(prometheus.CounterOpts{
				Name: "news_summary_out_of_bounds_total",
				Help: "Total number of summaries outside the configured length bounds",
			}, labels),
			complianceGauge: getOrCreateGaugeVec(prometheus.GaugeOpts{
				Name: "news_summary_within_bounds",
				Help: "1 if the last summary was within the configured bounds, 0 otherwise",
			}, labels),
			durationHistogram: getOrCreateHistogramVec(prometheus.HistogramOpts{
				Name:    "news_summarization_duration_seconds",
				Help:    "Time taken to generate a summary",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
			}, labels),
		}
	})
	return prometheusMetricsInstance
}

// RecordLength observes the summary length in words.
func (p *PrometheusSummaryMetrics) RecordLength(provider string, words int) {
	p.lengthHistogram.WithLabelValues(provider).Observe(float64(words))
}

func (p *PrometheusSummaryMetrics) RecordOutOfBounds(provider string) {
	p.outOfBounds.WithLabelValues(provider).Inc()
}

func (p *PrometheusSummaryMetrics) RecordCompliance(provider string, within bool) {
	if within {
		p.complianceGauge.WithLabelValues(provider).Set(1)
	} else {
		p.complianceGauge.WithLabelValues(provider).Set(0)
	}
}

// RecordDuration observes how long a summarization call took.
func (p *PrometheusSummaryMetrics) RecordDuration(provider string, duration time.Duration) {
	p.durationHistogram.WithLabelValues(provider).Observe(duration.Seconds())
}

// observe logs and records a finished summary. Out-of-bounds summaries are
// kept; the bounds are a target for the model, not a filter.
func observe(ctx context.Context, rec SummaryMetricsRecorder, provider string, bounds Bounds, summary string, duration time.Duration) {
	words := text.CountWords(summary)
	within := bounds.Within(words)

	slog.InfoContext(ctx, "summarization completed",
		slog.String("provider", provider),
		slog.Int("summary_words", words),
		slog.Bool("within_bounds", within),
		slog.Duration("duration", duration))

	if !within {
		slog.WarnContext(ctx, "summary outside length bounds",
			slog.String("provider", provider),
			slog.Int("summary_words", words),
			slog.Int("min_length", bounds.MinLength),
			slog.Int("max_length", bounds.MaxLength))
		rec.RecordOutOfBounds(provider)
	}

	rec.RecordLength(provider, words)
	rec.RecordDuration(provider, duration)
	rec.RecordCompliance(provider, within)
}
