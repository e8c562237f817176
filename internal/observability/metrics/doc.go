// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size)
//   - Enrichment metrics (headlines fetched, articles enriched or skipped, stage failures)
//   - Sentiment label distribution
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "news-insight/internal/observability/metrics"
//
//	start := time.Now()
//	summary, err := summarizer.Summarize(ctx, content)
//	metrics.RecordStageDuration(metrics.StageSummarize, time.Since(start))
//	if err != nil {
//	    metrics.RecordEnrichmentFailure(metrics.StageSummarize)
//	}
package metrics
