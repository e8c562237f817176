// Package observability groups the structured logging, Prometheus metrics and
// OpenTelemetry tracing used across the service.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry tracer and HTTP middleware
//
// Example usage:
//
//	import (
//	    "news-insight/internal/observability/logging"
//	    "news-insight/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("application started")
//
//	    metrics.RecordHeadlinesFetched("general", 5)
//	}
package observability
