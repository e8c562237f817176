// Package tracing provides OpenTelemetry tracing integration.
//
// The service installs an SDK tracer provider at startup so every request gets a
// real trace id. The id is returned to clients in the X-Trace-Id header and written
// into request logs; spans are created around the news fetch and around every
// per-article enrichment.
//
// Example usage:
//
//	import "news-insight/internal/observability/tracing"
//
//	func main() {
//	    shutdown := tracing.InitTracer()
//	    defer shutdown(context.Background())
//	}
//
//	func enrich(ctx context.Context) {
//	    ctx, span := tracing.StartSpan(ctx, "news.enrich_article")
//	    defer span.End()
//	}
package tracing
