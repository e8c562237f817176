package http

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"news-insight/internal/handler/http/responsewriter"
	"news-insight/internal/observability/metrics"
)

// unmatchedRoute labels requests the router did not match, keeping
// arbitrary paths out of the label set.
const unmatchedRoute = "unmatched"

// MetricsMiddleware records request count, latency, in-flight requests and
// response size. It must wrap the ServeMux directly: the mux stores the
// matched pattern on the request it receives, and that pattern is the path
// label.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		rw := responsewriter.Wrap(w)
		next.ServeHTTP(rw, r)
		duration := rw.Elapsed().Seconds()

		route := routeLabel(r)
		status := strconv.Itoa(rw.StatusCode())
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route, status).Observe(duration)
		metrics.HTTPResponseSize.WithLabelValues(r.Method, route).Observe(float64(rw.BytesWritten()))
	})
}

// routeLabel returns the matched pattern without its method prefix,
// e.g. "GET /api/news" becomes "/api/news".
func routeLabel(r *http.Request) string {
	p := r.Pattern
	if p == "" {
		return unmatchedRoute
	}
	for i := 0; i < len(p); i++ {
		if p[i] == ' ' {
			return p[i+1:]
		}
	}
	return p
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
