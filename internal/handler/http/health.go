// Package http provides the HTTP surface of the service: the middleware
// chain, health and metrics endpoints, and route registration. The news
// endpoints themselves live in the news subpackage.
package http

import (
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"news-insight/internal/handler/http/respond"
)

// HealthResponse represents the JSON response for the health endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "degraded"
	Timestamp string                 `json:"timestamp"` // RFC 3339
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single dependency.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Breaker exposes a circuit breaker's name and state.
// *circuitbreaker.CircuitBreaker implements it.
type Breaker interface {
	Name() string
	State() gobreaker.State
}

// HealthHandler reports the service version and the state of the upstream
// circuit breakers. An open breaker marks the service degraded but the
// endpoint still answers 200: the process is alive and recovers on its own.
type HealthHandler struct {
	Version  string
	Breakers []Breaker
}

// ServeHTTP writes a HealthResponse with one check per breaker.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]CheckStatus, len(h.Breakers))
	status := "healthy"

	for _, b := range h.Breakers {
		state := b.State()
		check := CheckStatus{Status: "healthy", Message: "circuit " + state.String()}
		if state == gobreaker.StateOpen {
			check.Status = "degraded"
			status = "degraded"
		}
		checks[b.Name()] = check
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

// LiveHandler answers liveness probes.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "alive"})
}
