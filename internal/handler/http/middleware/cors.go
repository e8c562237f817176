// Package middleware holds the CORS middleware placed at the front of the chain.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// defaultMethods is sent on preflight when the client did not name a method.
var defaultMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodOptions,
}

// OriginValidator decides which origins receive CORS headers.
type OriginValidator interface {
	IsAllowed(origin string) bool
	GetAllowedOrigins() []string
}

// CORSLogger is the logging surface used by CORS. SlogAdapter implements it.
type CORSLogger interface {
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Debug(msg string, fields map[string]interface{})
}

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedMethods lists preflight methods. Empty allows any method by
	// echoing Access-Control-Request-Method.
	AllowedMethods []string

	// AllowedHeaders lists preflight headers. Empty allows any header by
	// echoing Access-Control-Request-Headers.
	AllowedHeaders []string

	AllowCredentials bool

	// MaxAge is the preflight cache lifetime in seconds. Zero omits the header.
	MaxAge int

	Validator OriginValidator
	Logger    CORSLogger
}

// NewCORSConfig allows a single origin with credentials and any method or header.
func NewCORSConfig(origin string, logger CORSLogger) CORSConfig {
	return CORSConfig{
		AllowCredentials: true,
		MaxAge:           600,
		Validator:        NewWhitelistValidator([]string{origin}),
		Logger:           logger,
	}
}

// CORS returns middleware that sets CORS headers for allowed origins.
//
// Requests without an Origin header pass through untouched. Disallowed
// origins get no CORS headers and the browser blocks the response. Allowed
// preflight requests are answered with 204 and never reach next.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Add("Vary", "Origin")

			if !config.Validator.IsAllowed(origin) {
				if config.Logger != nil {
					config.Logger.Warn("CORS: origin not allowed", map[string]interface{}{
						"origin":      origin,
						"path":        r.URL.Path,
						"method":      r.Method,
						"remote_addr": r.RemoteAddr,
					})
				}
				next.ServeHTTP(w, r)
				return
			}

			// Echo the origin; "*" is not valid together with credentials.
			w.Header().Set("Access-Control-Allow-Origin", origin)
			if config.AllowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", allowMethods(config))
				if h := allowHeaders(config, r); h != "" {
					w.Header().Set("Access-Control-Allow-Headers", h)
				}
				if config.MaxAge > 0 {
					w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				}

				if config.Logger != nil {
					config.Logger.Debug("CORS: preflight request", map[string]interface{}{
						"origin":            origin,
						"requested_method":  r.Header.Get("Access-Control-Request-Method"),
						"requested_headers": r.Header.Get("Access-Control-Request-Headers"),
					})
				}

				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func allowMethods(config CORSConfig) string {
	if len(config.AllowedMethods) > 0 {
		return strings.Join(config.AllowedMethods, ", ")
	}
	return strings.Join(defaultMethods, ", ")
}

func allowHeaders(config CORSConfig, r *http.Request) string {
	if len(config.AllowedHeaders) > 0 {
		return strings.Join(config.AllowedHeaders, ", ")
	}
	return r.Header.Get("Access-Control-Request-Headers")
}
