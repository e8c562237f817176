package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "news-insight/docs" // swagger docs
	"news-insight/internal/handler/http/middleware"
	"news-insight/internal/handler/http/news"
	"news-insight/internal/handler/http/requestid"
	"news-insight/internal/observability/tracing"
)

// RouterConfig holds what the HTTP surface needs from the rest of the service.
type RouterConfig struct {
	News       news.Lister
	Version    string
	Breakers   []Breaker
	CORSOrigin string
	Logger     *slog.Logger
}

// NewRouter registers every route and wraps the mux in the middleware chain:
// CORS, request id, recover, logging, tracing, metrics.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", RootHandler)
	news.Register(mux, cfg.News, logger)
	mux.Handle("GET /health", &HealthHandler{Version: cfg.Version, Breakers: cfg.Breakers})
	mux.Handle("GET /live", LiveHandler{})
	mux.Handle("GET /metrics", MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return Chain(mux,
		middleware.CORS(middleware.NewCORSConfig(cfg.CORSOrigin, &middleware.SlogAdapter{Logger: logger})),
		requestid.Middleware,
		Recover(logger),
		Logging(logger),
		tracing.Middleware,
		MetricsMiddleware,
	)
}
