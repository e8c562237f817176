package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"news-insight/internal/config"
	hhttp "news-insight/internal/handler/http"
	"news-insight/internal/observability/logging"
	"news-insight/internal/observability/tracing"
)

// @title           News Insight API
// @version         1.0
// @description     Top headlines from NewsAPI with machine-generated summaries and sentiment labels.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration invalid", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg)

	shutdownTracer := tracing.InitTracer()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(ctx); err != nil {
			logger.Error("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	app, err := buildApp(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize service", slog.Any("error", err))
		os.Exit(1)
	}

	handler := hhttp.NewRouter(hhttp.RouterConfig{
		News:       app.Service,
		Version:    cfg.Version,
		Breakers:   app.Breakers,
		CORSOrigin: cfg.CORSOrigin,
		Logger:     logger,
	})

	runServer(logger, cfg, handler)
}

// initLogger builds the process logger from LOG_LEVEL and LOG_FORMAT and
// installs it as the slog default.
func initLogger(cfg *config.Config) *slog.Logger {
	logger := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	return logger
}

func runServer(logger *slog.Logger, cfg *config.Config, handler http.Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTPAddr),
			slog.String("version", cfg.Version),
			slog.String("summarizer", cfg.Summarizer.Provider),
			slog.String("sentiment", cfg.Sentiment.Provider))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	// In-flight enrichment is abandoned once Shutdown returns.
	cancel()
	logger.Info("server stopped")
}
