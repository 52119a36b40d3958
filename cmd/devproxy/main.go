package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"coursehub/internal/config"
	handlers "coursehub/internal/http/handler"
	"coursehub/internal/logging"
	"coursehub/internal/otel"
)

// devproxy serves the frontend's /api and /uploads paths from the backend, the way
// the frontend dev server does, with request IDs, logs, traces and metrics.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Error().Err(err).Msg("config_load_failed")
		os.Exit(1)
	}

	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.Tracing)
	if err != nil {
		logging.Error().Err(err).Msg("tracing_init_failed")
		os.Exit(1)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logging.Warn().Err(err).Msg("tracing_shutdown_failed")
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app, err := handlers.NewApp(cfg.Proxy, reg)
	if err != nil {
		logging.Error().Err(err).Msg("app_init_failed")
		os.Exit(1)
	}

	go func() {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logging.Warn().Err(err).Msg("server_shutdown_failed")
		}
	}()

	addr := ":" + cfg.Proxy.Port
	logging.Info().
		Str("addr", addr).
		Str("target", cfg.Proxy.Target).
		Bool("change_origin", cfg.Proxy.ChangeOrigin).
		Dur("api_timeout", cfg.Proxy.APITimeout).
		Msg("devproxy_listening")

	if err := app.Listen(addr); err != nil {
		logging.Error().Err(err).Msg("server_failed")
		os.Exit(1)
	}
}
