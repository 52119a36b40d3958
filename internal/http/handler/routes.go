package handler

import (
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"coursehub/internal/config"
	"coursehub/internal/http/middleware"
)

// NewApp builds the development proxy: error handler, global middleware and routes.
// Metrics are registered on reg and exposed at /metrics.
func NewApp(cfg config.ProxyConfig, reg *prometheus.Registry) (*fiber.App, error) {
	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          ErrorHandler(),
		DisableStartupMessage: true,
		// Avatar uploads go through the proxy.
		BodyLimit: 16 * 1024 * 1024,
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger())
	app.Use(prom.Handler())

	RegisterRoutes(app, cfg, NewTargetPinger(cfg.Target), reg)
	return app, nil
}

// RegisterRoutes attaches the proxy, health and metrics routes.
func RegisterRoutes(app *fiber.App, cfg config.ProxyConfig, pinger Pinger, gatherer prometheus.Gatherer) {
	app.Get("/healthz", LivenessProbe())
	app.Get("/health", HealthCheck(pinger))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	app.All("/api/*", Forward(Upstream{
		Target:       cfg.Target,
		Timeout:      cfg.APITimeout,
		ChangeOrigin: cfg.ChangeOrigin,
	}))
	app.All("/uploads/*", Forward(Upstream{
		Target:       cfg.Target,
		Timeout:      cfg.UploadsTimeout,
		ChangeOrigin: cfg.ChangeOrigin,
	}))
}
