package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// healthTimeout bounds a single dependency check.
const healthTimeout = 2 * time.Second

// Pinger checks that a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TargetPinger checks that the backend accepts HTTP connections. Any answer, even an
// error status, counts as reachable.
type TargetPinger struct {
	URL    string
	Client *http.Client
}

// NewTargetPinger returns a pinger for the backend origin.
func NewTargetPinger(target string) *TargetPinger {
	return &TargetPinger{
		URL:    target,
		Client: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
}

// Ping issues a HEAD request against the target.
func (p *TargetPinger) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.URL, nil)
	if err != nil {
		return fmt.Errorf("create ping request: %w", err)
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("ping %s: %w", p.URL, err)
	}
	return resp.Body.Close()
}

// HealthCheck reports whether the backend is reachable.
func HealthCheck(p Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
