package handler

import (
	"errors"
	"net"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/proxy"
	"github.com/valyala/fasthttp"

	"coursehub/internal/logging"
)

// Upstream describes where a proxied route forwards to.
type Upstream struct {
	// Target is the backend origin, e.g. http://localhost:8080. No trailing slash.
	Target string
	// Timeout bounds the whole upstream round trip. Zero means no timeout.
	Timeout time.Duration
	// ChangeOrigin rewrites the Host header to the target's host.
	ChangeOrigin bool
}

// Forward proxies the request unchanged (method, original URI, headers, body) to the
// upstream. A refused or failed connection answers 502; an exceeded timeout 504.
func Forward(up Upstream) fiber.Handler {
	target := strings.TrimRight(up.Target, "/")
	client := &fasthttp.Client{
		NoDefaultUserAgentHeader: true,
		DisablePathNormalizing:   true,
	}

	return func(c *fiber.Ctx) error {
		// Path and query only, so absolute-form request lines cannot leak a host in.
		addr := target + string(c.Request().URI().RequestURI())

		// fasthttp derives Host from the request URI unless told otherwise.
		c.Request().UseHostHeader = !up.ChangeOrigin

		var err error
		if up.Timeout > 0 {
			err = proxy.DoTimeout(c, addr, up.Timeout, client)
		} else {
			err = proxy.Do(c, addr, client)
		}
		if err == nil {
			return nil
		}

		status := upstreamStatus(err)
		l := logging.Ctx(c.UserContext())
		l.Warn().Err(err).
			Str("upstream", addr).
			Int("status", status).
			Msg("proxy_failed")
		return fiber.NewError(status, err.Error())
	}
}

func upstreamStatus(err error) int {
	if errors.Is(err, fasthttp.ErrTimeout) {
		return fiber.StatusGatewayTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return fiber.StatusGatewayTimeout
	}
	return fiber.StatusBadGateway
}
