package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coursehub/internal/config"
	"coursehub/internal/http/handler/mocks"
	"coursehub/internal/http/middleware"
)

// echoed is what the fake backend reports back about the forwarded request.
type echoed struct {
	Method    string `json:"method"`
	URI       string `json:"uri"`
	Host      string `json:"host"`
	RequestID string `json:"request_id"`
	Body      string `json:"body"`
}

func newEchoBackend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(echoed{
			Method:    r.Method,
			URI:       r.URL.RequestURI(),
			Host:      r.Host,
			RequestID: r.Header.Get(middleware.RequestIDHeader),
			Body:      string(b),
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T, cfg config.ProxyConfig) *fiber.App {
	t.Helper()
	app, err := NewApp(cfg, prometheus.NewRegistry())
	require.NoError(t, err)
	return app
}

func proxyConfig(target string) config.ProxyConfig {
	return config.ProxyConfig{
		Port:         "5173",
		Target:       target,
		ChangeOrigin: true,
		APITimeout:   5 * time.Second,
	}
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealthCheck(t *testing.T) {
	pinger := new(mocks.MockPinger)
	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Get("/health", HealthCheck(pinger))

	hasDeadline := mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})

	t.Run("healthy", func(t *testing.T) {
		pinger.On("Ping", hasDeadline).Return(nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "healthy", body["status"])
		pinger.AssertExpectations(t)
	})

	t.Run("unhealthy", func(t *testing.T) {
		pinger.On("Ping", hasDeadline).Return(errors.New("connection refused")).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
		assert.Equal(t, resp.Header.Get(middleware.RequestIDHeader), body.RequestID)
		pinger.AssertExpectations(t)
	})
}

func TestTargetPinger(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer up.Close()

	assert.NoError(t, NewTargetPinger(up.URL).Ping(context.Background()))

	down := httptest.NewServer(http.NotFoundHandler())
	downURL := down.URL
	down.Close()
	assert.Error(t, NewTargetPinger(downURL).Ping(context.Background()))
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestForward_API(t *testing.T) {
	backend := newEchoBackend(t)
	app := newTestApp(t, proxyConfig(backend.URL))

	req := httptest.NewRequest(http.MethodPut, "/api/plans/8?userId=3", strings.NewReader(`{"title":"t"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.RequestIDHeader, "rid-42")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "rid-42", resp.Header.Get(middleware.RequestIDHeader))

	var got echoed
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, http.MethodPut, got.Method)
	assert.Equal(t, "/api/plans/8?userId=3", got.URI)
	assert.Equal(t, strings.TrimPrefix(backend.URL, "http://"), got.Host)
	assert.Equal(t, "rid-42", got.RequestID)
	assert.Equal(t, `{"title":"t"}`, got.Body)
}

func TestForward_GeneratedRequestIDReachesUpstream(t *testing.T) {
	backend := newEchoBackend(t)
	app := newTestApp(t, proxyConfig(backend.URL))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/courses?limit=50", nil), -1)
	require.NoError(t, err)

	var got echoed
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.NotEmpty(t, got.RequestID)
	assert.Equal(t, resp.Header.Get(middleware.RequestIDHeader), got.RequestID)
}

func TestForward_KeepsHostWithoutChangeOrigin(t *testing.T) {
	backend := newEchoBackend(t)
	cfg := proxyConfig(backend.URL)
	cfg.ChangeOrigin = false
	app := newTestApp(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/courses?limit=5", nil)
	req.Host = "frontend.local:5173"

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got echoed
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "frontend.local:5173", got.Host)
	assert.Equal(t, "/api/courses?limit=5", got.URI)
}

func TestForward_AbsoluteFormRequest(t *testing.T) {
	backend := newEchoBackend(t)
	app := newTestApp(t, proxyConfig(backend.URL))

	// httptest keeps the absolute target as the request line.
	req := httptest.NewRequest(http.MethodGet, "http://frontend.local/api/courses?limit=5", nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got echoed
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "/api/courses?limit=5", got.URI)
	assert.Equal(t, strings.TrimPrefix(backend.URL, "http://"), got.Host)
}

func TestForward_Uploads(t *testing.T) {
	backend := newEchoBackend(t)
	app := newTestApp(t, proxyConfig(backend.URL))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/uploads/avatars/9.png", nil), -1)
	require.NoError(t, err)

	var got echoed
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "/uploads/avatars/9.png", got.URI)
}

func TestForward_BadGateway(t *testing.T) {
	down := httptest.NewServer(http.NotFoundHandler())
	target := down.URL
	down.Close()

	app := newTestApp(t, proxyConfig(target))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/courses", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "BAD_GATEWAY", body.Error.Code)
	assert.NotEmpty(t, body.RequestID)
}

func TestForward_GatewayTimeout(t *testing.T) {
	release := make(chan struct{})
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-time.After(5 * time.Second):
		}
	}))
	t.Cleanup(slow.Close)
	t.Cleanup(func() { close(release) })

	cfg := proxyConfig(slow.URL)
	cfg.APITimeout = 50 * time.Millisecond
	app := newTestApp(t, cfg)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/evaluation", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)
	assert.Equal(t, "GATEWAY_TIMEOUT", decodeError(t, resp).Error.Code)
}

func TestNotFound(t *testing.T) {
	app := newTestApp(t, proxyConfig("http://127.0.0.1:1"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	backend := newEchoBackend(t)
	app := newTestApp(t, proxyConfig(backend.URL))

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/courses", nil), -1)
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), `http_requests_total{method="GET",path="/api/*",status="201"} 1`)
	assert.Contains(t, string(b), "http_request_duration_seconds")
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	app.Get("/bad", func(c *fiber.Ctx) error { return fiber.ErrBadRequest })
	app.Get("/internal", func(c *fiber.Ctx) error { return errors.New("secret detail") })

	tests := []struct {
		path   string
		status int
		code   string
	}{
		{"/bad", http.StatusBadRequest, "BAD_REQUEST"},
		{"/internal", http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)

			assert.Equal(t, tt.status, resp.StatusCode)
			body := decodeError(t, resp)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.NotContains(t, body.Error.Message, "secret")
		})
	}
}
