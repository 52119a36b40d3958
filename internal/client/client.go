// Package client is the typed facade over the course backend's HTTP API.
//
// Every exported method maps one-to-one onto a backend endpoint: it builds the
// request (method, path, ordered query string, JSON or multipart body), sends it,
// and decodes the response into the endpoint's contract from internal/model.
//
// All endpoints share one failure policy: a non-2xx answer becomes a *StatusError
// carrying the status and the first 200 characters of the body. Login is the single
// exception; it always decodes the body and reports the HTTP status on the result.
//
// A Client is safe for concurrent use. It never retries and keeps no cache.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"coursehub/internal/config"
	"coursehub/internal/logging"
)

// RequestIDHeader is sent with every request so backend logs can be correlated.
const RequestIDHeader = "X-Request-ID"

// ErrBaseURLRequired is returned by New when the base URL is blank.
var ErrBaseURLRequired = errors.New("base URL is required")

// Client talks to one backend. The base URL includes the /api prefix.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     *zerolog.Logger
	metrics    *clientMetrics
}

// Option customizes a Client.
type Option func(*Client) error

// WithHTTPClient replaces the underlying HTTP client, e.g. with a test double.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc != nil {
			c.httpClient = hc
		}
		return nil
	}
}

// WithTimeout sets an overall per-request timeout. Zero keeps the HTTP client's own.
// It is applied to a copy, so a client passed to WithHTTPClient is never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		c.timeout = d
		return nil
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		c.userAgent = ua
		return nil
	}
}

// WithLogger sets the logger used for per-request debug records.
// By default the global logger from internal/logging is used.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = &l
		return nil
	}
}

// WithMetrics registers request counters on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) error {
		m, err := newClientMetrics(reg)
		if err != nil {
			return fmt.Errorf("register client metrics: %w", err)
		}
		c.metrics = m
		return nil
	}
}

// New creates a Client for baseURL, e.g. http://localhost:8080/api.
// The default transport records an OpenTelemetry span per request.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c, nil
}

// NewFromConfig creates a Client from the client section of the configuration.
// Extra options are applied after the configured ones.
func NewFromConfig(cfg config.ClientConfig, opts ...Option) (*Client, error) {
	base := []Option{WithTimeout(cfg.Timeout), WithUserAgent(cfg.UserAgent)}
	return New(cfg.BaseURL, append(base, opts...)...)
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// request describes one round trip. route is the path template used as a metrics
// label, e.g. "/plans/{id}".
type request struct {
	method string
	route  string
	path   string
	query  *query
	body   any
	form   *multipartForm
}

func (r request) url(base string) string {
	u := base + r.path
	if qs := r.query.Encode(); qs != "" {
		u += "?" + qs
	}
	return u
}

// do sends r and decodes a 2xx body into out. Non-2xx answers become *StatusError.
func (c *Client) do(ctx context.Context, r request, out any) error {
	status, body, err := c.send(ctx, r)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return newStatusError(r.method, r.path, status, body)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", r.method, r.path, err)
	}
	return nil
}

// send performs the round trip and returns the status and full body.
func (c *Client) send(ctx context.Context, r request) (int, []byte, error) {
	reqBody, contentType, err := r.encodeBody()
	if err != nil {
		return 0, nil, fmt.Errorf("encode %s %s: %w", r.method, r.path, err)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, r.url(c.baseURL), reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("create request %s %s: %w", r.method, r.path, err)
	}

	rid := logging.RequestID(ctx)
	if rid == "" {
		rid = uuid.NewString()
	}
	req.Header.Set(RequestIDHeader, rid)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(r, 0)
		c.log().Debug().Err(err).
			Str("request_id", rid).
			Str("method", r.method).
			Str("path", r.path).
			Msg("request failed")
		return 0, nil, fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read %s %s: %w", r.method, r.path, err)
	}

	c.observe(r, resp.StatusCode)
	c.log().Debug().
		Str("request_id", rid).
		Str("method", r.method).
		Str("path", r.path).
		Int("status", resp.StatusCode).
		Float64("latency", float64(time.Since(start).Milliseconds())).
		Msg("request completed")

	return resp.StatusCode, body, nil
}

func (r request) encodeBody() (io.Reader, string, error) {
	switch {
	case r.form != nil:
		return r.form.encode()
	case r.body != nil:
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(b), "application/json", nil
	default:
		return nil, "", nil
	}
}

func (c *Client) log() *zerolog.Logger {
	if c.logger != nil {
		return c.logger
	}
	l := logging.Logger()
	return &l
}

func (c *Client) observe(r request, status int) {
	if c.metrics == nil {
		return
	}
	c.metrics.observe(r.method, r.route, status)
}
