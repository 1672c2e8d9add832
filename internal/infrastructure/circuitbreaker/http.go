package circuitbreaker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/seu-repo/mcp-chatbot/internal/observability/telemetry"
)

const (
	maxBodyBytes = 4 << 20
	userAgent    = "mcp-chatbot/1.0"
)

// StatusError is returned for any non-2xx response. Body holds the first
// bytes of the response so callers can surface the provider's message.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// DecodeError means the response was 2xx but not the JSON we expected.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// HTTPClient wraps an HTTP client with circuit breaker protection, an
// optional rate limit and a client span per request.
type HTTPClient struct {
	name    string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	limiter *rate.Limiter
	tracer  trace.Tracer
	log     *zap.Logger
}

// HTTPClientSettings configures the HTTP client with circuit breaker
type HTTPClientSettings struct {
	Name    string
	Timeout time.Duration
	Breaker Settings
	// RequestsPerMinute throttles outbound calls; zero disables the limit.
	RequestsPerMinute int
	// Transport overrides the default round tripper.
	Transport http.RoundTripper
}

// DefaultHTTPClientSettings returns default settings
func DefaultHTTPClientSettings(name string) HTTPClientSettings {
	return HTTPClientSettings{
		Name:    name,
		Timeout: 10 * time.Second,
		Breaker: DefaultSettings(),
	}
}

func NewHTTPClient(settings HTTPClientSettings, log *zap.Logger) *HTTPClient {
	if settings.Timeout <= 0 {
		settings.Timeout = 10 * time.Second
	}

	c := &HTTPClient{
		name:    settings.Name,
		client:  &http.Client{Timeout: settings.Timeout, Transport: settings.Transport},
		breaker: New(settings.Name, settings.Breaker, log),
		tracer:  otel.Tracer("github.com/seu-repo/mcp-chatbot/circuitbreaker"),
		log:     log.With(zap.String("provider", settings.Name)),
	}
	if settings.RequestsPerMinute > 0 {
		rpm := settings.RequestsPerMinute
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), rpm)
	}
	return c
}

// Name identifies the provider this client talks to.
func (c *HTTPClient) Name() string { return c.name }

// GetJSON issues GET endpoint?params and decodes a 2xx body into out.
func (c *HTTPClient) GetJSON(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	body, err := c.Fetch(ctx, endpoint, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.log.Warn("Provider returned an unexpected payload",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return &DecodeError{Err: err}
	}
	return nil
}

// Fetch issues GET endpoint?params and returns the body of a 2xx response.
// Server errors and transport failures count against the breaker; 4xx
// responses do not.
func (c *HTTPClient) Fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, "GET "+c.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("provider", c.name),
			attribute.String("http.url", endpoint),
		),
	)
	defer span.End()

	start := time.Now()
	status, body, err := c.do(ctx, endpoint, params)
	telemetry.ProviderLatency.WithLabelValues(c.name).Observe(time.Since(start).Seconds())
	span.SetAttributes(attribute.Int("http.status_code", status))

	if err == nil && (status < 200 || status > 299) {
		err = &StatusError{StatusCode: status, Body: body}
	}

	telemetry.ProviderRequestsTotal.WithLabelValues(c.name, outcome(status, err)).Inc()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.log.Warn("Provider request failed",
			zap.String("endpoint", endpoint),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}

	c.log.Debug("Provider request completed",
		zap.String("endpoint", endpoint),
		zap.Duration("duration", time.Since(start)),
	)
	return body, nil
}

func (c *HTTPClient) do(ctx context.Context, endpoint string, params url.Values) (int, []byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	target := endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", redactURL(err, endpoint))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	var status int
	var body []byte
	_, err = c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.client.Do(req)
		if err != nil {
			return nil, redactURL(err, endpoint)
		}
		defer resp.Body.Close()

		status = resp.StatusCode
		body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}
		if status >= 500 {
			return nil, &StatusError{StatusCode: status, Body: body}
		}
		return nil, nil
	})
	if err != nil && IsCircuitOpen(err) {
		c.log.Warn("Circuit breaker open, request blocked", zap.String("endpoint", endpoint))
	}
	return status, body, err
}

func outcome(status int, err error) string {
	switch {
	case err == nil:
		return "ok"
	case IsCircuitOpen(err):
		return "circuit_open"
	case status >= 500:
		return "http_5xx"
	case status >= 400:
		return "http_4xx"
	default:
		return "transport_error"
	}
}

// redactURL swaps the request URL inside a *url.Error for the bare endpoint.
// The query string carries the API key and must not reach logs or spans.
func redactURL(err error, endpoint string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: endpoint, Err: urlErr.Err}
	}
	return err
}
