// Package external holds the provider clients and the error mapping they share.
package external

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/seu-repo/mcp-chatbot/internal/domain"
	"github.com/seu-repo/mcp-chatbot/internal/infrastructure/circuitbreaker"
)

// Wrap converts an error from the shared HTTP client into a ProviderError
// whose message starts with prefix. Request URLs never reach the message
// because they carry the API key.
func Wrap(provider string, err error, prefix string) *domain.ProviderError {
	var statusErr *circuitbreaker.StatusError
	var decodeErr *circuitbreaker.DecodeError
	var netErr net.Error

	switch {
	case errors.As(err, &statusErr):
		return domain.NewUpstreamError(provider, err, "%s: %s", prefix, StatusMessage(statusErr))
	case errors.As(err, &decodeErr):
		return domain.NewUpstreamError(provider, err, "%s: unexpected response format", prefix)
	case circuitbreaker.IsCircuitOpen(err):
		return domain.NewTransportError(provider, err, "%s: %s is temporarily unavailable", prefix, provider)
	case errors.As(err, &netErr) && netErr.Timeout():
		return domain.NewTransportError(provider, err, "%s: request timed out", prefix)
	default:
		return domain.NewTransportError(provider, err, "%s: %s", prefix, redact(err))
	}
}

// StatusMessage prefers the provider's own "message" field and falls back
// to the HTTP status text.
func StatusMessage(e *circuitbreaker.StatusError) string {
	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(e.Body, &body) == nil && strings.TrimSpace(body.Message) != "" {
		return body.Message
	}
	if text := http.StatusText(e.StatusCode); text != "" {
		return text
	}
	return e.Error()
}

func redact(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err.Error()
	}
	return err.Error()
}
