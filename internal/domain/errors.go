package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a provider call produced no payload.
type ErrorKind string

const (
	// KindConfiguration: the provider key is missing; detected before any network call.
	KindConfiguration ErrorKind = "CONFIGURATION_ERROR"
	// KindTransport: network failure, timeout or an open circuit.
	KindTransport ErrorKind = "TRANSPORT_ERROR"
	// KindUpstream: non-success status or a payload we could not use.
	KindUpstream ErrorKind = "UPSTREAM_ERROR"
)

// ProviderError is the error shape every provider client returns. Message is
// already fit for display to an end user.
type ProviderError struct {
	Provider string    `json:"provider"`
	Kind     ErrorKind `json:"kind"`
	Message  string    `json:"error"`
	Err      error     `json:"-"`
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewConfigurationError(provider, message string) *ProviderError {
	return &ProviderError{Provider: provider, Kind: KindConfiguration, Message: message}
}

func NewTransportError(provider string, err error, format string, args ...interface{}) *ProviderError {
	return &ProviderError{Provider: provider, Kind: KindTransport, Message: fmt.Sprintf(format, args...), Err: err}
}

func NewUpstreamError(provider string, err error, format string, args ...interface{}) *ProviderError {
	return &ProviderError{Provider: provider, Kind: KindUpstream, Message: fmt.Sprintf(format, args...), Err: err}
}

func kindOf(err error) ErrorKind {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

func IsConfigurationError(err error) bool { return kindOf(err) == KindConfiguration }

func IsTransportError(err error) bool { return kindOf(err) == KindTransport }

func IsUpstreamError(err error) bool { return kindOf(err) == KindUpstream }

// ErrorMessage returns the display message of err, unwrapping a ProviderError
// when present.
func ErrorMessage(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Message
	}
	return err.Error()
}
