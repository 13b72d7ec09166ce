// Package domain contains the core entities and rules for the travel search proxy.
// These entities are transport-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the proxy error taxonomy. Handlers map these to HTTP
// status codes and caller-facing messages.
var (
	// ErrTokenNotConfigured indicates the provider API token env var is missing.
	ErrTokenNotConfigured = errors.New("API token not configured")

	// ErrInvalidRequest indicates the caller supplied bad or missing input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUpstreamAuth indicates the provider rejected our token (401).
	ErrUpstreamAuth = errors.New("invalid API token")

	// ErrUpstreamRateLimited indicates the provider throttled us (429).
	ErrUpstreamRateLimited = errors.New("rate limit exceeded")

	// ErrUpstreamUnavailable indicates a provider-side failure (5xx).
	ErrUpstreamUnavailable = errors.New("provider unavailable")

	// ErrUpstreamTimeout indicates the outbound call exceeded its bound.
	ErrUpstreamTimeout = errors.New("request timeout")
)

// UpstreamError describes a non-2xx response from the travel data provider.
// It wraps one of the taxonomy sentinels so callers can branch with errors.Is
// while keeping the raw status code for logging.
type UpstreamError struct {
	// Endpoint is the provider endpoint tag that was being queried.
	Endpoint string

	// StatusCode is the HTTP status the provider returned.
	StatusCode int

	// kind is the taxonomy sentinel this error maps to.
	kind error
}

// NewUpstreamError classifies a provider status code into the error taxonomy.
func NewUpstreamError(endpoint string, statusCode int) *UpstreamError {
	var kind error
	switch {
	case statusCode == 401:
		kind = ErrUpstreamAuth
	case statusCode == 429:
		kind = ErrUpstreamRateLimited
	case statusCode >= 500:
		kind = ErrUpstreamUnavailable
	default:
		kind = nil
	}
	return &UpstreamError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		kind:       kind,
	}
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	switch {
	case errors.Is(e.kind, ErrUpstreamAuth):
		return "Invalid API token. Please check your TRAVELPAYOUTS_API_TOKEN."
	case errors.Is(e.kind, ErrUpstreamRateLimited):
		return "Rate limit exceeded. Please try again later."
	case errors.Is(e.kind, ErrUpstreamUnavailable):
		return "Travelpayouts API is currently unavailable. Please try again later."
	default:
		return fmt.Sprintf("API responded with status %d", e.StatusCode)
	}
}

// Unwrap exposes the taxonomy sentinel for errors.Is checks.
func (e *UpstreamError) Unwrap() error {
	return e.kind
}

// WrapInvalidRequest creates a validation error wrapping ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is a caller input error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsTimeout reports whether err is an outbound timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrUpstreamTimeout)
}
