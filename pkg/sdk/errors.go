package way

import "errors"

// Sentinel errors mapped from API error codes.
// Use errors.Is() to check.
var (
	ErrEmptyQuery            = errors.New("way: query is empty")
	ErrProviderNotConfigured = errors.New("way: provider not configured")
	ErrUpstream              = errors.New("way: upstream provider error")
	ErrRoutingExhausted      = errors.New("way: routing exhausted")
)

// APIError carries the raw error payload returned by the server. It unwraps
// to the matching sentinel so callers can use errors.Is.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Dependency string
}

func (e *APIError) Error() string {
	if e.Dependency != "" {
		return "way: " + e.Code + " (" + e.Dependency + "): " + e.Message
	}
	return "way: " + e.Code + ": " + e.Message
}

func (e *APIError) Unwrap() error {
	switch e.Code {
	case "empty_query":
		return ErrEmptyQuery
	case "provider_not_configured":
		return ErrProviderNotConfigured
	case "upstream_error":
		return ErrUpstream
	case "routing_exhausted":
		return ErrRoutingExhausted
	}
	return nil
}
