package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery signals a blank query after trimming.
	ErrEmptyQuery = errors.New("query must not be empty")
	// ErrProviderNotConfigured signals a missing credential for the routed branch.
	ErrProviderNotConfigured = errors.New("search provider not configured")
	// ErrUpstream signals a failed call to an external dependency.
	ErrUpstream = errors.New("upstream provider error")
	// ErrRoutingExhausted signals that neither an answer nor a route could be determined.
	ErrRoutingExhausted = errors.New("unable to determine search method")
)

// Dependency names reported in upstream errors.
const (
	DependencyClassifier       = "classifier"
	DependencyGeneralSearch    = "general_search"
	DependencyPlatformFallback = "platform_fallback"
)

// UpstreamError wraps ErrUpstream with the name of the failing dependency.
type UpstreamError struct {
	Dependency string
	Cause      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrUpstream.Error(), e.Dependency, e.Cause)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

// NewUpstreamError creates an upstream error naming the failing dependency.
func NewUpstreamError(dependency string, cause error) error {
	return &UpstreamError{Dependency: dependency, Cause: cause}
}
