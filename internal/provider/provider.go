// Package provider defines the outbound side of the relay: one Provider per
// generative-text backend, each able to build its single upstream request.
package provider

import (
	"context"
	"net/http"
)

// Provider defines the interface all generative-text backends must implement.
type Provider interface {
	// Name returns the provider identifier used in /api/{provider}
	Name() string

	// BaseURL returns the provider's API root
	BaseURL() string

	// NewRequest builds the upstream POST carrying text wrapped in the
	// prompt template and authenticated with apiKey.
	NewRequest(ctx context.Context, apiKey, text string) (*http.Request, error)
}
