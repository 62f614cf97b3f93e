package providers

import (
	"context"
	"errors"
)

// ErrUpstream wraps every provider-side failure during the code exchange.
// Login is a synchronous, user-initiated action; callers surface a generic
// retry instead of distinguishing which upstream step failed.
var ErrUpstream = errors.New("oauth provider request failed")

// UserInfo is the external identity record fetched from the provider.
type UserInfo struct {
	Email   string
	Name    string
	Picture string
}

// Provider defines the interface that all OAuth providers must implement
type Provider interface {
	// LoginURL returns the provider authorization URL for the
	// authorization-code flow. No local state is created.
	LoginURL() string

	// Exchange trades an authorization code for the provider's user-info
	// record. Single best-effort attempt; no retry.
	Exchange(ctx context.Context, code string) (*UserInfo, error)
}
