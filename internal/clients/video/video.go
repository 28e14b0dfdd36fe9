package video

import (
	"context"
	"errors"
	"fmt"
)

// Client is the interface for video hosting providers the relay can front.
// Both calls return the provider's JSON body untouched.
type Client interface {
	ListAssets(ctx context.Context) ([]byte, error)
	GetAsset(ctx context.Context, id string) ([]byte, error)
}

// ErrMissingCredentials means the token id or secret is not configured.
var ErrMissingCredentials = errors.New("mux credentials not configured")

// APIError is a non-2xx answer from the provider.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Mux API error: %d", e.StatusCode)
}

// TransportError wraps network failures and unreadable responses.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to reach Mux: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
