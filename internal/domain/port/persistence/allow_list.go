package persistence

import "context"

// APIKeyAllowList is the set of API keys accepted by the API
type APIKeyAllowList interface {
	// Add stores key and reports whether it was not present before
	Add(ctx context.Context, key string) (bool, error)

	// Contains reports whether key is allowed
	//
	// Possible errors:
	// - ErrAllowListUnavailable: If the list cannot be read
	Contains(ctx context.Context, key string) (bool, error)

	// List returns every allowed key
	List(ctx context.Context) ([]string, error)
}
