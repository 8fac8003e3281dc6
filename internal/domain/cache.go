package domain

import (
	"context"
	"time"
)

// Cache abstracts the key-value store behind the session store so services
// never depend on a concrete backend.
type Cache interface {
	// Get retrieves the value for key, returning ErrCacheMiss when absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key with the given expiration.
	// A zero expiration means no expiry.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping checks backend connectivity.
	Ping(ctx context.Context) error
}
