package service

import "context"

// Cache keeps short-lived copies of data read on every page view.
type Cache interface {
	// GetOrFetch returns the cached value for key or stores the result of fetch.
	GetOrFetch(ctx context.Context, key string, fetch func(ctx context.Context) (any, error)) (any, error)
}
