// Package cache provides a small key-value cache for computed results.
// Two implementations exist: Redis for deployments and Memory for
// tests/development.
package cache

import "context"

// Cache stores serialized calculation results. A miss is not an error;
// callers recompute and Set.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}
