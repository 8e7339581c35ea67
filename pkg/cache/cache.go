// Package cache provides byte-level caching with pluggable backends.
//
// The CLI uses it to keep fetched remote planfiles around between runs
// (~/.cache/taskboard/), so repeated commands against the same URL don't
// re-download. Two backends are provided:
//   - [FileCache]: directory-backed storage with per-entry TTL
//   - [NullCache]: a no-op used when caching is disabled (--no-cache)
//
// Entries are opaque byte slices; callers own serialization. Keys are
// hashed before hitting the filesystem, so any string is a valid key.
package cache

import (
	"context"
	"time"
)

// Cache stores byte values under string keys with optional expiration.
// Implementations must treat a missing key as a miss, not an error.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was found and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
