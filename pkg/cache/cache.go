// Package cache stores serialized artifacts between runs.
//
// # Backends
//
// [FileCache] keeps entries as files under a directory, sharded by the first
// two hex characters of the key's hash. Entries carry an optional expiry;
// expired or corrupt entries read as misses and are removed. [NullCache]
// stores nothing and is used when caching is disabled.
//
// # Keys
//
// A [Keyer] turns the hash of an input document and the serialization
// options into a cache key:
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.ArtifactKey(cache.Hash(input), cache.ArtifactKeyOpts{Format: "json"})
//
// [ScopedKeyer] prefixes every key, so several configurations can share one
// directory without colliding.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the entry for key. A missing or expired entry is reported
	// as a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the entry for key. Deleting a missing key is not an
	// error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend.
	Close() error
}
