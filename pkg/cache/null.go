package cache

import (
	"context"
	"time"
)

// NullCache stores nothing: every lookup misses and every write is dropped.
// The CLI uses it for --no-cache and when no cache directory is available.
type NullCache struct{}

var _ Cache = NullCache{}

// NewNullCache returns a cache that never holds artifacts.
func NewNullCache() Cache { return NullCache{} }

// Get reports a miss.
func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set discards data.
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Delete is a no-op.
func (NullCache) Delete(context.Context, string) error { return nil }

// Close is a no-op.
func (NullCache) Close() error { return nil }
