// SPDX-License-Identifier: MIT

// Package cache stores encoded query results between runs and processes.
//
// Backends:
//   - NullCache: never stores anything (caching disabled)
//   - FileCache: JSON entries on local disk, for the CLI
//   - RedisCache: shared storage for service deployments
//
// Keys are produced with Key, which hashes arbitrary JSON-encodable parts
// under a readable prefix.
package cache

import (
	"context"
	"errors"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
// Get reports a miss with hit == false and a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ErrBackend wraps failures of the underlying store.
var ErrBackend = errors.New("cache: backend failure")
