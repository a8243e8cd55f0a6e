// Package cache provides the key/value stores behind the read-through service cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrCacheMiss is the error returned when a key is not found in the cache.
var ErrCacheMiss = errors.New("cache: key not found")

// Store is a byte-oriented cache namespace.
type Store interface {
	// Get returns ErrCacheMiss when key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key. A non-positive ttl uses the store default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// InvalidateAll drops every key of this namespace.
	InvalidateAll(ctx context.Context) error
	Close() error
}

// GetJSON decodes a cached JSON value into dest. found is false on a miss.
func GetJSON(ctx context.Context, s Store, key string, dest interface{}) (found bool, err error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrCacheMiss) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON encodes value as JSON and stores it.
func SetJSON(ctx context.Context, s Store, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw, ttl)
}

// Key joins parts into a cache key: Key("course", "list", "board=CBSE") => "course:list:board=CBSE".
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}
