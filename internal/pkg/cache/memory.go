package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore is an in-process cache using the 'patrickmn/go-cache' library.
type MemoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore creates a store whose entries expire after defaultTTL.
// Expired items are purged every cleanupInterval.
func NewMemoryStore(defaultTTL, cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{cache: gocache.New(defaultTTL, cleanupInterval)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	val, found := m.cache.Get(key)
	if !found {
		return nil, ErrCacheMiss
	}
	raw, ok := val.([]byte)
	if !ok {
		return nil, ErrCacheMiss
	}
	return raw, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	m.cache.Set(key, value, ttl)
	return nil
}

// InvalidateAll flushes the whole cache; the store holds nothing but this namespace.
func (m *MemoryStore) InvalidateAll(_ context.Context) error {
	m.cache.Flush()
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
