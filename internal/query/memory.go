package query

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps entries in process memory. It is the default store
// and suitable for a single server. Use RedisStore to share a cache
// between replicas.
type MemoryStore struct {
	c      *cache.Cache
	closed atomic.Bool
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a store whose entries expire after ttl and are
// swept every cleanup interval.
func NewMemoryStore(ttl, cleanup time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &MemoryStore{c: cache.New(ttl, cleanup)}
}

// Get implements Store.
func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if m.closed.Load() {
		return nil, false, ErrStoreClosed{}
	}
	v, ok := m.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	return v.([]byte), true, nil
}

// Set implements Store.
func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if m.closed.Load() {
		return ErrStoreClosed{}
	}
	if ttl <= 0 {
		ttl = cache.DefaultExpiration
	}
	m.c.Set(key, value, ttl)
	return nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		m.c.Delete(k)
	}
	return nil
}

// Clear implements Store.
func (m *MemoryStore) Clear(context.Context) error {
	m.c.Flush()
	return nil
}

// Len returns the number of stored entries, including expired entries not
// yet swept.
func (m *MemoryStore) Len() int {
	return m.c.ItemCount()
}

// Close flushes the store. go-cache stops its janitor when the cache is
// garbage collected.
func (m *MemoryStore) Close() error {
	m.closed.Store(true)
	m.c.Flush()
	return nil
}
