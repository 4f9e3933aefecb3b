package testutils

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// MemoryCache is an in-process cache.Cache for service tests. Values go
// through JSON exactly like the Redis implementation.
type MemoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
	ttls  map[string]time.Duration
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		items: make(map[string][]byte),
		ttls:  make(map[string]time.Duration),
	}
}

func (m *MemoryCache) Get(_ context.Context, key string, value any) (bool, error) {
	m.mu.Lock()
	data, ok := m.items[key]
	m.mu.Unlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, err
	}

	return true, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = data
	m.ttls[key] = ttl

	return nil
}

func (m *MemoryCache) SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	_, exists := m.items[key]
	m.mu.Unlock()

	if exists {
		return false, nil
	}

	return true, m.Set(ctx, key, value, ttl)
}

func (m *MemoryCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, k := range keys {
		delete(m.items, k)
		delete(m.ttls, k)
	}

	return nil
}

func (m *MemoryCache) Close() error {
	return nil
}

// SetRaw stores bytes as-is, for simulating corrupt persisted data.
func (m *MemoryCache) SetRaw(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = data
}

func (m *MemoryCache) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.items[key]

	return ok
}

// TTL reports the ttl the key was last written with.
func (m *MemoryCache) TTL(key string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ttls[key]
}
