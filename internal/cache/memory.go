package cache

import "sync"

type MemoryKvStore struct {
	Items map[string]interface{}
	mu    sync.RWMutex
}

func NewMemoryCache() Cache {
	return &MemoryKvStore{Items: make(map[string]interface{})}
}

func (c *MemoryKvStore) Store(key string, i interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Items[key] = i
}

func (c *MemoryKvStore) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.Items[key]
	return i, ok
}

func (c *MemoryKvStore) Length() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.Items)
}

func (c *MemoryKvStore) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Items = make(map[string]interface{})
}

// NoopCache never holds anything; every Get is a miss.
type NoopCache struct{}

func NewNoopCache() Cache {
	return NoopCache{}
}

func (NoopCache) Store(key string, i interface{}) {}

func (NoopCache) Get(key string) (interface{}, bool) {
	return nil, false
}

func (NoopCache) Length() int {
	return 0
}

func (NoopCache) Purge() {}
