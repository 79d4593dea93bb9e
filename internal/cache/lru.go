package cache

import (
	lru "github.com/hashicorp/golang-lru"
)

// LruKvStore holds at most a fixed number of entries, evicting the least
// recently used one when full.
type LruKvStore struct {
	items *lru.Cache
}

func NewLruCache(size int) (Cache, error) {
	items, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &LruKvStore{items: items}, nil
}

func (c *LruKvStore) Store(key string, i interface{}) {
	c.items.Add(key, i)
}

func (c *LruKvStore) Get(key string) (interface{}, bool) {
	return c.items.Get(key)
}

func (c *LruKvStore) Length() int {
	return c.items.Len()
}

func (c *LruKvStore) Purge() {
	c.items.Purge()
}
