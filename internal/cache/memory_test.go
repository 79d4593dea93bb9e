package cache_test

import (
	"fmt"
	"poe-recomb-sim/internal/cache"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Count int
	Key   string
}

func TestMemoryCache(t *testing.T) {
	memoryCache := cache.NewMemoryCache()

	memoryCache.Store("select|1|[a]", entry{Count: 1, Key: "[a]"})
	memoryCache.Store("select|2|[a,b]", entry{Count: 2, Key: "[a,b]"})

	a, ok := memoryCache.Get("select|1|[a]")
	assert.True(t, ok)
	assert.Equal(t, a.(entry).Count, 1)
	assert.Equal(t, a.(entry).Key, "[a]")

	b, ok := memoryCache.Get("select|2|[a,b]")
	assert.True(t, ok)
	assert.Equal(t, b.(entry).Count, 2)

	_, ok = memoryCache.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, memoryCache.Length())

	memoryCache.Purge()
	_, ok = memoryCache.Get("select|1|[a]")
	assert.False(t, ok)
	assert.Equal(t, 0, memoryCache.Length())
}

func TestMemoryCache_Concurrent(t *testing.T) {
	memoryCache := cache.NewMemoryCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i%10)
			memoryCache.Store(key, i)
			_, _ = memoryCache.Get(key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, memoryCache.Length())
}

func TestNoopCache(t *testing.T) {
	noop := cache.NewNoopCache()
	noop.Store("a", 1)

	_, ok := noop.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, noop.Length())
}

func TestLruCache_Bounded(t *testing.T) {
	lruCache, err := cache.NewLruCache(10)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		lruCache.Store(fmt.Sprintf("key-%d", i), i)
		assert.LessOrEqual(t, lruCache.Length(), 10)
	}
	assert.Equal(t, 10, lruCache.Length())

	_, ok := lruCache.Get("key-0")
	assert.False(t, ok)
	v, ok := lruCache.Get("key-99")
	assert.True(t, ok)
	assert.Equal(t, 99, v)

	lruCache.Purge()
	assert.Equal(t, 0, lruCache.Length())
}

func TestLruCache_InvalidSize(t *testing.T) {
	_, err := cache.NewLruCache(0)
	assert.Error(t, err)
}
