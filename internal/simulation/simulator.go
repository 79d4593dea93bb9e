package simulation

import (
	"fmt"
	"poe-recomb-sim/internal/cache"
	"poe-recomb-sim/internal/models"
	"sync/atomic"

	"github.com/rs/zerolog"
)

type Config struct {
	// Cache memoises single-side selections. Defaults to an in-memory cache.
	Cache  cache.Cache
	Logger *zerolog.Logger
}

// Simulator runs recombinations, sharing memoised selections between runs.
// It is safe for concurrent use.
type Simulator struct {
	cache       cache.Cache
	logger      zerolog.Logger
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
}

func New(config Config) *Simulator {
	s := &Simulator{
		cache:  config.Cache,
		logger: zerolog.Nop(),
	}
	if s.cache == nil {
		s.cache = cache.NewMemoryCache()
	}
	if config.Logger != nil {
		s.logger = *config.Logger
	}
	return s
}

func NewSimulator() *Simulator {
	return New(Config{})
}

func (s *Simulator) CacheStats() (hits int64, misses int64) {
	return s.cacheHits.Load(), s.cacheMisses.Load()
}

func (s *Simulator) lookup(key string) (interface{}, bool) {
	value, ok := s.cache.Get(key)
	if ok {
		s.cacheHits.Add(1)
		return value, true
	}
	s.cacheMisses.Add(1)
	return nil, false
}

// selectionCacheKey includes the affix type so prefix and suffix pools with
// identical contents never share an entry.
func selectionCacheKey[T models.AffixType](count int, pool models.AffixBag[T]) string {
	var zero T
	return fmt.Sprintf("select|%T|%d|%s", zero, count, pool.Key())
}
