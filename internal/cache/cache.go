package cache

// Cache is a concurrency-safe key/value store for computed results. Stored
// values are shared between callers and must not be modified after Store.
type Cache interface {
	Store(key string, i interface{})
	Get(key string) (interface{}, bool)
	Length() int
	Purge()
}
