package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// entry is a payload together with the moment it was stored
type entry struct {
	payload  []byte
	storedAt time.Time
}

// GoCache keeps entries in go-cache without expiration; freshness is
// decided by the caller from storedAt
type GoCache struct {
	cache *cache.Cache
}

// NewGoCache creates a GoCache with no default expiration and no janitor
func NewGoCache() *GoCache {
	return &GoCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get returns the entry stored under key
func (gc *GoCache) Get(key string) (entry, bool) {
	value, found := gc.cache.Get(key)
	if !found {
		return entry{}, false
	}
	e, ok := value.(entry)
	return e, ok
}

// Set replaces the entry stored under key
func (gc *GoCache) Set(key string, payload []byte, storedAt time.Time) {
	gc.cache.Set(key, entry{payload: payload, storedAt: storedAt}, cache.NoExpiration)
}

// ItemCount returns the number of items in cache
func (gc *GoCache) ItemCount() int {
	return gc.cache.ItemCount()
}

