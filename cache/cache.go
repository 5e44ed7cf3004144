package cache

import (
	"github.com/z-marketing/sb1-fn7ghc/interfaces"
)

// LoaderFunc produces a fresh payload for a key that is missing or stale.
// Errors are returned to the caller and nothing is stored.
type LoaderFunc func() ([]byte, error)

// Cache is a single-purpose TTL cache holding encoded payloads
type Cache interface {
	// GetOrLoad returns the payload stored under key while it is fresh,
	// otherwise calls loader, stores its result and returns it.
	//
	// Returns:
	// - []byte: payload, byte-identical to what was stored
	// - interfaces.CacheStatus: hit when served from cache, miss when loaded
	// - error: loader error
	GetOrLoad(key string, loader LoaderFunc) ([]byte, interfaces.CacheStatus, error)

	// Get returns the payload for key when it is younger than the TTL
	Get(key string) ([]byte, bool)

	// Set stores payload under key stamped with the current time,
	// replacing any previous entry
	Set(key string, payload []byte)
}
