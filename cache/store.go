package cache

import (
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/z-marketing/sb1-fn7ghc/interfaces"
	"github.com/z-marketing/sb1-fn7ghc/metrics"
)

// Store is a TTL-gated cache for one endpoint kind. Entries are replaced
// wholesale on refresh and are never evicted; a stale entry is simply
// ignored until the next successful load overwrites it.
type Store struct {
	name         string
	ttl          time.Duration
	items        *GoCache
	now          func() time.Time
	singleFlight bool
	group        singleflight.Group
	metrics      *metrics.MetricsWriter
}

// NewStore creates a store named after the service that owns it
func NewStore(name string, ttl time.Duration, config Config) *Store {
	return &Store{
		name:         name,
		ttl:          ttl,
		items:        NewGoCache(),
		now:          time.Now,
		singleFlight: config.SingleFlight,
		metrics:      metrics.NewMetricsWriter(name),
	}
}

// WithClock replaces the time source, used by tests to move time explicitly
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// TTL returns how long an entry stays fresh
func (s *Store) TTL() time.Duration {
	return s.ttl
}

func (s *Store) Get(key string) ([]byte, bool) {
	e, found := s.items.Get(key)
	if !found {
		return nil, false
	}
	if s.now().Sub(e.storedAt) >= s.ttl {
		return nil, false
	}
	return e.payload, true
}

func (s *Store) Set(key string, payload []byte) {
	s.items.Set(key, payload, s.now())
	s.metrics.RecordCacheSize(s.items.ItemCount())
}

func (s *Store) GetOrLoad(key string, loader LoaderFunc) ([]byte, interfaces.CacheStatus, error) {
	if payload, ok := s.Get(key); ok {
		s.metrics.RecordCacheLookup(true)
		return payload, interfaces.CacheStatusHit, nil
	}
	s.metrics.RecordCacheLookup(false)

	if !s.singleFlight {
		payload, err := s.load(key, loader)
		return payload, interfaces.CacheStatusMiss, err
	}

	value, err, _ := s.group.Do(key, func() (interface{}, error) {
		// A flight that finished just before this one may already have stored it
		if payload, ok := s.Get(key); ok {
			return payload, nil
		}
		return s.load(key, loader)
	})
	if err != nil {
		return nil, interfaces.CacheStatusMiss, err
	}
	return value.([]byte), interfaces.CacheStatusMiss, nil
}

func (s *Store) load(key string, loader LoaderFunc) ([]byte, error) {
	payload, err := loader()
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	s.Set(key, payload)
	return payload, nil
}

// ItemCount returns the number of entries, fresh or stale
func (s *Store) ItemCount() int {
	return s.items.ItemCount()
}

