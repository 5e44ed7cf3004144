package coinmarketcap

import (
	"math"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/z-marketing/sb1-fn7ghc/config"
)

// IRateLimiterManager provides a way to get a rate limiter for an outgoing request
type IRateLimiterManager interface {
	GetLimiterForRequest(req *http.Request) *rate.Limiter
}

// RateLimiterManager keeps one limiter per API key so that services sharing
// a key share its plan limits
type RateLimiterManager struct {
	mu           sync.RWMutex
	keyToLimiter map[string]*rate.Limiter
	config       config.RateLimit
}

// NewRateLimiterManager creates a manager; zero values in cfg fall back to defaults
func NewRateLimiterManager(cfg config.RateLimit) *RateLimiterManager {
	return &RateLimiterManager{
		keyToLimiter: make(map[string]*rate.Limiter),
		config:       cfg,
	}
}

// Defaults in requests per minute, used when config is not provided
const defaultRPM = 30

// GetLimiterForRequest returns the limiter for the request's API key header
func (m *RateLimiterManager) GetLimiterForRequest(req *http.Request) *rate.Limiter {
	if m == nil || req == nil {
		return nil
	}
	return m.getLimiterForKey(req.Header.Get(APIKeyHeader))
}

// getLimiterForKey returns a limiter for a given api key, creating it if missing
func (m *RateLimiterManager) getLimiterForKey(key string) *rate.Limiter {
	m.mu.RLock()
	if lim, ok := m.keyToLimiter[key]; ok {
		m.mu.RUnlock()
		return lim
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if lim, ok := m.keyToLimiter[key]; ok {
		return lim
	}

	limit := m.limit()
	limiter := rate.NewLimiter(limit, m.burst(limit))
	m.keyToLimiter[key] = limiter
	return limiter
}

func (m *RateLimiterManager) limit() rate.Limit {
	rpm := m.config.RateLimitPerMinute
	if rpm <= 0 {
		rpm = defaultRPM
	}
	return rate.Limit(float64(rpm) / 60.0)
}

func (m *RateLimiterManager) burst(limit rate.Limit) int {
	if m.config.Burst > 0 {
		return m.config.Burst
	}
	if limit <= 1.0 {
		return 1
	}
	return int(math.Ceil(float64(limit)))
}
