package config

import "time"

// CoinMarketCapConfig configures the upstream client
type CoinMarketCapConfig struct {
	// APIKey is normally supplied through CMC_API_KEY rather than the file
	APIKey          string          `yaml:"api_key"`
	OverrideBaseURL string          `yaml:"override_base_url"`
	Retry           RetryConfig     `yaml:"retry"`
	RateLimit       RateLimit       `yaml:"rate_limit"`
	Timeouts        TimeoutSettings `yaml:"timeouts"`
}

// RetryConfig controls retries of failed upstream requests
type RetryConfig struct {
	// MaxRetries is the total number of attempts, including the first one
	MaxRetries  int           `yaml:"max_retries"`
	BaseBackoff time.Duration `yaml:"base_backoff"`
}

// RateLimit represents a simple rpm + burst pair
type RateLimit struct {
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
	Burst              int `yaml:"burst"`
}

type TimeoutSettings struct {
	Connection time.Duration `yaml:"connection"`
	Request    time.Duration `yaml:"request"`
}

func DefaultCoinMarketCapConfig() CoinMarketCapConfig {
	return CoinMarketCapConfig{
		Retry: RetryConfig{
			MaxRetries:  2,
			BaseBackoff: 500 * time.Millisecond,
		},
		// Basic plan allows 30 requests per minute
		RateLimit: RateLimit{
			RateLimitPerMinute: 30,
			Burst:              5,
		},
		Timeouts: TimeoutSettings{
			Connection: 10 * time.Second,
			Request:    30 * time.Second,
		},
	}
}

func (c *CoinMarketCapConfig) applyDefaults() {
	def := DefaultCoinMarketCapConfig()
	if c.Retry.MaxRetries <= 0 {
		c.Retry.MaxRetries = def.Retry.MaxRetries
	}
	if c.Retry.BaseBackoff <= 0 {
		c.Retry.BaseBackoff = def.Retry.BaseBackoff
	}
	if c.RateLimit.RateLimitPerMinute <= 0 {
		c.RateLimit.RateLimitPerMinute = def.RateLimit.RateLimitPerMinute
	}
	if c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = def.RateLimit.Burst
	}
	if c.Timeouts.Connection <= 0 {
		c.Timeouts.Connection = def.Timeouts.Connection
	}
	if c.Timeouts.Request <= 0 {
		c.Timeouts.Request = def.Timeouts.Request
	}
}
