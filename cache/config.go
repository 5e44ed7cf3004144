package cache

// Config represents cache configuration
type Config struct {
	// SingleFlight coalesces concurrent misses for the same key into one load
	SingleFlight bool `yaml:"single_flight"`
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() Config {
	return Config{
		SingleFlight: true,
	}
}
