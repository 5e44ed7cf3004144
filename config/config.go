package config

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/z-marketing/sb1-fn7ghc/cache"
	"gopkg.in/yaml.v3"
)

const (
	// EnvAPIKey holds the CoinMarketCap Pro API key
	EnvAPIKey = "CMC_API_KEY"
	// EnvPort overrides the HTTP listen port
	EnvPort = "PORT"

	defaultPort = "8080"
)

type Config struct {
	Port          string              `yaml:"port"`
	CoinMarketCap CoinMarketCapConfig `yaml:"coinmarketcap"`
	CoinsList     CoinsListConfig     `yaml:"coins_list"`
	CryptoData    CryptoDataConfig    `yaml:"crypto_data"`
	Widget        WidgetConfig        `yaml:"widget"`
	Cache         cache.Config        `yaml:"cache"`
}

// Default returns a configuration with every field set to its default value
func Default() *Config {
	return &Config{
		Port:          defaultPort,
		CoinMarketCap: DefaultCoinMarketCapConfig(),
		CoinsList:     DefaultCoinsListConfig(),
		CryptoData:    DefaultCryptoDataConfig(),
		Widget:        DefaultWidgetConfig(),
		Cache:         cache.DefaultCacheConfig(),
	}
}

// LoadConfig reads the YAML file at path on top of the defaults and applies
// environment overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("Config: %s not found, using defaults", path)
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyDefaults()
	cfg.ApplyEnv()

	return cfg, nil
}

// ApplyEnv copies PORT and CMC_API_KEY from the environment into the config
func (c *Config) ApplyEnv() {
	if port := os.Getenv(EnvPort); port != "" {
		c.Port = port
	}

	if key := os.Getenv(EnvAPIKey); key != "" {
		c.CoinMarketCap.APIKey = key
	}

	if c.CoinMarketCap.APIKey == "" {
		log.Printf("Warning: %s is not set, upstream requests will fail authentication", EnvAPIKey)
	}
}

// applyDefaults fills zero values left by a partial YAML file
func (c *Config) applyDefaults() {
	if c.Port == "" {
		c.Port = defaultPort
	}
	c.CoinMarketCap.applyDefaults()
	c.CoinsList.applyDefaults()
	c.CryptoData.applyDefaults()
	c.Widget.applyDefaults()
}
