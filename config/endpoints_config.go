package config

import "time"

// DefaultImageURLTemplate is formatted with the upstream numeric coin id
const DefaultImageURLTemplate = "https://s2.coinmarketcap.com/static/img/coins/64x64/%d.png"

// CoinsListConfig configures the listings endpoint
type CoinsListConfig struct {
	TTL      time.Duration `yaml:"ttl"`
	Limit    int           `yaml:"limit"`
	Sort     string        `yaml:"sort"`
	SortDir  string        `yaml:"sort_dir"`
	Currency string        `yaml:"currency"`
}

// CryptoDataConfig configures the single-quote endpoint
type CryptoDataConfig struct {
	TTL              time.Duration `yaml:"ttl"`
	Currency         string        `yaml:"currency"`
	ImageURLTemplate string        `yaml:"image_url_template"`
}

// WidgetConfig configures the polling widget client
type WidgetConfig struct {
	BaseURL        string        `yaml:"base_url"`
	UpdateInterval time.Duration `yaml:"update_interval"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

func DefaultCoinsListConfig() CoinsListConfig {
	return CoinsListConfig{
		TTL:      5 * time.Minute,
		Limit:    100,
		Sort:     "market_cap",
		SortDir:  "desc",
		Currency: "USD",
	}
}

func DefaultCryptoDataConfig() CryptoDataConfig {
	return CryptoDataConfig{
		TTL:              30 * time.Second,
		Currency:         "USD",
		ImageURLTemplate: DefaultImageURLTemplate,
	}
}

func DefaultWidgetConfig() WidgetConfig {
	return WidgetConfig{
		BaseURL:        "http://localhost:8080/api/v1",
		UpdateInterval: 30 * time.Second,
		RequestTimeout: 10 * time.Second,
	}
}

func (c *CoinsListConfig) applyDefaults() {
	def := DefaultCoinsListConfig()
	if c.TTL <= 0 {
		c.TTL = def.TTL
	}
	if c.Limit <= 0 {
		c.Limit = def.Limit
	}
	if c.Sort == "" {
		c.Sort = def.Sort
	}
	if c.SortDir == "" {
		c.SortDir = def.SortDir
	}
	if c.Currency == "" {
		c.Currency = def.Currency
	}
}

func (c *CryptoDataConfig) applyDefaults() {
	def := DefaultCryptoDataConfig()
	if c.TTL <= 0 {
		c.TTL = def.TTL
	}
	if c.Currency == "" {
		c.Currency = def.Currency
	}
	if c.ImageURLTemplate == "" {
		c.ImageURLTemplate = def.ImageURLTemplate
	}
}

func (c *WidgetConfig) applyDefaults() {
	def := DefaultWidgetConfig()
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.UpdateInterval <= 0 {
		c.UpdateInterval = def.UpdateInterval
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = def.RequestTimeout
	}
}
