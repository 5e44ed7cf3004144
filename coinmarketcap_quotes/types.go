package coinmarketcap_quotes

import "errors"

var (
	// ErrMissingSlug is returned for a request without a coin identifier
	ErrMissingSlug = errors.New("missing slug parameter")
	// ErrCoinNotFound is returned when the provider has no coin for the slug
	ErrCoinNotFound = errors.New("coin not found")
)

// CoinQuote is the single-coin response consumed by the widget
type CoinQuote struct {
	ID                       string  `json:"id"`
	Symbol                   string  `json:"symbol"`
	Name                     string  `json:"name"`
	Image                    string  `json:"image"`
	CurrentPrice             float64 `json:"current_price"`
	MarketCap                float64 `json:"market_cap"`
	TotalVolume              float64 `json:"total_volume"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
}
