package coinmarketcap

const (
	// Base URL for the Pro API
	COINMARKETCAP_PRO_URL = "https://pro-api.coinmarketcap.com"

	// ListingsPath returns the latest listings ranked by the requested sort
	ListingsPath = "/v1/cryptocurrency/listings/latest"
	// QuotesPath returns latest quotes for one or more coins
	QuotesPath = "/v1/cryptocurrency/quotes/latest"

	// APIKeyHeader carries the Pro API key on every request
	APIKeyHeader = "X-CMC_PRO_API_KEY"
)
