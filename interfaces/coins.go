package interfaces

import "context"

// CoinsListService serves the normalized listings payload
//
//go:generate mockgen -destination=mocks/coins.go . CoinsListService,CryptoDataService
type CoinsListService interface {
	// CoinsList returns the encoded CoinSummary array, RichQuack first
	CoinsList(ctx context.Context) ([]byte, CacheStatus, error)
	Healthy() bool
}

// CryptoDataService serves the normalized single-coin quote payload
type CryptoDataService interface {
	// CryptoData returns the encoded CoinQuote for slug
	CryptoData(ctx context.Context, slug string) ([]byte, CacheStatus, error)
	Healthy() bool
}
