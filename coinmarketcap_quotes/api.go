package coinmarketcap_quotes

import (
	"context"

	cmc "github.com/z-marketing/sb1-fn7ghc/coinmarketcap"
)

// APIClient fetches raw quotes from the provider
//
//go:generate mockgen -destination=mocks/api_client.go . APIClient
type APIClient interface {
	FetchQuotes(ctx context.Context, slug, currency string) ([]cmc.RawQuote, error)
	Healthy() bool
}
