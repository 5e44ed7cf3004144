package coinmarketcap_listings

import (
	"context"

	cmc "github.com/z-marketing/sb1-fn7ghc/coinmarketcap"
)

// APIClient fetches raw listings from the provider
//
//go:generate mockgen -destination=mocks/api_client.go . APIClient
type APIClient interface {
	FetchListings(ctx context.Context, params cmc.ListingsParams) ([]cmc.RawListing, error)
	Healthy() bool
}
