package coinmarketcap_listings

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/z-marketing/sb1-fn7ghc/cache"
	cmc "github.com/z-marketing/sb1-fn7ghc/coinmarketcap"
	"github.com/z-marketing/sb1-fn7ghc/config"
	"github.com/z-marketing/sb1-fn7ghc/interfaces"
)

// listingsCacheKey is the single slot of the listings cache
const listingsCacheKey = "coins-list"

// Service serves the top listings with RichQuack prepended
type Service struct {
	config config.CoinsListConfig
	client APIClient
	cache  cache.Cache
}

// NewService creates a listings service on top of client and store
func NewService(cfg config.CoinsListConfig, client APIClient, store cache.Cache) *Service {
	return &Service{
		config: cfg,
		client: client,
		cache:  store,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.client == nil || s.cache == nil {
		return fmt.Errorf("coins list service not properly initialized")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {}

// Healthy reports whether the upstream has answered at least once
func (s *Service) Healthy() bool {
	if s.client != nil {
		return s.client.Healthy()
	}
	return false
}

// CoinsList returns the encoded coins list, from cache while it is fresh.
// A caller going away does not cancel a load other callers may be waiting on.
func (s *Service) CoinsList(ctx context.Context) ([]byte, interfaces.CacheStatus, error) {
	loadCtx := context.WithoutCancel(ctx)
	return s.cache.GetOrLoad(listingsCacheKey, func() ([]byte, error) {
		return s.load(loadCtx)
	})
}

func (s *Service) load(ctx context.Context) ([]byte, error) {
	raws, err := s.client.FetchListings(ctx, cmc.ListingsParams{
		Limit:    s.config.Limit,
		Sort:     s.config.Sort,
		SortDir:  s.config.SortDir,
		Currency: s.config.Currency,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch listings: %w", err)
	}

	coins := PrependSynthetic(NormalizeListings(raws))
	data, err := json.Marshal(coins)
	if err != nil {
		return nil, fmt.Errorf("encode coins list: %w", err)
	}

	log.Printf("CoinsList: Cached %d coins", len(coins))
	return data, nil
}
