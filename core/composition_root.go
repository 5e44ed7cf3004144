package core

import (
	"context"
	"log"

	"github.com/z-marketing/sb1-fn7ghc/api"
	"github.com/z-marketing/sb1-fn7ghc/cache"
	cmc "github.com/z-marketing/sb1-fn7ghc/coinmarketcap"
	"github.com/z-marketing/sb1-fn7ghc/coinmarketcap_listings"
	"github.com/z-marketing/sb1-fn7ghc/coinmarketcap_quotes"
	"github.com/z-marketing/sb1-fn7ghc/config"
	"github.com/z-marketing/sb1-fn7ghc/metrics"
)

// Setup creates and registers all services
func Setup(ctx context.Context, cfg *config.Config) (*Registry, error) {
	registry := NewRegistry()

	// Both clients share one limiter per API key so the plan limit holds across endpoints
	limiterManager := cmc.NewRateLimiterManager(cfg.CoinMarketCap.RateLimit)

	listingsClient := cmc.NewClient(cfg.CoinMarketCap, "CoinsList",
		metrics.NewMetricsWriter(metrics.ServiceCoinsList), limiterManager)
	listingsStore := cache.NewStore(metrics.ServiceCoinsList, cfg.CoinsList.TTL, cfg.Cache)
	coinsListService := coinmarketcap_listings.NewService(cfg.CoinsList, listingsClient, listingsStore)
	registry.Register(coinsListService)

	quotesClient := cmc.NewClient(cfg.CoinMarketCap, "CryptoData",
		metrics.NewMetricsWriter(metrics.ServiceCryptoData), limiterManager)
	quotesStore := cache.NewStore(metrics.ServiceCryptoData, cfg.CryptoData.TTL, cfg.Cache)
	cryptoDataService := coinmarketcap_quotes.NewService(cfg.CryptoData, quotesClient, quotesStore)
	registry.Register(cryptoDataService)

	log.Printf("Core: coins list ttl=%s, crypto data ttl=%s, single flight=%t",
		cfg.CoinsList.TTL, cfg.CryptoData.TTL, cfg.Cache.SingleFlight)

	server := api.New(cfg.Port, coinsListService, cryptoDataService)
	registry.Register(server)

	return registry, nil
}
