package coinmarketcap_quotes

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/z-marketing/sb1-fn7ghc/cache"
	"github.com/z-marketing/sb1-fn7ghc/config"
	"github.com/z-marketing/sb1-fn7ghc/interfaces"
)

// Service serves normalized single-coin quotes keyed by slug
type Service struct {
	config config.CryptoDataConfig
	client APIClient
	cache  cache.Cache
}

// NewService creates a quotes service on top of client and store
func NewService(cfg config.CryptoDataConfig, client APIClient, store cache.Cache) *Service {
	return &Service{
		config: cfg,
		client: client,
		cache:  store,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.client == nil || s.cache == nil {
		return fmt.Errorf("crypto data service not properly initialized")
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

// CryptoData returns the encoded quote for slug, from cache while it is fresh.
// An empty slug fails with ErrMissingSlug before touching cache or upstream.
// The load is shared by every caller waiting on slug, so it does not stop when
// ctx is cancelled; the client request timeout bounds it instead.
func (s *Service) CryptoData(ctx context.Context, slug string) ([]byte, interfaces.CacheStatus, error) {
	if slug == "" {
		return nil, interfaces.CacheStatusMiss, ErrMissingSlug
	}

	loadCtx := context.WithoutCancel(ctx)
	return s.cache.GetOrLoad(slug, func() ([]byte, error) {
		return s.load(loadCtx, slug)
	})
}

func (s *Service) load(ctx context.Context, slug string) ([]byte, error) {
	quotes, err := s.client.FetchQuotes(ctx, slug, s.config.Currency)
	if err != nil {
		return nil, fmt.Errorf("fetch quote %q: %w", slug, err)
	}
	if len(quotes) == 0 {
		return nil, ErrCoinNotFound
	}

	quote, err := NormalizeQuote(quotes[0], s.config.Currency, s.config.ImageURLTemplate)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(quote)
	if err != nil {
		return nil, fmt.Errorf("encode quote %q: %w", slug, err)
	}
	return data, nil
}
