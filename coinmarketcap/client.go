package coinmarketcap

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/z-marketing/sb1-fn7ghc/config"
)

// Client issues requests to the CoinMarketCap Pro API
type Client struct {
	baseURL         string
	apiKey          string
	httpClient      *HTTPClientWithRetries
	logPrefix       string
	successfulFetch atomic.Bool
}

// NewClient creates a client reporting request outcomes to reporter.
// Clients created with the same limiter manager share per-key rate limits.
func NewClient(cfg config.CoinMarketCapConfig, logPrefix string, reporter StatusReporter, limiterManager IRateLimiterManager) *Client {
	retryOpts := DefaultRetryOptions()
	retryOpts.LogPrefix = logPrefix
	if cfg.Retry.MaxRetries > 0 {
		retryOpts.Attempts = cfg.Retry.MaxRetries
	}
	if cfg.Retry.BaseBackoff > 0 {
		retryOpts.BaseBackoff = cfg.Retry.BaseBackoff
	}
	if cfg.Timeouts.Connection > 0 {
		retryOpts.DialTimeout = cfg.Timeouts.Connection
	}
	if cfg.Timeouts.Request > 0 {
		retryOpts.Timeout = cfg.Timeouts.Request
	}

	return NewClientWithHTTP(cfg, logPrefix, NewHTTPClientWithRetries(retryOpts, reporter, limiterManager))
}

// NewClientWithHTTP creates a client on top of an existing HTTP client
func NewClientWithHTTP(cfg config.CoinMarketCapConfig, logPrefix string, httpClient *HTTPClientWithRetries) *Client {
	baseURL := COINMARKETCAP_PRO_URL
	if cfg.OverrideBaseURL != "" {
		log.Printf("%s: Using overridden API URL: %s", logPrefix, cfg.OverrideBaseURL)
		baseURL = cfg.OverrideBaseURL
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		logPrefix:  logPrefix,
	}
}

// Healthy reports whether at least one request has succeeded
func (c *Client) Healthy() bool {
	return c.successfulFetch.Load()
}

// FetchListings returns the latest listings page
func (c *Client) FetchListings(ctx context.Context, params ListingsParams) ([]RawListing, error) {
	request, err := NewRequestBuilder(c.baseURL, ListingsPath).
		WithLimit(params.Limit).
		WithSort(params.Sort, params.SortDir).
		WithConvert(params.Currency).
		WithApiKey(c.apiKey).
		Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build listings request: %w", err)
	}

	body, duration, err := c.httpClient.ExecuteRequest(request)
	if err != nil {
		return nil, err
	}
	c.successfulFetch.Store(true)

	var resp listingsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("%w: listings response has no data array", ErrMalformedData)
	}

	log.Printf("%s: Fetched %d listings in %.2fs", c.logPrefix, len(resp.Data), duration.Seconds())
	return resp.Data, nil
}

// FetchQuotes returns the quote records matching slug ordered by numeric id.
// An empty result means the provider knows no such coin.
func (c *Client) FetchQuotes(ctx context.Context, slug, currency string) ([]RawQuote, error) {
	request, err := NewRequestBuilder(c.baseURL, QuotesPath).
		WithSlug(slug).
		WithConvert(currency).
		WithApiKey(c.apiKey).
		Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build quotes request: %w", err)
	}

	body, duration, err := c.httpClient.ExecuteRequest(request)
	if err != nil {
		return nil, err
	}
	c.successfulFetch.Store(true)

	var resp quotesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}

	quotes := sortedQuotes(resp.Data)
	log.Printf("%s: Fetched %d quotes for %q in %.2fs", c.logPrefix, len(quotes), slug, duration.Seconds())
	return quotes, nil
}
