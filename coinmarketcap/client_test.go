package coinmarketcap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/z-marketing/sb1-fn7ghc/config"
)

const listingsBody = `{
  "status": {"timestamp": "2024-06-01T12:00:00.000Z", "error_code": 0, "error_message": null},
  "data": [
    {"id": 1, "name": "Bitcoin", "symbol": "BTC", "slug": "bitcoin", "cmc_rank": 1,
     "quote": {"USD": {"price": 67000.12, "market_cap": 1320000000000, "volume_24h": 25000000000, "percent_change_24h": 1.5}}},
    {"id": 1027, "name": "Ethereum", "symbol": "ETH", "slug": "ethereum", "cmc_rank": 2,
     "quote": {"USD": {"price": 3500.5, "market_cap": 420000000000, "volume_24h": 12000000000, "percent_change_24h": -0.7}}}
  ]
}`

const quotesBody = `{
  "status": {"error_code": 0},
  "data": {
    "1027": {"id": 1027, "name": "Ethereum", "symbol": "ETH", "slug": "ethereum",
             "quote": {"USD": {"price": 3500.5, "market_cap": 420000000000, "volume_24h": 12000000000, "percent_change_24h": -0.7}}},
    "52": {"id": 52, "name": "XRP", "symbol": "XRP", "slug": "xrp", "quote": {}}
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.DefaultCoinMarketCapConfig()
	cfg.OverrideBaseURL = server.URL
	cfg.APIKey = "test-key"
	cfg.Retry.MaxRetries = 1
	cfg.Retry.BaseBackoff = time.Millisecond
	cfg.RateLimit = config.RateLimit{RateLimitPerMinute: 6000, Burst: 100}

	client := NewClient(cfg, "Test-CMC", nil, NewRateLimiterManager(cfg.RateLimit))
	return client, server
}

func TestClient_FetchListings(t *testing.T) {
	var gotReq *http.Request
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotReq = r
		w.Write([]byte(listingsBody))
	})

	assert.False(t, client.Healthy())

	listings, err := client.FetchListings(context.Background(), ListingsParams{
		Limit:    100,
		Sort:     "market_cap",
		SortDir:  "desc",
		Currency: "USD",
	})
	require.NoError(t, err)
	require.Len(t, listings, 2)

	assert.Equal(t, "bitcoin", listings[0].Slug)
	assert.Equal(t, "Ethereum", listings[1].Name)
	assert.Equal(t, 67000.12, listings[0].Quote["USD"].Price)
	assert.True(t, client.Healthy())

	require.NotNil(t, gotReq)
	assert.Equal(t, ListingsPath, gotReq.URL.Path)
	assert.Equal(t, "100", gotReq.URL.Query().Get("limit"))
	assert.Equal(t, "market_cap", gotReq.URL.Query().Get("sort"))
	assert.Equal(t, "desc", gotReq.URL.Query().Get("sort_dir"))
	assert.Equal(t, "USD", gotReq.URL.Query().Get("convert"))
	assert.Equal(t, "test-key", gotReq.Header.Get(APIKeyHeader))
}

func TestClient_FetchListings_MissingData(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":{"error_code":0}}`))
	})

	_, err := client.FetchListings(context.Background(), ListingsParams{Limit: 1})
	assert.ErrorIs(t, err, ErrMalformedData)
}

func TestClient_FetchListings_InvalidJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := client.FetchListings(context.Background(), ListingsParams{Limit: 1})
	assert.ErrorIs(t, err, ErrMalformedData)
}

func TestClient_FetchListings_UpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":{"error_code":1001,"error_message":"This API Key is invalid."}}`))
	})

	_, err := client.FetchListings(context.Background(), ListingsParams{Limit: 1})

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusUnauthorized, upstreamErr.StatusCode)
	assert.Equal(t, "This API Key is invalid.", upstreamErr.Message)
	assert.False(t, client.Healthy())
}

func TestClient_FetchQuotes(t *testing.T) {
	var gotReq *http.Request
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotReq = r
		w.Write([]byte(quotesBody))
	})

	quotes, err := client.FetchQuotes(context.Background(), "ethereum", "USD")
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	// Ordered by numeric id, not lexically
	assert.Equal(t, 52, quotes[0].ID)
	assert.Equal(t, 1027, quotes[1].ID)

	assert.Equal(t, QuotesPath, gotReq.URL.Path)
	assert.Equal(t, "ethereum", gotReq.URL.Query().Get("slug"))
	assert.Equal(t, "USD", gotReq.URL.Query().Get("convert"))
}

func TestClient_FetchQuotes_Empty(t *testing.T) {
	for _, body := range []string{`{"data":{}}`, `{"data":null}`, `{"status":{}}`} {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})

		quotes, err := client.FetchQuotes(context.Background(), "nope", "USD")
		require.NoError(t, err, body)
		assert.Empty(t, quotes, body)
	}
}

func TestClient_FetchQuotes_TransportError(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := client.FetchQuotes(context.Background(), "bitcoin", "USD")

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, 0, upstreamErr.StatusCode)
	assert.NotEmpty(t, upstreamErr.Message)
}

func TestSortedQuotes(t *testing.T) {
	data := map[string]RawQuote{
		"100": {ID: 100},
		"9":   {ID: 9},
		"abc": {ID: -1},
		"20":  {ID: 20},
	}

	quotes := sortedQuotes(data)
	require.Len(t, quotes, 4)
	assert.Equal(t, 9, quotes[0].ID)
	assert.Equal(t, 20, quotes[1].ID)
	assert.Equal(t, 100, quotes[2].ID)
}

func TestParseErrorMessage(t *testing.T) {
	assert.Equal(t, "API key missing.", parseErrorMessage([]byte(`{"status":{"error_message":"API key missing."}}`)))
	assert.Equal(t, "", parseErrorMessage([]byte(`{"error":"x"}`)))
	assert.Equal(t, "", parseErrorMessage([]byte(`<html>`)))
}
