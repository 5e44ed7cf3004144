package coinmarketcap_quotes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/z-marketing/sb1-fn7ghc/cache"
	cmc "github.com/z-marketing/sb1-fn7ghc/coinmarketcap"
	mock_coinmarketcap_quotes "github.com/z-marketing/sb1-fn7ghc/coinmarketcap_quotes/mocks"
	"github.com/z-marketing/sb1-fn7ghc/config"
	"github.com/z-marketing/sb1-fn7ghc/interfaces"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func createTestService(t *testing.T) (*Service, *mock_coinmarketcap_quotes.MockAPIClient, *testClock) {
	ctrl := gomock.NewController(t)
	mockClient := mock_coinmarketcap_quotes.NewMockAPIClient(ctrl)

	cfg := config.DefaultCryptoDataConfig()
	clock := &testClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	store := cache.NewStore("test-crypto-data", cfg.TTL, cache.DefaultCacheConfig()).WithClock(clock.Now)

	return NewService(cfg, mockClient, store), mockClient, clock
}

func TestService_CryptoData(t *testing.T) {
	service, mockClient, _ := createTestService(t)

	mockClient.EXPECT().FetchQuotes(gomock.Any(), "bitcoin", "USD").Return([]cmc.RawQuote{bitcoinQuote()}, nil)

	data, status, err := service.CryptoData(context.Background(), "bitcoin")
	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusMiss, status)
	assert.JSONEq(t, `{
		"id": "bitcoin",
		"symbol": "BTC",
		"name": "Bitcoin",
		"image": "https://s2.coinmarketcap.com/static/img/coins/64x64/1.png",
		"current_price": 67000.12,
		"market_cap": 1320000000000,
		"total_volume": 25000000000,
		"price_change_percentage_24h": -1.25
	}`, string(data))
}

func TestService_CryptoData_MissingSlug(t *testing.T) {
	// No FetchQuotes expectation: any upstream call fails the test
	service, _, _ := createTestService(t)

	_, _, err := service.CryptoData(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingSlug)
	assert.EqualError(t, err, "missing slug parameter")
}

func TestService_CryptoData_NotFound(t *testing.T) {
	service, mockClient, _ := createTestService(t)

	mockClient.EXPECT().FetchQuotes(gomock.Any(), "nope", "USD").Return([]cmc.RawQuote{}, nil).Times(2)

	_, _, err := service.CryptoData(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrCoinNotFound)

	// Not-found results are not cached
	_, _, err = service.CryptoData(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrCoinNotFound)
}

func TestService_CryptoData_UsesFirstRecord(t *testing.T) {
	service, mockClient, _ := createTestService(t)

	other := bitcoinQuote()
	other.ID = 2
	other.Slug = "bitcoin-2"
	mockClient.EXPECT().FetchQuotes(gomock.Any(), "bitcoin", "USD").Return([]cmc.RawQuote{bitcoinQuote(), other}, nil)

	data, _, err := service.CryptoData(context.Background(), "bitcoin")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":"bitcoin"`)
}

func TestService_CryptoData_MalformedUpstream(t *testing.T) {
	service, mockClient, _ := createTestService(t)

	raw := bitcoinQuote()
	raw.Quote = map[string]*cmc.QuoteEntry{}
	mockClient.EXPECT().FetchQuotes(gomock.Any(), "bitcoin", "USD").Return([]cmc.RawQuote{raw}, nil)

	_, _, err := service.CryptoData(context.Background(), "bitcoin")
	assert.ErrorIs(t, err, cmc.ErrMalformedData)
}

func TestService_CryptoData_UpstreamError(t *testing.T) {
	service, mockClient, _ := createTestService(t)

	mockClient.EXPECT().FetchQuotes(gomock.Any(), "bitcoin", "USD").
		Return(nil, &cmc.UpstreamError{StatusCode: 429, Message: "rate limited"})

	_, _, err := service.CryptoData(context.Background(), "bitcoin")

	var upstreamErr *cmc.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, 429, upstreamErr.StatusCode)
}

func TestService_CryptoData_CacheKeyedBySlug(t *testing.T) {
	service, mockClient, clock := createTestService(t)

	eth := bitcoinQuote()
	eth.ID, eth.Slug, eth.Name, eth.Symbol = 1027, "ethereum", "Ethereum", "ETH"

	mockClient.EXPECT().FetchQuotes(gomock.Any(), "bitcoin", "USD").Return([]cmc.RawQuote{bitcoinQuote()}, nil).Times(1)
	mockClient.EXPECT().FetchQuotes(gomock.Any(), "ethereum", "USD").Return([]cmc.RawQuote{eth}, nil).Times(1)

	btc1, _, err := service.CryptoData(context.Background(), "bitcoin")
	require.NoError(t, err)
	eth1, _, err := service.CryptoData(context.Background(), "ethereum")
	require.NoError(t, err)

	clock.now = clock.now.Add(29 * time.Second)

	btc2, status, err := service.CryptoData(context.Background(), "bitcoin")
	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusHit, status)
	assert.Equal(t, btc1, btc2)

	eth2, status, err := service.CryptoData(context.Background(), "ethereum")
	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusHit, status)
	assert.Equal(t, eth1, eth2)
}

func TestService_CryptoData_RefreshAfterTTL(t *testing.T) {
	service, mockClient, clock := createTestService(t)

	updated := bitcoinQuote()
	updated.Quote["USD"] = &cmc.QuoteEntry{Price: 70000}

	gomock.InOrder(
		mockClient.EXPECT().FetchQuotes(gomock.Any(), "bitcoin", "USD").Return([]cmc.RawQuote{bitcoinQuote()}, nil),
		mockClient.EXPECT().FetchQuotes(gomock.Any(), "bitcoin", "USD").Return([]cmc.RawQuote{updated}, nil),
	)

	_, _, err := service.CryptoData(context.Background(), "bitcoin")
	require.NoError(t, err)

	clock.now = clock.now.Add(30 * time.Second)

	data, status, err := service.CryptoData(context.Background(), "bitcoin")
	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusMiss, status)
	assert.Contains(t, string(data), `"current_price":70000`)
}

func TestService_CryptoData_CancelledCallerDoesNotFailSharedLoad(t *testing.T) {
	service, mockClient, _ := createTestService(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	mockClient.EXPECT().FetchQuotes(gomock.Any(), "bitcoin", "USD").
		DoAndReturn(func(ctx context.Context, slug, currency string) ([]cmc.RawQuote, error) {
			close(entered)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-release:
				return []cmc.RawQuote{bitcoinQuote()}, nil
			}
		}).Times(1)

	type result struct {
		data []byte
		err  error
	}

	ctxA, cancelA := context.WithCancel(context.Background())
	defer cancelA()
	resultA := make(chan result, 1)
	go func() {
		data, _, err := service.CryptoData(ctxA, "bitcoin")
		resultA <- result{data, err}
	}()
	<-entered

	resultB := make(chan result, 1)
	go func() {
		data, _, err := service.CryptoData(context.Background(), "bitcoin")
		resultB <- result{data, err}
	}()

	// Give B time to join the in-flight load before A goes away
	time.Sleep(50 * time.Millisecond)
	cancelA()
	time.Sleep(20 * time.Millisecond)
	close(release)

	b := <-resultB
	require.NoError(t, b.err)
	assert.Contains(t, string(b.data), `"id":"bitcoin"`)

	a := <-resultA
	require.NoError(t, a.err)
	assert.Equal(t, b.data, a.data)
}
