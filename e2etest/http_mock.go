package e2etest

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
)

const (
	testAPIKey = "test-api-key"

	// Slugs with special behaviour in the mock
	unknownSlug    = "no-such-coin"
	badRequestSlug = "bad-request"
)

// mockCoin is one coin known to the mock CoinMarketCap server
type mockCoin struct {
	ID        int
	Name      string
	Symbol    string
	Slug      string
	Price     float64
	MarketCap float64
	Volume24h float64
	Change24h float64
}

var defaultMockCoins = []mockCoin{
	{ID: 1, Name: "Bitcoin", Symbol: "BTC", Slug: "bitcoin", Price: 65000.5, MarketCap: 1.28e12, Volume24h: 3.5e10, Change24h: 2.5},
	{ID: 1027, Name: "Ethereum", Symbol: "ETH", Slug: "ethereum", Price: 3200.25, MarketCap: 3.85e11, Volume24h: 1.5e10, Change24h: -1.2},
	{ID: 74, Name: "Dogecoin", Symbol: "DOGE", Slug: "dogecoin", Price: 0.15, MarketCap: 2.1e10, Volume24h: 1.1e9, Change24h: 0.4},
}

// MockServer imitates the CoinMarketCap Pro API and counts upstream calls
type MockServer struct {
	server *httptest.Server

	mu            sync.Mutex
	coins         []mockCoin
	listingsCalls int
	quoteCalls    map[string]int
	failListings  int
}

// NewMockServer creates and starts a mock CoinMarketCap server
func NewMockServer() *MockServer {
	m := &MockServer{
		coins:      append([]mockCoin(nil), defaultMockCoins...),
		quoteCalls: make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/cryptocurrency/listings/latest", m.handleListings)
	mux.HandleFunc("/v1/cryptocurrency/quotes/latest", m.handleQuotes)
	m.server = httptest.NewServer(mux)

	return m
}

// GetURL returns the base URL of the mock server
func (m *MockServer) GetURL() string {
	return m.server.URL
}

// Close shuts down the mock server
func (m *MockServer) Close() {
	m.server.Close()
}

// ListingsCalls returns how many listings requests reached the mock
func (m *MockServer) ListingsCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listingsCalls
}

// QuoteCalls returns how many quote requests for slug reached the mock
func (m *MockServer) QuoteCalls(slug string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.quoteCalls[slug]
}

// SetPrice changes the price the mock reports for slug
func (m *MockServer) SetPrice(slug string, price float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.coins {
		if m.coins[i].Slug == slug {
			m.coins[i].Price = price
		}
	}
}

// FailListings makes the next n listings requests fail with 401
func (m *MockServer) FailListings(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failListings = n
}

func (m *MockServer) handleListings(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.listingsCalls++
	fail := m.failListings > 0
	if fail {
		m.failListings--
	}
	coins := append([]mockCoin(nil), m.coins...)
	m.mu.Unlock()

	if !checkAPIKey(w, r) {
		return
	}
	if fail {
		writeStatusError(w, http.StatusUnauthorized, 1002, "API key missing.")
		return
	}

	data := make([]map[string]interface{}, 0, len(coins))
	for _, coin := range coins {
		data = append(data, coin.record())
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": okStatus(),
		"data":   data,
	})
}

func (m *MockServer) handleQuotes(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")

	m.mu.Lock()
	m.quoteCalls[slug]++
	coins := append([]mockCoin(nil), m.coins...)
	m.mu.Unlock()

	if !checkAPIKey(w, r) {
		return
	}
	if slug == badRequestSlug {
		writeStatusError(w, http.StatusBadRequest, 400, fmt.Sprintf("Invalid value for \"slug\": \"%s\"", slug))
		return
	}

	data := map[string]interface{}{}
	for _, coin := range coins {
		if coin.Slug == slug {
			data[fmt.Sprint(coin.ID)] = coin.record()
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": okStatus(),
		"data":   data,
	})
}

func (c mockCoin) record() map[string]interface{} {
	return map[string]interface{}{
		"id":     c.ID,
		"name":   c.Name,
		"symbol": c.Symbol,
		"slug":   c.Slug,
		"quote": map[string]interface{}{
			"USD": map[string]interface{}{
				"price":              c.Price,
				"market_cap":         c.MarketCap,
				"volume_24h":         c.Volume24h,
				"percent_change_24h": c.Change24h,
			},
		},
	}
}

func checkAPIKey(w http.ResponseWriter, r *http.Request) bool {
	if r.Header.Get("X-CMC_PRO_API_KEY") != testAPIKey {
		writeStatusError(w, http.StatusUnauthorized, 1001, "This API Key is invalid.")
		return false
	}
	return true
}

func okStatus() map[string]interface{} {
	return map[string]interface{}{"error_code": 0, "error_message": nil}
}

func writeStatusError(w http.ResponseWriter, statusCode, errorCode int, message string) {
	writeJSON(w, statusCode, map[string]interface{}{
		"status": map[string]interface{}{"error_code": errorCode, "error_message": message},
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("MockServer: Error writing response: %v", err)
	}
}
