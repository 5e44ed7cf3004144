package coinmarketcap

import (
	"encoding/json"
	"sort"
	"strconv"
)

// Status is the envelope status block present on every CoinMarketCap response
type Status struct {
	Timestamp    string `json:"timestamp"`
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
	Elapsed      int    `json:"elapsed"`
	CreditCount  int    `json:"credit_count"`
}

// QuoteEntry holds market values converted to one currency
type QuoteEntry struct {
	Price            float64 `json:"price"`
	Volume24h        float64 `json:"volume_24h"`
	PercentChange1h  float64 `json:"percent_change_1h"`
	PercentChange24h float64 `json:"percent_change_24h"`
	PercentChange7d  float64 `json:"percent_change_7d"`
	MarketCap        float64 `json:"market_cap"`
	LastUpdated      string  `json:"last_updated"`
}

// RawListing is one element of the listings/latest data array
type RawListing struct {
	ID      int                    `json:"id"`
	Name    string                 `json:"name"`
	Symbol  string                 `json:"symbol"`
	Slug    string                 `json:"slug"`
	CMCRank int                    `json:"cmc_rank"`
	Quote   map[string]*QuoteEntry `json:"quote"`
}

// RawQuote is one value of the quotes/latest data object
type RawQuote struct {
	ID     int                    `json:"id"`
	Name   string                 `json:"name"`
	Symbol string                 `json:"symbol"`
	Slug   string                 `json:"slug"`
	Quote  map[string]*QuoteEntry `json:"quote"`
}

// ListingsParams selects and orders the listings page
type ListingsParams struct {
	Limit    int
	Sort     string
	SortDir  string
	Currency string
}

type listingsResponse struct {
	Status Status       `json:"status"`
	Data   []RawListing `json:"data"`
}

type quotesResponse struct {
	Status Status              `json:"status"`
	Data   map[string]RawQuote `json:"data"`
}

type statusOnlyResponse struct {
	Status *Status `json:"status"`
}

// parseErrorMessage extracts status.error_message from an error body
func parseErrorMessage(body []byte) string {
	var resp statusOnlyResponse
	if err := json.Unmarshal(body, &resp); err != nil || resp.Status == nil {
		return ""
	}
	return resp.Status.ErrorMessage
}

// sortedQuotes returns the records of a quotes data object ordered by numeric id
func sortedQuotes(data map[string]RawQuote) []RawQuote {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA != nil || errB != nil {
			return keys[i] < keys[j]
		}
		return a < b
	})

	result := make([]RawQuote, 0, len(keys))
	for _, k := range keys {
		result = append(result, data[k])
	}
	return result
}
