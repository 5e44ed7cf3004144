package coinmarketcap_listings

import (
	cmc "github.com/z-marketing/sb1-fn7ghc/coinmarketcap"
)

// NormalizeListing projects a provider listing onto CoinSummary
func NormalizeListing(raw cmc.RawListing) CoinSummary {
	return CoinSummary{
		ID:     raw.Slug,
		Name:   raw.Name,
		Symbol: raw.Symbol,
	}
}

// NormalizeListings projects every listing, keeping provider order
func NormalizeListings(raws []cmc.RawListing) []CoinSummary {
	coins := make([]CoinSummary, 0, len(raws)+1)
	for _, raw := range raws {
		coins = append(coins, NormalizeListing(raw))
	}
	return coins
}

// PrependSynthetic returns a new list with RichQuack at index 0.
// Duplicates are kept: a provider-listed richquack appears twice.
func PrependSynthetic(coins []CoinSummary) []CoinSummary {
	result := make([]CoinSummary, 0, len(coins)+1)
	result = append(result, RichQuack)
	return append(result, coins...)
}
