package coinmarketcap_listings

// CoinSummary is one element of the coins list response
type CoinSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// RichQuack is always listed first, whether or not the provider lists it too
var RichQuack = CoinSummary{
	ID:     "richquack",
	Name:   "RichQuack",
	Symbol: "QUACK",
}
