package coinmarketcap_quotes

import (
	"fmt"
	"strings"

	cmc "github.com/z-marketing/sb1-fn7ghc/coinmarketcap"
)

// NormalizeQuote maps a provider quote record onto CoinQuote using the
// values converted to currency. imageTemplate receives the numeric coin id.
func NormalizeQuote(raw cmc.RawQuote, currency, imageTemplate string) (CoinQuote, error) {
	entry := raw.Quote[strings.ToUpper(currency)]
	if entry == nil {
		return CoinQuote{}, fmt.Errorf("%w: no %s quote for %q", cmc.ErrMalformedData, currency, raw.Slug)
	}

	return CoinQuote{
		ID:                       raw.Slug,
		Symbol:                   raw.Symbol,
		Name:                     raw.Name,
		Image:                    fmt.Sprintf(imageTemplate, raw.ID),
		CurrentPrice:             entry.Price,
		MarketCap:                entry.MarketCap,
		TotalVolume:              entry.Volume24h,
		PriceChangePercentage24h: entry.PercentChange24h,
	}, nil
}
