package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	cmc "github.com/z-marketing/sb1-fn7ghc/coinmarketcap"
	"github.com/z-marketing/sb1-fn7ghc/coinmarketcap_quotes"
	"github.com/z-marketing/sb1-fn7ghc/metrics"
)

const (
	coinsListFailure  = "Failed to fetch coins list"
	cryptoDataFailure = "Failed to fetch crypto data"
	missingSlugError  = "Missing slug parameter"
	coinNotFoundError = "Coin not found"
)

var (
	coinsListMetrics  = metrics.NewMetricsWriter(metrics.ServiceCoinsList)
	cryptoDataMetrics = metrics.NewMetricsWriter(metrics.ServiceCryptoData)
)

// handleCoinsList responds with the top listings, RichQuack first
func (s *Server) handleCoinsList(w http.ResponseWriter, r *http.Request) {
	defer coinsListMetrics.RecordRequestLatency("coins-list", time.Now())

	data, cacheStatus, err := s.coinsListService.CoinsList(r.Context())
	if err != nil {
		log.Printf("API: Error fetching coins (request %s): %v", r.Header.Get(requestIDHeader), err)
		coinsListMetrics.RecordResponse(strconv.Itoa(http.StatusInternalServerError))
		sendErrorResponse(w, http.StatusInternalServerError, errorResponse{
			Error:   coinsListFailure,
			Details: errorDetails(err),
		})
		return
	}

	coinsListMetrics.RecordResponse(strconv.Itoa(http.StatusOK))
	setCacheStatusHeader(w, cacheStatus)
	sendJSONBytes(w, http.StatusOK, data)
}

// handleCryptoData responds with the quote for the slug query parameter
func (s *Server) handleCryptoData(w http.ResponseWriter, r *http.Request) {
	defer cryptoDataMetrics.RecordRequestLatency("crypto-data", time.Now())

	slug := getParamTrimmed(r, "slug")

	data, cacheStatus, err := s.cryptoDataService.CryptoData(r.Context(), slug)
	if err != nil {
		statusCode, body := cryptoDataError(err)
		if statusCode >= http.StatusInternalServerError || statusCode == http.StatusTooManyRequests {
			log.Printf("API: Error fetching crypto data for %q (request %s): %v", slug, r.Header.Get(requestIDHeader), err)
		}
		cryptoDataMetrics.RecordResponse(strconv.Itoa(statusCode))
		sendErrorResponse(w, statusCode, body)
		return
	}

	cryptoDataMetrics.RecordResponse(strconv.Itoa(http.StatusOK))
	setCacheStatusHeader(w, cacheStatus)
	sendJSONBytes(w, http.StatusOK, data)
}

// cryptoDataError maps a quote failure to a status code and body
func cryptoDataError(err error) (int, errorResponse) {
	switch {
	case errors.Is(err, coinmarketcap_quotes.ErrMissingSlug):
		return http.StatusBadRequest, errorResponse{Error: missingSlugError}
	case errors.Is(err, coinmarketcap_quotes.ErrCoinNotFound):
		return http.StatusNotFound, errorResponse{Error: coinNotFoundError}
	}

	statusCode := http.StatusInternalServerError
	var upstreamErr *cmc.UpstreamError
	if errors.As(err, &upstreamErr) && upstreamErr.StatusCode != 0 {
		statusCode = upstreamErr.StatusCode
	}

	return statusCode, errorResponse{
		Error:   cryptoDataFailure,
		Details: errorDetails(err),
	}
}

// errorDetails prefers the provider's own message over the wrapped error text
func errorDetails(err error) string {
	var upstreamErr *cmc.UpstreamError
	if errors.As(err, &upstreamErr) && upstreamErr.Message != "" {
		return upstreamErr.Message
	}
	return err.Error()
}
