package widget

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/z-marketing/sb1-fn7ghc/coinmarketcap_quotes"
)

const fetchFailedMessage = "Failed to fetch crypto data"

// CryptoData is the quote payload served by the proxy
type CryptoData = coinmarketcap_quotes.CoinQuote

// FetchError carries the message shown to the widget user
type FetchError struct {
	StatusCode int
	Message    string
}

func (e *FetchError) Error() string {
	return e.Message
}

// cryptoDataResponse accepts both a quote and an error body
type cryptoDataResponse struct {
	CryptoData
	Error *string `json:"error"`
}

// Client calls the proxy's quote endpoint
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for a proxy mounted at baseURL, e.g.
// http://localhost:8080/api/v1
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchCryptoData returns the quote for coinID
func (c *Client) FetchCryptoData(ctx context.Context, coinID string) (CryptoData, error) {
	endpoint := c.baseURL + "/crypto-data?" + url.Values{"slug": {coinID}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Printf("Widget: Error building request for %s: %v", coinID, err)
		return CryptoData{}, &FetchError{Message: fetchFailedMessage}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("Widget: Error fetching %s: %v", coinID, err)
		return CryptoData{}, &FetchError{Message: fetchFailedMessage}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Widget: Error reading response for %s: %v", coinID, err)
		return CryptoData{}, &FetchError{StatusCode: resp.StatusCode, Message: fetchFailedMessage}
	}

	var decoded cryptoDataResponse
	decodeErr := json.Unmarshal(body, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := fmt.Sprintf("Request failed with status code %d", resp.StatusCode)
		if decodeErr == nil && decoded.Error != nil && *decoded.Error != "" {
			message = *decoded.Error
		}
		log.Printf("Widget: Error fetching %s: %s", coinID, message)
		return CryptoData{}, &FetchError{StatusCode: resp.StatusCode, Message: message}
	}

	if decodeErr != nil {
		log.Printf("Widget: Error decoding response for %s: %v", coinID, decodeErr)
		return CryptoData{}, &FetchError{StatusCode: resp.StatusCode, Message: fetchFailedMessage}
	}
	if decoded.Error != nil {
		return CryptoData{}, &FetchError{StatusCode: resp.StatusCode, Message: messageOr(*decoded.Error)}
	}

	return decoded.CryptoData, nil
}

func messageOr(message string) string {
	if message == "" {
		return fetchFailedMessage
	}
	return message
}
