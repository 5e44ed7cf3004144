package coinmarketcap

import (
	"errors"
	"fmt"
)

// ErrMalformedData is returned when a successful response does not have the expected shape
var ErrMalformedData = errors.New("malformed upstream data")

// UpstreamError is a failed call to CoinMarketCap. StatusCode is zero when no
// HTTP response was received.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("coinmarketcap: %s", e.Message)
	}
	return fmt.Sprintf("coinmarketcap: status %d: %s", e.StatusCode, e.Message)
}

// newStatusError builds an UpstreamError from a non-200 response, preferring
// the provider's own error_message
func newStatusError(statusCode int, body []byte) *UpstreamError {
	if message := parseErrorMessage(body); message != "" {
		return &UpstreamError{StatusCode: statusCode, Message: message}
	}
	return &UpstreamError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("Request failed with status code %d", statusCode),
	}
}
