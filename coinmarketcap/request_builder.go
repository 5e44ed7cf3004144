package coinmarketcap

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// buildURL safely combines a base URL with a path
func buildURL(baseURL, path string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	trimmedPath := strings.TrimLeft(path, "/")

	return baseURL + "/" + trimmedPath
}

// RequestBuilder implements the Builder pattern for CoinMarketCap API requests
type RequestBuilder struct {
	baseURL    string
	httpMethod string
	apiPath    string
	params     url.Values
	apiKey     string
	userAgent  string
	headers    map[string]string
}

// NewRequestBuilder creates a new base request builder for CoinMarketCap endpoints
func NewRequestBuilder(baseURL, apiPath string) *RequestBuilder {
	rb := &RequestBuilder{
		baseURL:    baseURL,
		apiPath:    apiPath,
		httpMethod: http.MethodGet,
		params:     url.Values{},
		headers:    make(map[string]string),
		userAgent:  "Mozilla/5.0 Coin-Widget-Proxy",
	}

	rb.headers["Accept"] = "application/json"

	return rb
}

// With adds a custom parameter to the URL query
func (rb *RequestBuilder) With(key, value string) *RequestBuilder {
	if value != "" {
		rb.params.Set(key, value)
	}
	return rb
}

// WithConvert adds the convert parameter selecting the quote currency
func (rb *RequestBuilder) WithConvert(currency string) *RequestBuilder {
	return rb.With("convert", currency)
}

// WithLimit adds the limit parameter
func (rb *RequestBuilder) WithLimit(limit int) *RequestBuilder {
	if limit > 0 {
		rb.params.Set("limit", strconv.Itoa(limit))
	}
	return rb
}

// WithSort adds sort and sort_dir parameters
func (rb *RequestBuilder) WithSort(sort, sortDir string) *RequestBuilder {
	return rb.With("sort", sort).With("sort_dir", sortDir)
}

// WithSlug adds the slug parameter
func (rb *RequestBuilder) WithSlug(slug string) *RequestBuilder {
	return rb.With("slug", slug)
}

// WithApiKey sets the Pro API key. An empty key is still sent so the
// provider reports the authentication failure itself.
func (rb *RequestBuilder) WithApiKey(apiKey string) *RequestBuilder {
	rb.apiKey = apiKey
	return rb
}

// WithHeader adds a custom HTTP header
func (rb *RequestBuilder) WithHeader(name, value string) *RequestBuilder {
	rb.headers[name] = value
	return rb
}

// BuildURL builds the complete URL for the request
func (rb *RequestBuilder) BuildURL() string {
	fullPath := buildURL(rb.baseURL, rb.apiPath)

	queryString := rb.params.Encode()
	if queryString != "" {
		return fmt.Sprintf("%s?%s", fullPath, queryString)
	}
	return fullPath
}

// Build creates an http.Request bound to ctx
func (rb *RequestBuilder) Build(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, rb.httpMethod, rb.BuildURL(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", rb.userAgent)
	req.Header.Set(APIKeyHeader, rb.apiKey)

	for key, value := range rb.headers {
		req.Header.Set(key, value)
	}

	return req, nil
}
