package coinmarketcap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net"
	"net/http"
	"time"
)

// StatusReporter receives the outcome of every upstream attempt
type StatusReporter interface {
	OnRequest(status string)
	OnRetry()
}

// Attempt outcomes passed to StatusReporter.OnRequest
const (
	StatusSuccess     = "success"
	StatusError       = "error"
	StatusRateLimited = "rate_limited"
	StatusCanceled    = "canceled"
)

// RetryOptions bounds how long and how often one upstream call may run
type RetryOptions struct {
	// Attempts is the total number of tries, the first one included
	Attempts    int
	BaseBackoff time.Duration
	LogPrefix   string
	DialTimeout time.Duration
	// Timeout covers one attempt from dial to the last body byte
	Timeout time.Duration
}

func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		Attempts:    2,
		BaseBackoff: 500 * time.Millisecond,
		LogPrefix:   "CoinMarketCap",
		DialTimeout: 10 * time.Second,
		Timeout:     30 * time.Second,
	}
}

// HTTPClientWithRetries executes CoinMarketCap requests under the per-key
// rate limit, retrying 429, 5xx and transport failures with backoff
type HTTPClientWithRetries struct {
	httpClient *http.Client
	opts       RetryOptions
	reporter   StatusReporter
	limiters   IRateLimiterManager
}

// NewHTTPClientWithRetries creates the client. reporter and limiters may be nil.
func NewHTTPClientWithRetries(opts RetryOptions, reporter StatusReporter, limiters IRateLimiterManager) *HTTPClientWithRetries {
	dialer := &net.Dialer{Timeout: opts.DialTimeout}

	return &HTTPClientWithRetries{
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: &http.Transport{DialContext: dialer.DialContext},
		},
		opts:     opts,
		reporter: reporter,
		limiters: limiters,
	}
}

// ExecuteRequest executes an HTTP request with retry logic and returns the
// body of a 200 response. Any other outcome is an *UpstreamError.
func (c *HTTPClientWithRetries) ExecuteRequest(req *http.Request) ([]byte, time.Duration, error) {
	ctx := req.Context()
	var lastErr error // last retryable failure

	attempts := c.opts.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			log.Printf("%s: Retry %d/%d after error: %v",
				c.opts.LogPrefix, attempt, attempts-1, lastErr)

			c.onRetry()

			backoffDuration := calculateBackoffWithJitter(c.opts.BaseBackoff, attempt)
			if err := sleepContext(ctx, backoffDuration); err != nil {
				c.onRequest(StatusCanceled)
				return nil, 0, &UpstreamError{Message: err.Error()}
			}
		}

		if c.limiters != nil {
			if limiter := c.limiters.GetLimiterForRequest(req); limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					c.onRequest(StatusCanceled)
					return nil, 0, &UpstreamError{Message: fmt.Sprintf("rate limiter wait failed: %v", err)}
				}
			}
		}

		started := time.Now()
		resp, err := c.httpClient.Do(req)
		requestDuration := time.Since(started)

		if err != nil {
			lastErr = &UpstreamError{Message: err.Error()}
			if errors.Is(err, context.Canceled) {
				c.onRequest(StatusCanceled)
				return nil, requestDuration, lastErr
			}
			c.onRequest(StatusError)
			continue
		}

		body, err := readResponse(resp)
		if err == nil {
			c.onRequest(StatusSuccess)
			return body, requestDuration, nil
		}

		var upstreamErr *UpstreamError
		if errors.As(err, &upstreamErr) && isRetryableError(upstreamErr.StatusCode) {
			lastErr = err
			c.onRequest(StatusRateLimited)
			continue
		}

		c.onRequest(StatusError)
		log.Printf("%s: Request failed after %.2fs: %v", c.opts.LogPrefix, requestDuration.Seconds(), err)
		return nil, requestDuration, err
	}

	log.Printf("%s: All %d attempts failed, last error: %v", c.opts.LogPrefix, attempts, lastErr)
	return nil, 0, lastErr
}

func (c *HTTPClientWithRetries) onRequest(status string) {
	if c.reporter != nil {
		c.reporter.OnRequest(status)
	}
}

func (c *HTTPClientWithRetries) onRetry() {
	if c.reporter != nil {
		c.reporter.OnRetry()
	}
}

// calculateBackoffWithJitter calculates backoff duration with jitter for retries
func calculateBackoffWithJitter(baseBackoff time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return baseBackoff
	}

	multiplier := uint(1) << uint(attempt-1)
	backoff := time.Duration(float64(baseBackoff) * float64(multiplier))
	if backoff/2 <= 0 {
		return backoff
	}
	jitter := time.Duration(rand.Int63n(int64(backoff / 2)))
	return backoff + jitter
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// readResponse reads the body and converts non-200 statuses into UpstreamError
func readResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("error reading response: %v", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newStatusError(resp.StatusCode, body)
	}

	return body, nil
}

// isRetryableError determines if a given HTTP status code should trigger a retry
func isRetryableError(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusInternalServerError ||
		statusCode == http.StatusBadGateway ||
		statusCode == http.StatusServiceUnavailable ||
		statusCode == http.StatusGatewayTimeout
}
