package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPClient handles HTTP requests with retry logic.
type HTTPClient struct {
	client     *http.Client
	maxRetries int
	retryDelay []time.Duration
}

// NewHTTPClient creates a new HTTP client with default settings.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxRetries: 3,
		retryDelay: []time.Duration{
			0,                // Immediate first attempt
			5 * time.Second,  // Retry after 5s
			30 * time.Second, // Retry after 30s
		},
	}
}

// SendResult contains the result of a send operation.
type SendResult struct {
	StatusCode int
	Duration   time.Duration
	Attempts   int
	Error      error
}

// Send sends a POST request to the given URL with retry logic.
func (c *HTTPClient) Send(ctx context.Context, url string, contentType string, body []byte) *SendResult {
	result := &SendResult{}
	start := time.Now()

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		result.Attempts = attempt + 1

		// Wait before retry (except first attempt)
		if attempt > 0 && attempt < len(c.retryDelay) {
			select {
			case <-ctx.Done():
				result.Error = ctx.Err()
				result.Duration = time.Since(start)
				return result
			case <-time.After(c.retryDelay[attempt]):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			result.Error = fmt.Errorf("failed to create request: %w", err)
			continue
		}

		req.Header.Set("Content-Type", contentType)
		req.Header.Set("User-Agent", "Pointeuse/1.0")

		resp, err := c.client.Do(req)
		if err != nil {
			result.Error = fmt.Errorf("request failed: %w", err)
			continue
		}

		bodyBytes, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		result.StatusCode = resp.StatusCode
		result.Duration = time.Since(start)

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			result.Error = nil
			return result
		}

		result.Error = fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(string(bodyBytes), 200))
		// Client errors won't improve on retry
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return result
		}
	}

	result.Duration = time.Since(start)
	return result
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
