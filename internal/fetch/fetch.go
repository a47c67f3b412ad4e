// Package fetch provides the outbound HTTP transport used to retrieve blog
// pages and RSS feeds from aws.amazon.com.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonesrussell/mcp-aws-blogs/internal/logger"
)

// Client retrieves raw text content over HTTP with a fixed timeout and a
// browser-like User-Agent.
type Client struct {
	client    *http.Client
	userAgent string
	logger    logger.Logger
}

// New creates a new fetch client.
func New(timeout time.Duration, userAgent string, log logger.Logger) *Client {
	return &Client{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		logger:    log,
	}
}

// Fetch performs a GET request and returns the response body as a string.
// Any non-2xx status is an error.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	c.logger.Debug("fetched url",
		logger.String("url", url),
		logger.Int("bytes", len(body)),
	)

	return string(body), nil
}
