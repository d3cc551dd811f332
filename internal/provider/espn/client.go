// Package espn provides the HTTP client for ESPN's athlete splits endpoint.
//
// Each FetchSplits call issues exactly one GET. Failures are logged and reported through
// FetchResult rather than retried.
package espn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// ErrHTTPStatus marks a non-2xx response from ESPN.
var ErrHTTPStatus = errors.New("espn: unexpected HTTP status")

// Options is the immutable client configuration.
type Options struct {
	BaseURL           string
	UserAgent         string
	Timeout           time.Duration // 0 leaves the http.Client without a timeout
	RequestsPerMinute int           // 0 disables the outbound limiter
}

// Client fetches raw splits payloads from ESPN.
type Client struct {
	httpClient *http.Client
	opts       Options
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// New creates an ESPN client. A nil httpClient gets a fresh client honoring
// opts.Timeout.
func New(opts Options, httpClient *http.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")

	var limiter *rate.Limiter
	if opts.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(opts.RequestsPerMinute)/60.0), 1)
	}
	return &Client{
		httpClient: httpClient,
		opts:       opts,
		limiter:    limiter,
		logger:     logger,
	}
}

// FetchResult is the outcome of a single splits request. Exactly one of Body
// and Err is set. Body is the response JSON, unmodified.
type FetchResult struct {
	PlayerID   string
	StatusCode int // 0 when no response was received
	Body       json.RawMessage
	Err        error
}

// OK reports whether the fetch produced a response body.
func (r FetchResult) OK() bool {
	return r.Err == nil
}

// Decode parses the body into a RawSplitsResponse.
func (r FetchResult) Decode() (*RawSplitsResponse, error) {
	if !r.OK() {
		return nil, r.Err
	}
	return DecodeSplits(r.Body)
}

// SplitsURL returns the splits endpoint for a player.
func (c *Client) SplitsURL(playerID string) string {
	return fmt.Sprintf("%s/athletes/%s/splits", c.opts.BaseURL, url.PathEscape(playerID))
}

// FetchSplits performs one GET for the player's splits. Transport and status
// failures are logged and returned in the result.
func (c *Client) FetchSplits(ctx context.Context, playerID string) FetchResult {
	result := FetchResult{PlayerID: playerID}

	body, status, err := c.get(ctx, c.SplitsURL(playerID))
	result.StatusCode = status
	if err != nil {
		if errors.Is(err, ErrHTTPStatus) {
			c.logger.Warn("HTTP error occurred", "player_id", playerID, "status", status, "error", err)
		} else {
			c.logger.Warn("An error occurred", "player_id", playerID, "error", err)
		}
		result.Err = err
		return result
	}

	if !json.Valid(body) {
		err = fmt.Errorf("decode response: body is not valid JSON: %s", truncate(body, 200))
		c.logger.Warn("An error occurred", "player_id", playerID, "error", err)
		result.Err = err
		return result
	}

	c.logger.Debug("Fetched splits", "player_id", playerID, "bytes", len(body))
	result.Body = body
	return result
}

// get performs a rate-limited GET and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, u string) ([]byte, int, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, 0, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, fmt.Errorf("%w: %d: %s", ErrHTTPStatus, resp.StatusCode, truncate(body, 200))
	}
	return body, resp.StatusCode, nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
