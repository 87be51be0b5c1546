// Package leaf is the HTTP client for the Leaf agriculture API. It builds
// upstream requests from tool arguments, resolves bearer authorization, and
// normalizes response bodies.
package leaf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gbstox/leaf-mcp/internal/common"
)

// DefaultBaseURL is the upstream origin plus the versioned service path.
// The trailing slash is significant: relative endpoint paths are appended
// verbatim, and dropping it would silently lose the last base segment.
const DefaultBaseURL = "https://api.withleaf.io/services/"

// maxResponseSize caps the response body to prevent OOM from unexpectedly
// large upstream responses.
const maxResponseSize = 50 << 20 // 50MB

// ErrUpstreamUnreachable is returned for transport-level failures reaching
// the Leaf API (DNS, connection refused, timeouts). Upstream HTTP error
// statuses are not errors — they pass through in the Response.
var ErrUpstreamUnreachable = errors.New("upstream unreachable")

// Response is the outcome of one upstream call. Status and body are carried
// verbatim: the proxy is transparent to upstream semantics, so a 4xx/5xx is
// data, not a failure.
type Response struct {
	StatusCode int
	Body       string
}

// Client performs authenticated calls against the Leaf API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a Leaf API client. An empty baseURL selects
// DefaultBaseURL; apiKey may be empty under the HTTP transport, where each
// call carries its own session token.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *common.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// BaseURL returns the configured upstream base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs one upstream call. path is relative to the base URL with all
// placeholders already substituted; query params are appended when present.
// POST/PUT/PATCH always carry a JSON body — nil data is sent as {} to
// satisfy the upstream content-type contract.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, data interface{}) (*Response, error) {
	authorization, err := c.resolveAuthorization(ctx)
	if err != nil {
		return nil, err
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if mutating(method) {
		if data == nil {
			data = map[string]interface{}{}
		}
		payload, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", authorization)
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().Str("method", method).Str("url", target).Msg("leaf request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error().Str("method", method).Str("url", target).Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("leaf request failed")
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUpstreamUnreachable, err)
	}

	c.logger.Debug().Str("method", method).Str("url", target).Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Msg("leaf response")

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}

// mutating reports whether the method carries a JSON request body.
func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}
