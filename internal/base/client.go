// Package base provides shared HTTP client infrastructure for Wikimedia APIs.
package base

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	apierrors "github.com/olgasafonova/wikimedia-mcp-server/internal/errors"
	"github.com/olgasafonova/wikimedia-mcp-server/metrics"
)

const (
	// DefaultTimeout bounds every API request. Calls are never retried, so
	// this is the worst-case latency of a single tool invocation.
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent identifies this server to the Wikimedia APIs.
	DefaultUserAgent = "wikimedia-mcp-server/1.0 (github.com/olgasafonova/wikimedia-mcp-server)"

	// MaxResponseSize caps how much of an upstream body is read. Wikimedia
	// payloads for these endpoints are well under this.
	MaxResponseSize = 10 << 20 // 10 MB
)

// Client provides common HTTP client infrastructure. Every call is a single
// GET attempt: no caching, no retries, no state shared between calls.
type Client struct {
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.HTTPClient = c
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		client.Logger = l
	}
}

// WithTimeout overrides the per-request timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(client *Client) {
		client.HTTPClient.Timeout = d
	}
}

// NewClient creates a new base client with default settings
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		HTTPClient: newHTTPClient(DefaultTimeout),
		Logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Close releases idle connections held by the client
func (c *Client) Close() {
	c.HTTPClient.CloseIdleConnections()
}

// RequestConfig configures a single HTTP request. API and Operation label
// the call for metrics (e.g. "core"/"search/page", "feed"/"featured").
type RequestConfig struct {
	URL       string
	UserAgent string
	API       string
	Operation string
}

// DoRequest performs a single GET request. It returns the response body and
// status code for the caller to interpret; transport failures come back as
// an UpstreamError with no status code. The body is always drained and
// closed before returning.
func (c *Client) DoRequest(ctx context.Context, cfg RequestConfig) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.URL, nil)
	if err != nil {
		return nil, 0, apierrors.NewUpstreamError(0, "invalid request URL")
	}

	req.Header.Set("Accept", "application/json")
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	} else {
		req.Header.Set("User-Agent", DefaultUserAgent)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	duration := time.Since(start).Seconds()

	if err != nil {
		metrics.RecordAPICall(cfg.API, cfg.Operation, duration, false, transportErrorCode(err))
		c.Logger.Warn("API request failed",
			"url", cfg.URL,
			"error", err)
		return nil, 0, apierrors.NewUpstreamError(0, transportMessage(err))
	}

	metrics.RecordAPICall(cfg.API, cfg.Operation, duration, resp.StatusCode < 400, statusErrorCode(resp.StatusCode))

	body, err := readAndClose(resp)
	if err != nil {
		c.Logger.Warn("Failed to read API response",
			"url", cfg.URL,
			"error", err)
		return nil, 0, apierrors.NewUpstreamError(0, "failed to read response body")
	}

	return body, resp.StatusCode, nil
}

// transportMessage classifies a transport failure into a stable message that
// carries no internal detail. The raw error is logged separately.
func transportMessage(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	case errors.Is(err, context.Canceled):
		return "request canceled"
	default:
		return "request failed"
	}
}

// transportErrorCode labels a transport failure for metrics.
func transportErrorCode(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "network"
	}
}

// statusErrorCode labels a non-2xx response for metrics. Successful statuses
// produce no error code.
func statusErrorCode(statusCode int) string {
	if statusCode < 400 {
		return ""
	}
	return strconv.Itoa(statusCode)
}

// readAndClose reads the response body, enforcing MaxResponseSize, and
// closes it on every path.
func readAndClose(resp *http.Response) ([]byte, error) {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > MaxResponseSize {
		return nil, fmt.Errorf("response body exceeds %d bytes", MaxResponseSize)
	}
	return body, nil
}

// Truncate shortens a string to maxLen, adding "..." if truncated
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// newHTTPClient creates an HTTP client with optimized transport settings
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		MaxConnsPerHost:       50,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		DisableCompression:    false,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
