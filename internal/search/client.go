package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/olgasafonova/wikimedia-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/wikimedia-mcp-server/internal/errors"
)

const (
	// BaseURL is the Wikimedia Core REST API endpoint
	BaseURL = "https://api.wikimedia.org/core/v1"

	// DefaultLimit applies when a search call omits the limit
	DefaultLimit = 10

	// MaxContentLimit and MaxTitleLimit are the upstream bounds for the two
	// search endpoints
	MaxContentLimit = 50
	MaxTitleLimit   = 100
)

// Client provides access to the Wikimedia Core REST search API
type Client struct {
	*base.Client
	baseURL   string
	userAgent string
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) { c.Logger = l }
}

// WithTimeout sets the HTTP request timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.HTTPClient.Timeout = d }
}

// WithUserAgent sets the User-Agent header sent with API requests
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.userAgent = ua }
}

// WithBaseURL overrides the API endpoint. Tests point this at a local server.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = u }
}

// NewClient creates a new Core REST search client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		Client:    base.NewClient(),
		baseURL:   BaseURL,
		userAgent: base.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchContent performs a full-text search against page content
func (c *Client) SearchContent(ctx context.Context, query string, limit int, project, language string) (*SearchResponse, error) {
	return c.search(ctx, "page", query, limit, project, language)
}

// SearchTitles returns title completions for a prefix query
func (c *Client) SearchTitles(ctx context.Context, query string, limit int, project, language string) (*SearchResponse, error) {
	return c.search(ctx, "title", query, limit, project, language)
}

// search performs a GET against /core/v1/{project}/{language}/search/{endpoint}
func (c *Client) search(ctx context.Context, endpoint, query string, limit int, project, language string) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))

	reqURL := fmt.Sprintf("%s/%s/%s/search/%s?%s", c.baseURL, project, language, endpoint, params.Encode())

	body, statusCode, err := c.Client.DoRequest(ctx, base.RequestConfig{
		URL:       reqURL,
		UserAgent: c.userAgent,
		API:       "core",
		Operation: "search/" + endpoint,
	})
	if err != nil {
		return nil, err
	}

	// The API answers 404 when the project/language pair has no wiki
	if statusCode == http.StatusNotFound {
		return nil, &apierrors.NotFoundError{Resource: "project", Identifier: language + "." + project}
	}
	if statusCode >= 400 {
		return nil, c.upstreamError(statusCode, body)
	}

	var result SearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, apierrors.NewMalformedResponseError("decoding search response: " + err.Error())
	}
	return &result, nil
}

// upstreamError converts a non-2xx response into an UpstreamError. The raw
// body goes to the logs, not the message.
func (c *Client) upstreamError(statusCode int, body []byte) error {
	c.Logger.Warn("search API error",
		"status", statusCode,
		"body", base.Truncate(string(body), 200))

	var apiErr APIError
	if json.Unmarshal(body, &apiErr) == nil && apiErr.HTTPReason != "" {
		return apierrors.NewUpstreamError(statusCode, apiErr.HTTPReason)
	}
	return apierrors.NewUpstreamError(statusCode, http.StatusText(statusCode))
}
