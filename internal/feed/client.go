package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/olgasafonova/wikimedia-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/wikimedia-mcp-server/internal/errors"
)

const (
	// BaseURL is the Wikimedia feed API endpoint
	BaseURL = "https://api.wikimedia.org/feed/v1"

	// Projection caps per section, matching what fits in a tool response
	MaxMostRead = 5
	MaxSelected = 10
	MaxEvents   = 10
	MaxBirths   = 5
	MaxDeaths   = 5
)

// Client provides access to the Wikimedia feed API
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

// NewClient creates a new feed API client
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

// GetFeatured fetches the featured-content feed for a zero-padded YYYY/MM/DD
// date path.
func (c *Client) GetFeatured(ctx context.Context, project, language, datePath string) (*FeaturedResponse, error) {
	reqURL := fmt.Sprintf("%s/%s/%s/featured/%s", c.baseURL, project, language, datePath)

	body, err := c.get(ctx, reqURL, "featured", "featured content", datePath)
	if err != nil {
		return nil, err
	}

	var resp FeaturedResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apierrors.NewMalformedResponseError("decoding featured content: " + err.Error())
	}
	return &resp, nil
}

// GetOnThisDay fetches one on-this-day category ("all", "selected", "births",
// "deaths", "holidays" or "events") for a zero-padded month and day.
func (c *Client) GetOnThisDay(ctx context.Context, project, language, eventType, month, day string) (*OnThisDayResponse, error) {
	reqURL := fmt.Sprintf("%s/%s/%s/onthisday/%s/%s/%s", c.baseURL, project, language, eventType, month, day)

	body, err := c.get(ctx, reqURL, "onthisday", "on this day events", month+"/"+day)
	if err != nil {
		return nil, err
	}

	var resp OnThisDayResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apierrors.NewMalformedResponseError("decoding on this day events: " + err.Error())
	}
	return &resp, nil
}

// get performs a single GET and maps the status code. 404 means the feed has
// nothing for that date.
func (c *Client) get(ctx context.Context, reqURL, operation, resource, identifier string) ([]byte, error) {
	body, statusCode, err := c.Client.DoRequest(ctx, base.RequestConfig{
		URL:       reqURL,
		UserAgent: c.userAgent,
		API:       "feed",
		Operation: operation,
	})
	if err != nil {
		return nil, err
	}

	if statusCode == http.StatusNotFound {
		return nil, &apierrors.NotFoundError{Resource: resource, Identifier: identifier}
	}
	if statusCode >= 400 {
		return nil, c.upstreamError(statusCode, body)
	}
	return body, nil
}

// upstreamError converts a non-2xx response into an UpstreamError. The raw
// body goes to the logs, not the message.
func (c *Client) upstreamError(statusCode int, body []byte) error {
	c.Logger.Warn("feed API error",
		"status", statusCode,
		"body", base.Truncate(string(body), 200))

	var apiErr APIError
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Title != "" {
		return apierrors.NewUpstreamError(statusCode, apiErr.Title)
	}
	return apierrors.NewUpstreamError(statusCode, http.StatusText(statusCode))
}
