package pages

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/olgasafonova/wikimedia-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/wikimedia-mcp-server/internal/errors"
	"github.com/olgasafonova/wikimedia-mcp-server/internal/wikimedia"
)

const (
	// RestPath is the REST v1 prefix present on every project host
	RestPath = "/api/rest_v1"

	// ActionPath is the MediaWiki Action API endpoint on every project host
	ActionPath = "/w/api.php"

	// LangLinksLimit is the Action API maximum for a single langlinks query
	LangLinksLimit = "500"
)

// Client provides access to per-project page APIs: REST summaries and the
// Action API. Unlike the search and feed clients it talks to a different
// host per language edition.
type Client struct {
	*base.Client
	baseURL   string // overrides the per-project host when set, used by tests
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

// WithBaseURL overrides the per-project host. Tests point this at a local
// server.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = u }
}

// NewClient creates a new page API client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		Client:    base.NewClient(),
		userAgent: base.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// host returns the API host for a language edition, honoring the test
// override.
func (c *Client) host(language, project string) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return wikimedia.Host(language, project)
}

// GetSummary fetches the REST summary for a page title. Redirects are
// followed by the API, so the returned summary may carry a different title
// than the one requested.
func (c *Client) GetSummary(ctx context.Context, title, project, language string) (*PageSummary, error) {
	reqURL := c.host(language, project) + RestPath + "/page/summary/" + url.PathEscape(title)

	body, statusCode, err := c.Client.DoRequest(ctx, base.RequestConfig{
		URL:       reqURL,
		UserAgent: c.userAgent,
		API:       "rest",
		Operation: "summary",
	})
	if err != nil {
		return nil, err
	}

	if statusCode == http.StatusNotFound {
		return nil, apierrors.NewNotFoundError(title)
	}
	if statusCode >= 400 {
		return nil, c.upstreamError(statusCode, body)
	}

	var summary PageSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, apierrors.NewMalformedResponseError("decoding page summary: " + err.Error())
	}
	return &summary, nil
}

// GetLangLinks fetches cross-language links for a page via the Action API,
// following redirects.
func (c *Client) GetLangLinks(ctx context.Context, title, project, language string) (*QueryPage, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("titles", title)
	params.Set("prop", "langlinks")
	params.Set("lllimit", LangLinksLimit)
	params.Set("llprop", "url|langname|autonym")
	params.Set("redirects", "1")
	params.Set("format", "json")
	params.Set("formatversion", "2")

	reqURL := c.host(language, project) + ActionPath + "?" + params.Encode()

	body, statusCode, err := c.Client.DoRequest(ctx, base.RequestConfig{
		URL:       reqURL,
		UserAgent: c.userAgent,
		API:       "action",
		Operation: "langlinks",
	})
	if err != nil {
		return nil, err
	}

	if statusCode == http.StatusNotFound {
		return nil, apierrors.NewNotFoundError(title)
	}
	if statusCode >= 400 {
		return nil, c.upstreamError(statusCode, body)
	}

	var resp QueryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apierrors.NewMalformedResponseError("decoding langlinks response: " + err.Error())
	}

	// The Action API reports missing pages inside a 200 response
	if resp.Query == nil || len(resp.Query.Pages) == 0 {
		return nil, apierrors.NewNotFoundError(title)
	}
	page := &resp.Query.Pages[0]
	if page.Missing {
		return nil, apierrors.NewNotFoundError(title)
	}
	return page, nil
}

// upstreamError converts a non-2xx response into an UpstreamError. The raw
// body goes to the logs, not the message.
func (c *Client) upstreamError(statusCode int, body []byte) error {
	c.Logger.Warn("page API error",
		"status", statusCode,
		"body", base.Truncate(string(body), 200))

	var apiErr APIError
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Title != "" {
		return apierrors.NewUpstreamError(statusCode, apiErr.Title)
	}
	return apierrors.NewUpstreamError(statusCode, http.StatusText(statusCode))
}
