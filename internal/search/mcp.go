package search

import (
	"context"
	"strings"

	"github.com/olgasafonova/wikimedia-mcp-server/internal/wikimedia"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP integration.

// SearchContentMCP is the MCP wrapper for SearchContent
func (c *Client) SearchContentMCP(ctx context.Context, args SearchContentArgs) (SearchContentResult, error) {
	if err := ValidateQuery(args.Query); err != nil {
		return SearchContentResult{}, err
	}
	limit, err := ResolveLimit(args.Limit, MaxContentLimit)
	if err != nil {
		return SearchContentResult{}, err
	}
	project, language, err := wikimedia.ResolveSite(args.Project, args.Language)
	if err != nil {
		return SearchContentResult{}, err
	}

	resp, err := c.SearchContent(ctx, args.Query, limit, project, language)
	if err != nil {
		return SearchContentResult{}, err
	}

	results := make([]PageMatch, 0, len(resp.Pages))
	for i := range resp.Pages {
		if len(results) == limit {
			break
		}
		p := &resp.Pages[i]
		results = append(results, PageMatch{
			Title:       p.Title,
			Description: p.Description,
			Snippet:     highlightSnippet(p.Excerpt),
			URL:         wikimedia.PageURL(language, project, pageKey(p)),
		})
	}

	return SearchContentResult{Results: results, Count: len(results)}, nil
}

// SearchTitlesMCP is the MCP wrapper for SearchTitles
func (c *Client) SearchTitlesMCP(ctx context.Context, args SearchTitlesArgs) (SearchTitlesResult, error) {
	if err := ValidateQuery(args.Query); err != nil {
		return SearchTitlesResult{}, err
	}
	limit, err := ResolveLimit(args.Limit, MaxTitleLimit)
	if err != nil {
		return SearchTitlesResult{}, err
	}
	project, language, err := wikimedia.ResolveSite(args.Project, args.Language)
	if err != nil {
		return SearchTitlesResult{}, err
	}

	resp, err := c.SearchTitles(ctx, args.Query, limit, project, language)
	if err != nil {
		return SearchTitlesResult{}, err
	}

	results := make([]TitleMatch, 0, len(resp.Pages))
	for i := range resp.Pages {
		if len(results) == limit {
			break
		}
		p := &resp.Pages[i]
		results = append(results, TitleMatch{
			Title:       p.Title,
			Description: p.Description,
			URL:         wikimedia.PageURL(language, project, pageKey(p)),
		})
	}

	return SearchTitlesResult{Results: results, Count: len(results)}, nil
}

// highlightSnippet rewrites the search-match markup in an excerpt into
// Markdown bold.
func highlightSnippet(excerpt string) string {
	s := strings.ReplaceAll(excerpt, `<span class="searchmatch">`, "**")
	return strings.ReplaceAll(s, "</span>", "**")
}

// pageKey returns the URL key for a page, falling back to the title when the
// upstream omits the key field.
func pageKey(p *Page) string {
	if p.Key != "" {
		return p.Key
	}
	return wikimedia.TitleKey(p.Title)
}
