package pages

import (
	"context"
	"sort"

	"github.com/olgasafonova/wikimedia-mcp-server/internal/wikimedia"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP integration.

// GetPageMCP is the MCP wrapper for GetSummary
func (c *Client) GetPageMCP(ctx context.Context, args GetPageArgs) (GetPageResult, error) {
	if err := ValidateTitle(args.Title); err != nil {
		return GetPageResult{}, err
	}
	project, language, err := wikimedia.ResolveSite(args.Project, args.Language)
	if err != nil {
		return GetPageResult{}, err
	}

	summary, err := c.GetSummary(ctx, args.Title, project, language)
	if err != nil {
		return GetPageResult{}, err
	}

	return toPageResult(summary, language, project), nil
}

// GetLanguagesMCP is the MCP wrapper for GetLangLinks
func (c *Client) GetLanguagesMCP(ctx context.Context, args GetLanguagesArgs) (GetLanguagesResult, error) {
	if err := ValidateTitle(args.Title); err != nil {
		return GetLanguagesResult{}, err
	}
	project, language, err := wikimedia.ResolveSite(args.Project, args.Language)
	if err != nil {
		return GetLanguagesResult{}, err
	}

	page, err := c.GetLangLinks(ctx, args.Title, project, language)
	if err != nil {
		return GetLanguagesResult{}, err
	}

	links := make([]LanguageLink, 0, len(page.LangLinks))
	for i := range page.LangLinks {
		links = append(links, toLanguageLink(&page.LangLinks[i], project))
	}
	sort.Slice(links, func(i, j int) bool {
		return links[i].LanguageCode < links[j].LanguageCode
	})

	return GetLanguagesResult{
		Title:     page.Title,
		Languages: links,
		Count:     len(links),
	}, nil
}

// toPageResult projects a REST summary into the stable tool shape. The URL
// is always populated, falling back to a constructed /wiki/ link when the
// upstream response has no content_urls block.
func toPageResult(summary *PageSummary, language, project string) GetPageResult {
	result := GetPageResult{
		Title:        summary.Title,
		Extract:      summary.Extract,
		Description:  summary.Description,
		LastModified: summary.Timestamp,
	}
	if summary.ContentURLs != nil && summary.ContentURLs.Desktop.Page != "" {
		result.URL = summary.ContentURLs.Desktop.Page
	} else {
		result.URL = wikimedia.PageURL(language, project, wikimedia.TitleKey(summary.Title))
	}
	return result
}

// toLanguageLink projects one langlinks entry, preferring the localized
// language name over the autonym and building a /wiki/ link when the API
// omitted the URL.
func toLanguageLink(ll *LangLink, project string) LanguageLink {
	link := LanguageLink{
		LanguageCode: ll.Lang,
		LanguageName: ll.LangName,
		Title:        ll.Title,
		URL:          ll.URL,
	}
	if link.LanguageName == "" {
		link.LanguageName = ll.Autonym
	}
	if link.URL == "" {
		link.URL = wikimedia.PageURL(ll.Lang, project, wikimedia.TitleKey(ll.Title))
	}
	return link
}
