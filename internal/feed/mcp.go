package feed

import (
	"context"
	"time"

	"github.com/olgasafonova/wikimedia-mcp-server/internal/wikimedia"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP integration.

// GetFeaturedMCP is the MCP wrapper for GetFeatured
func (c *Client) GetFeaturedMCP(ctx context.Context, args GetFeaturedArgs) (GetFeaturedResult, error) {
	project, language, err := wikimedia.ResolveSite(args.Project, args.Language)
	if err != nil {
		return GetFeaturedResult{}, err
	}
	if err := ValidateFeedSite("featured content", project, language); err != nil {
		return GetFeaturedResult{}, err
	}
	datePath, err := ResolveFeaturedDate(args.Date, time.Now())
	if err != nil {
		return GetFeaturedResult{}, err
	}

	resp, err := c.GetFeatured(ctx, project, language, datePath)
	if err != nil {
		return GetFeaturedResult{}, err
	}

	// A missing block means the feed has no such content for the day;
	// the matching field stays absent rather than erroring out.
	result := GetFeaturedResult{Date: datePath}
	if resp.TFA != nil {
		result.FeaturedArticle = toFeaturedArticle(resp.TFA)
	}
	if resp.MostRead != nil {
		result.MostReadArticles = toMostRead(resp.MostRead.Articles)
	}
	if resp.Image != nil {
		result.PictureOfTheDay = toPicture(resp.Image)
	}
	return result, nil
}

// GetOnThisDayMCP is the MCP wrapper for GetOnThisDay
func (c *Client) GetOnThisDayMCP(ctx context.Context, args GetOnThisDayArgs) (GetOnThisDayResult, error) {
	eventType, err := ValidateEventType(args.Type)
	if err != nil {
		return GetOnThisDayResult{}, err
	}
	project, language, err := wikimedia.ResolveSite(args.Project, args.Language)
	if err != nil {
		return GetOnThisDayResult{}, err
	}
	if err := ValidateFeedSite("on this day events", project, language); err != nil {
		return GetOnThisDayResult{}, err
	}
	month, day, err := ResolveEventDate(args.Date, time.Now())
	if err != nil {
		return GetOnThisDayResult{}, err
	}

	resp, err := c.GetOnThisDay(ctx, project, language, eventType, month, day)
	if err != nil {
		return GetOnThisDayResult{}, err
	}

	result := GetOnThisDayResult{Date: month + "/" + day, Type: eventType}
	if eventType == "all" || eventType == "selected" {
		result.Selected = toEvents(resp.Selected, MaxSelected, language)
	}
	if eventType == "all" || eventType == "events" {
		result.Events = toEvents(resp.Events, MaxEvents, language)
	}
	if eventType == "all" || eventType == "births" {
		result.Births = toEvents(resp.Births, MaxBirths, language)
	}
	if eventType == "all" || eventType == "deaths" {
		result.Deaths = toEvents(resp.Deaths, MaxDeaths, language)
	}
	if eventType == "all" || eventType == "holidays" {
		result.Holidays = toEvents(resp.Holidays, 0, language)
	}
	return result, nil
}

// toFeaturedArticle projects the tfa block
func toFeaturedArticle(a *FeedArticle) *FeaturedArticle {
	return &FeaturedArticle{
		Title:       articleTitle(a),
		Description: a.Description,
		Extract:     a.Extract,
		URL:         articleURL(a),
	}
}

// toMostRead projects and caps the most-read list
func toMostRead(articles []FeedArticle) []MostReadArticle {
	if len(articles) > MaxMostRead {
		articles = articles[:MaxMostRead]
	}
	out := make([]MostReadArticle, 0, len(articles))
	for i := range articles {
		a := &articles[i]
		out = append(out, MostReadArticle{
			Title:   articleTitle(a),
			Extract: a.Extract,
			Views:   a.Views,
			Rank:    a.Rank,
			URL:     articleURL(a),
		})
	}
	return out
}

// toPicture projects the image block, preferring the full image over the
// thumbnail.
func toPicture(img *FeedImage) *PictureOfTheDay {
	p := &PictureOfTheDay{
		Title:    img.Title,
		FilePage: img.FilePage,
	}
	if img.Description != nil {
		p.Description = img.Description.Text
	}
	if img.Image != nil {
		p.ImageURL = img.Image.Source
	} else if img.Thumbnail != nil {
		p.ImageURL = img.Thumbnail.Source
	}
	return p
}

// toEvents projects one event category, keeping at most max entries. Zero
// means no cap; holidays come through whole.
func toEvents(events []FeedEvent, max int, language string) []Event {
	if max > 0 && len(events) > max {
		events = events[:max]
	}
	out := make([]Event, 0, len(events))
	for i := range events {
		ev := &events[i]
		e := Event{Year: ev.Year, Text: ev.Text}
		for j := range ev.Pages {
			p := &ev.Pages[j]
			e.Pages = append(e.Pages, PageLink{
				Title: articleTitle(p),
				URL:   pageLinkURL(p, language),
			})
		}
		out = append(out, e)
	}
	return out
}

// articleTitle prefers the normalized title over the raw key form
func articleTitle(a *FeedArticle) string {
	if a.Titles != nil && a.Titles.Normalized != "" {
		return a.Titles.Normalized
	}
	return a.Title
}

// articleURL returns the desktop page link when present
func articleURL(a *FeedArticle) string {
	if a.ContentURLs != nil {
		return a.ContentURLs.Desktop.Page
	}
	return ""
}

// pageLinkURL falls back to a constructed /wiki/ link when the feed omits
// content_urls
func pageLinkURL(a *FeedArticle, language string) string {
	if u := articleURL(a); u != "" {
		return u
	}
	key := a.Title
	if a.Titles != nil && a.Titles.Canonical != "" {
		key = a.Titles.Canonical
	}
	return wikimedia.PageURL(language, wikimedia.DefaultProject, key)
}
