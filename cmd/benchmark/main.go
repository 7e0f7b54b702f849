// Command benchmark measures live Wikimedia API latency for each tool family.
// It hits production endpoints and needs network access; run it by hand, not in CI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/olgasafonova/wikimedia-mcp-server/internal/base"
	"github.com/olgasafonova/wikimedia-mcp-server/internal/feed"
	"github.com/olgasafonova/wikimedia-mcp-server/internal/pages"
	"github.com/olgasafonova/wikimedia-mcp-server/internal/search"
)

func main() {
	fmt.Println("Wikimedia MCP Server - Performance Measurements")
	fmt.Println("================================================")
	fmt.Println()

	userAgent := os.Getenv("WIKIMEDIA_USER_AGENT")
	if userAgent == "" {
		userAgent = base.DefaultUserAgent
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	ctx := context.Background()

	searchClient := search.NewClient(
		search.WithLogger(logger),
		search.WithUserAgent(userAgent),
		search.WithTimeout(15*time.Second),
	)
	defer searchClient.Close()

	pagesClient := pages.NewClient(
		pages.WithLogger(logger),
		pages.WithUserAgent(userAgent),
		pages.WithTimeout(15*time.Second),
	)
	defer pagesClient.Close()

	feedClient := feed.NewClient(
		feed.WithLogger(logger),
		feed.WithUserAgent(userAgent),
		feed.WithTimeout(15*time.Second),
	)
	defer feedClient.Close()

	measureSearch(ctx, searchClient)
	measurePages(ctx, pagesClient)
	measureFeeds(ctx, feedClient)
	measureConnectionReuse(ctx, logger, userAgent)

	fmt.Println("=== Summary ===")
	fmt.Println()
	fmt.Println("Notes:")
	fmt.Println("• Latency is dominated by the upstream API, not this server")
	fmt.Println("• Connection reuse: the first request pays TLS setup, later ones share the pool")
	fmt.Println("• Feed responses are an order of magnitude larger than search responses")
}

func measureSearch(ctx context.Context, client *search.Client) {
	fmt.Println("=== Search Latency ===")
	fmt.Println()

	fmt.Println("1. search_content:")
	start := time.Now()
	content, err := client.SearchContentMCP(ctx, search.SearchContentArgs{Query: "solar eclipse", Limit: 10})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   %d results in %v\n", content.Count, time.Since(start))
	fmt.Println()

	fmt.Println("2. search_titles:")
	start = time.Now()
	titles, err := client.SearchTitlesMCP(ctx, search.SearchTitlesArgs{Query: "Lond", Limit: 10})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   %d results in %v\n", titles.Count, time.Since(start))
	fmt.Println()
}

func measurePages(ctx context.Context, client *pages.Client) {
	fmt.Println("=== Page Latency ===")
	fmt.Println()

	fmt.Println("3. get_page:")
	start := time.Now()
	page, err := client.GetPageMCP(ctx, pages.GetPageArgs{Title: "Go (programming language)"})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   %q (%d chars) in %v\n", page.Title, len(page.Extract), time.Since(start))
	fmt.Println()

	fmt.Println("4. get_languages:")
	start = time.Now()
	langs, err := client.GetLanguagesMCP(ctx, pages.GetLanguagesArgs{Title: "Go (programming language)"})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   %d languages in %v\n", langs.Count, time.Since(start))
	fmt.Println()
}

func measureFeeds(ctx context.Context, client *feed.Client) {
	fmt.Println("=== Feed Latency ===")
	fmt.Println()

	fmt.Println("5. get_featured (today):")
	start := time.Now()
	featured, err := client.GetFeaturedMCP(ctx, feed.GetFeaturedArgs{})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   %d most read articles in %v\n", len(featured.MostReadArticles), time.Since(start))
	fmt.Println()

	fmt.Println("6. get_on_this_day (selected):")
	start = time.Now()
	events, err := client.GetOnThisDayMCP(ctx, feed.GetOnThisDayArgs{Type: "selected"})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   %d events in %v\n", len(events.Selected), time.Since(start))
	fmt.Println()
}

// measureConnectionReuse compares a cold request against one that reuses the
// pooled connection to the same host. Uses a fresh client so the first call
// really pays for connection setup.
func measureConnectionReuse(ctx context.Context, logger *slog.Logger, userAgent string) {
	fmt.Println("=== Connection Reuse ===")
	fmt.Println()

	client := pages.NewClient(
		pages.WithLogger(logger),
		pages.WithUserAgent(userAgent),
		pages.WithTimeout(15*time.Second),
	)
	defer client.Close()

	start := time.Now()
	_, err := client.GetPageMCP(ctx, pages.GetPageArgs{Title: "Berlin"})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	firstCall := time.Since(start)
	fmt.Printf("   First call:  %v\n", firstCall)

	start = time.Now()
	_, err = client.GetPageMCP(ctx, pages.GetPageArgs{Title: "Paris"})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	secondCall := time.Since(start)
	fmt.Printf("   Second call: %v\n", secondCall)
	if secondCall > 0 {
		fmt.Printf("   Ratio: %.1fx\n", float64(firstCall)/float64(secondCall))
	}
	fmt.Println()
}
