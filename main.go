// Wikimedia MCP Server - A Model Context Protocol server for Wikimedia projects
// Provides tools for searching and reading Wikipedia and its sibling wikis
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/wikimedia-mcp-server/internal/feed"
	"github.com/olgasafonova/wikimedia-mcp-server/internal/pages"
	"github.com/olgasafonova/wikimedia-mcp-server/internal/search"
	"github.com/olgasafonova/wikimedia-mcp-server/tools"
	"github.com/olgasafonova/wikimedia-mcp-server/tracing"
)

const (
	ServerName    = "wikimedia-mcp-server"
	ServerVersion = "1.0.0"
)

const instructions = `Wikimedia MCP Server provides read-only tools for Wikipedia and sibling projects.

Available tools:
- search_content: Full-text search across page content
- search_titles: Autocomplete page titles by prefix
- get_page: Get a page summary with extract, URL and last modified date
- get_languages: List other-language versions of a page
- get_featured: Featured article, most read pages and picture of the day
- get_on_this_day: Historical events for a calendar day

The feed tools (get_featured, get_on_this_day) support only project "wikipedia"
and languages en, de, fr, es, ru, ja, zh. All other tools accept any
project/language pair, e.g. project "wiktionary" with language "fr".

Configure via environment variables:
- WIKIMEDIA_USER_AGENT: User-Agent header for API requests
- WIKIMEDIA_TIMEOUT: Per-request timeout (default 10s)
- WIKIMEDIA_LOG_LEVEL: debug, info, warn or error (default info)`

func main() {
	// Load configuration from environment
	config, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.LogLevel,
	}))

	ctx := context.Background()

	// Set up tracing; a no-op unless OTEL_ENABLED or an OTLP endpoint is set
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() { _ = shutdownTracing(ctx) }()

	// One client per upstream API family
	searchClient := search.NewClient(
		search.WithLogger(logger),
		search.WithTimeout(config.Timeout),
		search.WithUserAgent(config.UserAgent),
	)
	defer searchClient.Close()

	pagesClient := pages.NewClient(
		pages.WithLogger(logger),
		pages.WithTimeout(config.Timeout),
		pages.WithUserAgent(config.UserAgent),
	)
	defer pagesClient.Close()

	feedClient := feed.NewClient(
		feed.WithLogger(logger),
		feed.WithTimeout(config.Timeout),
		feed.WithUserAgent(config.UserAgent),
	)
	defer feedClient.Close()

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: instructions,
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(searchClient, pagesClient, feedClient, logger)
	registry.RegisterAll(server)

	// Run server on stdio transport
	logger.Info("Starting Wikimedia MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"timeout", config.Timeout,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
