package tools

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/olgasafonova/wikimedia-mcp-server/internal/feed"
	"github.com/olgasafonova/wikimedia-mcp-server/internal/pages"
	"github.com/olgasafonova/wikimedia-mcp-server/internal/search"
)

func testClients(t *testing.T, logger *slog.Logger) (*search.Client, *pages.Client, *feed.Client) {
	t.Helper()
	searchClient := search.NewClient(search.WithLogger(logger))
	t.Cleanup(searchClient.Close)
	pagesClient := pages.NewClient(pages.WithLogger(logger))
	t.Cleanup(pagesClient.Close)
	feedClient := feed.NewClient(feed.WithLogger(logger))
	t.Cleanup(feedClient.Close)
	return searchClient, pagesClient, feedClient
}

func TestNewHandlerRegistry(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	searchClient, pagesClient, feedClient := testClients(t, logger)

	registry := NewHandlerRegistry(searchClient, pagesClient, feedClient, logger)

	if registry == nil {
		t.Fatal("Expected non-nil registry")
	}
	if registry.searchClient != searchClient {
		t.Error("Registry should hold the search client reference")
	}
	if registry.pagesClient != pagesClient {
		t.Error("Registry should hold the pages client reference")
	}
	if registry.feedClient != feedClient {
		t.Error("Registry should hold the feed client reference")
	}
	if registry.logger != logger {
		t.Error("Registry should hold the logger reference")
	}
}

func TestBuildTool(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	searchClient, pagesClient, feedClient := testClients(t, logger)

	registry := NewHandlerRegistry(searchClient, pagesClient, feedClient, logger)

	tests := []struct {
		name      string
		spec      ToolSpec
		wantName  string
		wantDesc  string
		wantRO    bool
		wantIdem  bool
		wantDestr bool
		wantOpen  bool
	}{
		{
			name: "read-only tool",
			spec: ToolSpec{
				Name:        "search_content",
				Title:       "Search Content",
				Description: "Full-text search across page content",
				Method:      "SearchContent",
				API:         "core",
				ReadOnly:    true,
				Idempotent:  true,
			},
			wantName:  "search_content",
			wantDesc:  "Full-text search across page content",
			wantRO:    true,
			wantIdem:  true,
			wantDestr: false,
			wantOpen:  false,
		},
		{
			name: "open world tool",
			spec: ToolSpec{
				Name:        "get_page",
				Title:       "Get Page",
				Description: "Get a page summary by title",
				Method:      "GetPage",
				API:         "rest",
				OpenWorld:   true,
			},
			wantName: "get_page",
			wantDesc: "Get a page summary by title",
			wantOpen: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := registry.buildTool(tt.spec)

			if tool.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", tool.Name, tt.wantName)
			}
			if tool.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", tool.Description, tt.wantDesc)
			}
			if tool.Annotations == nil {
				t.Fatal("Expected annotations")
			}
			if tool.Annotations.ReadOnlyHint != tt.wantRO {
				t.Errorf("ReadOnlyHint = %v, want %v", tool.Annotations.ReadOnlyHint, tt.wantRO)
			}
			if tool.Annotations.IdempotentHint != tt.wantIdem {
				t.Errorf("IdempotentHint = %v, want %v", tool.Annotations.IdempotentHint, tt.wantIdem)
			}
			if tt.wantDestr && (tool.Annotations.DestructiveHint == nil || !*tool.Annotations.DestructiveHint) {
				t.Error("Expected DestructiveHint to be true")
			}
			if tt.wantOpen && (tool.Annotations.OpenWorldHint == nil || !*tool.Annotations.OpenWorldHint) {
				t.Error("Expected OpenWorldHint to be true")
			}
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	searchClient, pagesClient, feedClient := testClients(t, logger)

	registry := NewHandlerRegistry(searchClient, pagesClient, feedClient, logger)

	// A panicking handler must surface as an error, never a zero-valued success
	err := func() (err error) {
		defer registry.recoverPanic("test_tool", &err)
		panic("test panic")
	}()

	if err == nil {
		t.Fatal("Expected recovered panic to be converted into an error")
	}
	if !strings.Contains(err.Error(), "test_tool") {
		t.Errorf("Error = %q, want tool name included", err.Error())
	}
	if !strings.Contains(err.Error(), "test panic") {
		t.Errorf("Error = %q, want panic value included", err.Error())
	}
}

func TestRecoverPanic_NoPanicLeavesErrorUntouched(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	searchClient, pagesClient, feedClient := testClients(t, logger)

	registry := NewHandlerRegistry(searchClient, pagesClient, feedClient, logger)

	err := func() (err error) {
		defer registry.recoverPanic("test_tool", &err)
		return nil
	}()

	if err != nil {
		t.Errorf("Error = %v, want nil when nothing panicked", err)
	}
}

func TestLogExecution(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	searchClient, pagesClient, feedClient := testClients(t, logger)

	registry := NewHandlerRegistry(searchClient, pagesClient, feedClient, logger)
	spec := ToolSpec{Name: "test_tool", API: "core"}

	// Test with SearchContentArgs
	registry.logExecution(spec,
		search.SearchContentArgs{Query: "golang"},
		search.SearchContentResult{
			Results: []search.PageMatch{{Title: "Go (programming language)"}},
			Count:   1,
		})

	// Test with GetPageArgs
	registry.logExecution(spec,
		pages.GetPageArgs{Title: "Albert Einstein"},
		pages.GetPageResult{Title: "Albert Einstein"})

	// Test with GetLanguagesArgs
	registry.logExecution(spec,
		pages.GetLanguagesArgs{Title: "Albert Einstein"},
		pages.GetLanguagesResult{Count: 3})

	// Test with GetOnThisDayArgs
	registry.logExecution(spec,
		feed.GetOnThisDayArgs{Date: "01/28", Type: "births"},
		feed.GetOnThisDayResult{Births: []feed.Event{{Year: 1912}}})
}

func TestAllToolsNotEmpty(t *testing.T) {
	if len(AllTools) == 0 {
		t.Error("AllTools should not be empty")
	}

	// Verify each tool has required fields
	for i, spec := range AllTools {
		if spec.Name == "" {
			t.Errorf("Tool %d has empty Name", i)
		}
		if spec.Method == "" {
			t.Errorf("Tool %s has empty Method", spec.Name)
		}
		if spec.Description == "" {
			t.Errorf("Tool %s has empty Description", spec.Name)
		}
		if spec.API == "" {
			t.Errorf("Tool %s has empty API", spec.Name)
		}
	}
}

func TestAllToolsUniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, spec := range AllTools {
		if seen[spec.Name] {
			t.Errorf("Duplicate tool name: %s", spec.Name)
		}
		seen[spec.Name] = true
	}
}

func TestToolSpecMethods(t *testing.T) {
	knownMethods := map[string]bool{
		"SearchContent": true,
		"SearchTitles":  true,
		"GetPage":       true,
		"GetLanguages":  true,
		"GetFeatured":   true,
		"GetOnThisDay":  true,
	}

	for _, spec := range AllTools {
		if !knownMethods[spec.Method] {
			t.Errorf("Tool %s has unknown method: %s", spec.Name, spec.Method)
		}
	}
}

func TestToolsByAPI(t *testing.T) {
	coreTools := ToolsByAPI("core")
	if len(coreTools) != 2 {
		t.Errorf("Expected 2 core tools, got %d", len(coreTools))
	}

	for _, tool := range coreTools {
		if tool.API != "core" {
			t.Errorf("Tool %s has API %s, expected core", tool.Name, tool.API)
		}
	}

	feedTools := ToolsByAPI("feed")
	if len(feedTools) != 2 {
		t.Errorf("Expected 2 feed tools, got %d", len(feedTools))
	}

	for _, tool := range feedTools {
		if tool.API != "feed" {
			t.Errorf("Tool %s has API %s, expected feed", tool.Name, tool.API)
		}
	}

	// Non-existent API family should return empty
	unknownTools := ToolsByAPI("graphql")
	if len(unknownTools) != 0 {
		t.Errorf("Expected 0 tools for unknown API, got %d", len(unknownTools))
	}
}

func TestToolsByCategory(t *testing.T) {
	searchTools := ToolsByCategory("search")
	if len(searchTools) != 2 {
		t.Errorf("Expected 2 search tools, got %d", len(searchTools))
	}
	for _, tool := range searchTools {
		if tool.Category != "search" {
			t.Errorf("Tool %s has category %s, expected search", tool.Name, tool.Category)
		}
	}

	pageTools := ToolsByCategory("pages")
	if len(pageTools) != 2 {
		t.Errorf("Expected 2 page tools, got %d", len(pageTools))
	}
}
