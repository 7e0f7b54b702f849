package pages

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "github.com/olgasafonova/wikimedia-mcp-server/internal/errors"
)

// =============================================================================
// GetPageMCP Tests
// =============================================================================

func TestGetPageMCP_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary := PageSummary{
			Title:       "Albert Einstein",
			Description: "German-born theoretical physicist (1879-1955)",
			Extract:     "Albert Einstein was a German-born theoretical physicist.",
			Timestamp:   "2025-08-20T11:37:12Z",
			ContentURLs: &ContentURLs{
				Desktop: PlatformURLs{Page: "https://en.wikipedia.org/wiki/Albert_Einstein"},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(summary)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	defer client.Close()

	result, err := client.GetPageMCP(ctx(), GetPageArgs{Title: "Albert Einstein"})
	if err != nil {
		t.Fatalf("GetPageMCP failed: %v", err)
	}

	if result.Title != "Albert Einstein" {
		t.Errorf("Title = %q", result.Title)
	}
	if result.Extract != "Albert Einstein was a German-born theoretical physicist." {
		t.Errorf("Extract = %q", result.Extract)
	}
	if result.URL != "https://en.wikipedia.org/wiki/Albert_Einstein" {
		t.Errorf("URL = %q", result.URL)
	}
	if result.LastModified != "2025-08-20T11:37:12Z" {
		t.Errorf("LastModified = %q", result.LastModified)
	}
	if result.Description != "German-born theoretical physicist (1879-1955)" {
		t.Errorf("Description = %q", result.Description)
	}
}

func TestGetPageMCP_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"type":"https://mediawiki.org/wiki/HyperSwitch/errors/not_found","title":"Not found.","status":404}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	defer client.Close()

	_, err := client.GetPageMCP(ctx(), GetPageArgs{Title: "No Such Page Xyzzy"})
	if err == nil {
		t.Fatal("expected error for missing page")
	}
	if !apierrors.IsNotFound(err) {
		t.Errorf("error = %T, want NotFoundError", err)
	}
}

func TestGetPageMCP_URLFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No content_urls block in the response
		_, _ = w.Write([]byte(`{"title":"Albert Einstein","extract":"..."}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	defer client.Close()

	result, err := client.GetPageMCP(ctx(), GetPageArgs{Title: "Albert Einstein"})
	if err != nil {
		t.Fatalf("GetPageMCP failed: %v", err)
	}
	if result.URL != "https://en.wikipedia.org/wiki/Albert_Einstein" {
		t.Errorf("URL = %q, want constructed fallback", result.URL)
	}
}

func TestGetPageMCP_FollowsRedirect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The REST API resolves redirects itself; "Einstein" comes back
		// as the canonical page
		summary := PageSummary{
			Title:   "Albert Einstein",
			Extract: "Albert Einstein was a German-born theoretical physicist.",
		}
		_ = json.NewEncoder(w).Encode(summary)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	defer client.Close()

	result, err := client.GetPageMCP(ctx(), GetPageArgs{Title: "Einstein"})
	if err != nil {
		t.Fatalf("GetPageMCP failed: %v", err)
	}
	if result.Title != "Albert Einstein" {
		t.Errorf("Title = %q, want canonical title", result.Title)
	}
}

func TestGetPageMCP_EmptyTitle(t *testing.T) {
	client := NewClient()
	defer client.Close()

	_, err := client.GetPageMCP(ctx(), GetPageArgs{Title: ""})
	if err == nil {
		t.Error("expected error for empty title")
	}
	if !apierrors.IsValidation(err) {
		t.Errorf("error = %T, want ValidationError", err)
	}
}

func TestGetPageMCP_InvalidProject(t *testing.T) {
	client := NewClient()
	defer client.Close()

	_, err := client.GetPageMCP(ctx(), GetPageArgs{Title: "Go", Project: "evil.example"})
	if err == nil {
		t.Error("expected error for unsafe project value")
	}
	if !apierrors.IsValidation(err) {
		t.Errorf("error = %T, want ValidationError", err)
	}
}

// =============================================================================
// GetLanguagesMCP Tests
// =============================================================================

func TestGetLanguagesMCP_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := QueryResponse{
			Query: &QueryResult{
				Pages: []QueryPage{{
					PageID: 736,
					Title:  "Albert Einstein",
					LangLinks: []LangLink{
						{Lang: "fr", LangName: "French", Autonym: "français", Title: "Albert Einstein", URL: "https://fr.wikipedia.org/wiki/Albert_Einstein"},
						{Lang: "de", LangName: "German", Autonym: "Deutsch", Title: "Albert Einstein", URL: "https://de.wikipedia.org/wiki/Albert_Einstein"},
						{Lang: "ja", LangName: "Japanese", Autonym: "日本語", Title: "アルベルト・アインシュタイン", URL: "https://ja.wikipedia.org/wiki/%E3%82%A2%E3%83%AB%E3%83%99%E3%83%AB%E3%83%88%E3%83%BB%E3%82%A2%E3%82%A4%E3%83%B3%E3%82%B7%E3%83%A5%E3%82%BF%E3%82%A4%E3%83%B3"},
					},
				}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	defer client.Close()

	result, err := client.GetLanguagesMCP(ctx(), GetLanguagesArgs{Title: "Albert Einstein"})
	if err != nil {
		t.Fatalf("GetLanguagesMCP failed: %v", err)
	}

	if result.Count != 3 {
		t.Errorf("Count = %d, want 3", result.Count)
	}
	if result.Title != "Albert Einstein" {
		t.Errorf("Title = %q", result.Title)
	}

	// Links must come back sorted by language code
	codes := make([]string, 0, len(result.Languages))
	for _, l := range result.Languages {
		codes = append(codes, l.LanguageCode)
	}
	if codes[0] != "de" || codes[1] != "fr" || codes[2] != "ja" {
		t.Errorf("codes = %v, want sorted [de fr ja]", codes)
	}

	de := result.Languages[0]
	if de.LanguageName != "German" {
		t.Errorf("LanguageName = %q", de.LanguageName)
	}
	if de.Title != "Albert Einstein" {
		t.Errorf("Title = %q", de.Title)
	}
	if de.URL != "https://de.wikipedia.org/wiki/Albert_Einstein" {
		t.Errorf("URL = %q", de.URL)
	}
}

func TestGetLanguagesMCP_NoLinks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"query":{"pages":[{"pageid":1,"title":"Obscure Local Topic"}]}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	defer client.Close()

	result, err := client.GetLanguagesMCP(ctx(), GetLanguagesArgs{Title: "Obscure Local Topic"})
	if err != nil {
		t.Fatalf("GetLanguagesMCP failed: %v", err)
	}
	if result.Count != 0 {
		t.Errorf("Count = %d, want 0", result.Count)
	}
	if len(result.Languages) != 0 {
		t.Errorf("Languages = %d, want 0", len(result.Languages))
	}
}

func TestGetLanguagesMCP_MissingPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"query":{"pages":[{"title":"Xyzzy","missing":true}]}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	defer client.Close()

	_, err := client.GetLanguagesMCP(ctx(), GetLanguagesArgs{Title: "Xyzzy"})
	if err == nil {
		t.Fatal("expected error for missing page")
	}
	if !apierrors.IsNotFound(err) {
		t.Errorf("error = %T, want NotFoundError", err)
	}
}

func TestGetLanguagesMCP_AutonymFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := QueryResponse{
			Query: &QueryResult{
				Pages: []QueryPage{{
					Title: "Test",
					LangLinks: []LangLink{
						{Lang: "sv", Autonym: "svenska", Title: "Test"},
					},
				}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	defer client.Close()

	result, err := client.GetLanguagesMCP(ctx(), GetLanguagesArgs{Title: "Test"})
	if err != nil {
		t.Fatalf("GetLanguagesMCP failed: %v", err)
	}

	link := result.Languages[0]
	if link.LanguageName != "svenska" {
		t.Errorf("LanguageName = %q, want autonym fallback", link.LanguageName)
	}
	if link.URL != "https://sv.wikipedia.org/wiki/Test" {
		t.Errorf("URL = %q, want constructed fallback", link.URL)
	}
}

func TestGetLanguagesMCP_EmptyTitle(t *testing.T) {
	client := NewClient()
	defer client.Close()

	_, err := client.GetLanguagesMCP(ctx(), GetLanguagesArgs{Title: "   "})
	if err == nil {
		t.Error("expected error for blank title")
	}
	if !apierrors.IsValidation(err) {
		t.Errorf("error = %T, want ValidationError", err)
	}
}
