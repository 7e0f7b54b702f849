package pages

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apierrors "github.com/olgasafonova/wikimedia-mcp-server/internal/errors"
)

func ctx() context.Context {
	return context.Background()
}

func TestHost(t *testing.T) {
	client := NewClient()
	defer client.Close()

	if got := client.host("de", "wikipedia"); got != "https://de.wikipedia.org" {
		t.Errorf("host = %q", got)
	}

	override := NewClient(WithBaseURL("http://localhost:8080"))
	defer override.Close()

	if got := override.host("de", "wikipedia"); got != "http://localhost:8080" {
		t.Errorf("host with override = %q", got)
	}
}

func TestGetSummary_BuildsRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/rest_v1/page/summary/Albert Einstein" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.EscapedPath() != "/api/rest_v1/page/summary/Albert%20Einstein" {
			t.Errorf("escaped path = %q", r.URL.EscapedPath())
		}
		_, _ = w.Write([]byte(`{"title":"Albert Einstein","extract":"German-born physicist"}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	defer client.Close()

	summary, err := client.GetSummary(ctx(), "Albert Einstein", "wikipedia", "en")
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	if summary.Title != "Albert Einstein" {
		t.Errorf("Title = %q", summary.Title)
	}
	if summary.Extract != "German-born physicist" {
		t.Errorf("Extract = %q", summary.Extract)
	}
}

func TestGetSummary_EscapesSlashInTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/api/rest_v1/page/summary/AC%2FDC" {
			t.Errorf("escaped path = %q", r.URL.EscapedPath())
		}
		_, _ = w.Write([]byte(`{"title":"AC/DC"}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	defer client.Close()

	if _, err := client.GetSummary(ctx(), "AC/DC", "wikipedia", "en"); err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
}

func TestGetSummary_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"type":"https://mediawiki.org/wiki/HyperSwitch/errors/not_found","title":"Not found.","status":404}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	defer client.Close()

	_, err := client.GetSummary(ctx(), "Xyzzy_no_such_page", "wikipedia", "en")
	if err == nil {
		t.Fatal("expected error for missing page")
	}
	if !apierrors.IsNotFound(err) {
		t.Errorf("error = %T, want NotFoundError", err)
	}
	if !strings.Contains(err.Error(), "Xyzzy_no_such_page") {
		t.Errorf("error = %q, should name the title", err.Error())
	}
}

func TestGetSummary_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"type":"about:blank","title":"Bad Gateway","status":502}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	defer client.Close()

	_, err := client.GetSummary(ctx(), "Anything", "wikipedia", "en")
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
	if !apierrors.IsUpstream(err) {
		t.Errorf("error = %T, want UpstreamError", err)
	}
	if !strings.Contains(err.Error(), "Bad Gateway") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestGetSummary_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<!DOCTYPE html><html></html>`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	defer client.Close()

	_, err := client.GetSummary(ctx(), "Anything", "wikipedia", "en")
	if err == nil {
		t.Fatal("expected error for HTML body")
	}
	if !apierrors.IsMalformedResponse(err) {
		t.Errorf("error = %T, want MalformedResponseError", err)
	}
}

func TestGetLangLinks_BuildsRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/w/api.php" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		for param, want := range map[string]string{
			"action":        "query",
			"titles":        "Albert Einstein",
			"prop":          "langlinks",
			"lllimit":       "500",
			"llprop":        "url|langname|autonym",
			"redirects":     "1",
			"format":        "json",
			"formatversion": "2",
		} {
			if q.Get(param) != want {
				t.Errorf("%s = %q, want %q", param, q.Get(param), want)
			}
		}
		_, _ = w.Write([]byte(`{"batchcomplete":true,"query":{"pages":[{"pageid":736,"title":"Albert Einstein","langlinks":[]}]}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	defer client.Close()

	page, err := client.GetLangLinks(ctx(), "Albert Einstein", "wikipedia", "en")
	if err != nil {
		t.Fatalf("GetLangLinks failed: %v", err)
	}
	if page.Title != "Albert Einstein" {
		t.Errorf("Title = %q", page.Title)
	}
}

func TestGetLangLinks_MissingPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"batchcomplete":true,"query":{"pages":[{"title":"Xyzzy","missing":true}]}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	defer client.Close()

	_, err := client.GetLangLinks(ctx(), "Xyzzy", "wikipedia", "en")
	if err == nil {
		t.Fatal("expected error for missing page")
	}
	if !apierrors.IsNotFound(err) {
		t.Errorf("error = %T, want NotFoundError", err)
	}
}

func TestGetLangLinks_EmptyQueryBlock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"batchcomplete":true}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	defer client.Close()

	_, err := client.GetLangLinks(ctx(), "Anything", "wikipedia", "en")
	if err == nil {
		t.Fatal("expected error for empty query block")
	}
	if !apierrors.IsNotFound(err) {
		t.Errorf("error = %T, want NotFoundError", err)
	}
}
