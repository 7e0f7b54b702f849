package feed

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

func TestGetFeatured_BuildsRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wikipedia/en/featured/2025/01/02" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	defer client.Close()

	resp, err := client.GetFeatured(ctx(), "wikipedia", "en", "2025/01/02")
	if err != nil {
		t.Fatalf("GetFeatured failed: %v", err)
	}
	if resp.TFA != nil || resp.MostRead != nil || resp.Image != nil {
		t.Error("empty payload should decode to empty response")
	}
}

func TestGetFeatured_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"type":"about:blank","title":"Not found.","status":404}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	defer client.Close()

	_, err := client.GetFeatured(ctx(), "wikipedia", "en", "2099/01/01")
	if err == nil {
		t.Fatal("expected error for future date")
	}
	if !apierrors.IsNotFound(err) {
		t.Errorf("error = %T, want NotFoundError", err)
	}
	if !strings.Contains(err.Error(), "featured content") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestGetOnThisDay_BuildsRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wikipedia/de/onthisday/selected/01/28" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"selected":[]}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	defer client.Close()

	if _, err := client.GetOnThisDay(ctx(), "wikipedia", "de", "selected", "01", "28"); err != nil {
		t.Fatalf("GetOnThisDay failed: %v", err)
	}
}

func TestGetOnThisDay_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`boom`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	defer client.Close()

	_, err := client.GetOnThisDay(ctx(), "wikipedia", "en", "all", "01", "28")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if !apierrors.IsUpstream(err) {
		t.Errorf("error = %T, want UpstreamError", err)
	}
	if strings.Contains(err.Error(), "boom") {
		t.Errorf("error = %q, must not leak the raw body", err.Error())
	}
}

func TestGetFeatured_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[[["`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	defer client.Close()

	_, err := client.GetFeatured(ctx(), "wikipedia", "en", "2025/01/02")
	if err == nil {
		t.Fatal("expected error for truncated body")
	}
	if !apierrors.IsMalformedResponse(err) {
		t.Errorf("error = %T, want MalformedResponseError", err)
	}
}
