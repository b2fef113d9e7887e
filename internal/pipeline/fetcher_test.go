package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jray-8/us-presidents-dataset/internal/cache"
	"github.com/jray-8/us-presidents-dataset/internal/model"
)

func testConfig(t *testing.T) *model.Config {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.HTTP.RequestsPerSecond = 1000
	return cfg
}

func TestFetch_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/page", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = fmt.Fprint(w, "<html><body>OK</body></html>")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	fetcher := NewFetcher(testConfig(t), nil)
	body, err := fetcher.Fetch(context.Background(), server.URL+"/page")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(body) != "<html><body>OK</body></html>" {
		t.Errorf("Unexpected body: %s", body)
	}
}

func TestFetch_SetsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			gotUA = r.Header.Get("User-Agent")
		}
	}))
	defer server.Close()

	cfg := testConfig(t)
	cfg.HTTP.UserAgent = "presidents-test/1.0"
	fetcher := NewFetcher(cfg, nil)
	if _, err := fetcher.Fetch(context.Background(), server.URL+"/page"); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if gotUA != "presidents-test/1.0" {
		t.Errorf("User-Agent = %q", gotUA)
	}
}

func TestFetch_RobotsDisallowed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, "User-agent: *\nDisallow: /\n")
	})
	mux.HandleFunc("/page", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, "should not be reachable")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	fetcher := NewFetcher(testConfig(t), nil)
	if _, err := fetcher.Fetch(context.Background(), server.URL+"/page"); err == nil {
		t.Error("expected robots.txt to block the fetch")
	}
}

func TestFetch_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	fetcher := NewFetcher(testConfig(t), nil)
	if _, err := fetcher.Fetch(context.Background(), server.URL+"/page"); err == nil {
		t.Error("expected error on 5xx status")
	}
}

func TestFetch_ServesFromCache(t *testing.T) {
	var hits int
	mux := http.NewServeMux()
	mux.HandleFunc("/page", func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = fmt.Fprint(w, "fresh body")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	cfg := testConfig(t)
	pages := cache.NewMemoryCache(0, 0)
	fetcher := NewFetcher(cfg, pages)

	for i := 0; i < 3; i++ {
		body, err := fetcher.Fetch(context.Background(), server.URL+"/page")
		if err != nil {
			t.Fatalf("Fetch %d failed: %v", i, err)
		}
		if string(body) != "fresh body" {
			t.Errorf("Fetch %d body = %q", i, body)
		}
	}
	if hits != 1 {
		t.Errorf("origin hit %d times, want 1", hits)
	}
}
