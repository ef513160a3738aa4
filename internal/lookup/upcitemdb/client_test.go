package upcitemdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/homeshelf/homeshelf/internal/config"
	"github.com/homeshelf/homeshelf/internal/lookup/provider"
)

func newTestClient(server *httptest.Server) *Client {
	cfg := config.UPCItemDBConfig{
		BaseURL: server.URL,
		Timeout: 5,
	}
	return NewClient(cfg, zerolog.Nop())
}

func TestClient_LookupCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/prod/trial/lookup" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("upc") != "885909950805" {
			t.Errorf("unexpected upc: %s", r.URL.Query().Get("upc"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"code": "OK",
			"total": 1,
			"items": [{
				"title": "The Last of Us Part II - PlayStation 4",
				"brand": "Naughty Dog",
				"category": "Media > Video Games",
				"isbn": "",
				"images": ["https://example.com/cover.jpg"]
			}]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	item, err := client.LookupCode(context.Background(), "885909950805")
	if err != nil {
		t.Fatalf("LookupCode() error = %v", err)
	}

	if item.Title != "The Last of Us Part II - PlayStation 4" {
		t.Errorf("Title = %q", item.Title)
	}
	if item.Brand != "Naughty Dog" {
		t.Errorf("Brand = %q", item.Brand)
	}
	if len(item.Images) != 1 {
		t.Errorf("Images = %v", item.Images)
	}
}

func TestClient_LookupCode_NoItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": "OK", "total": 0, "items": []}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.LookupCode(context.Background(), "000000000000")
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("LookupCode() error = %v, want ErrItemNotFound", err)
	}
}

func TestClient_LookupCode_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.LookupCode(context.Background(), "885909950805")

	var rl *provider.RateLimitError
	if !errors.As(err, &rl) {
		t.Fatalf("LookupCode() error = %v, want RateLimitError", err)
	}
	if rl.Provider != "upcitemdb" {
		t.Errorf("Provider = %q, want %q", rl.Provider, "upcitemdb")
	}
	if rl.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want 429", rl.StatusCode)
	}
	if !provider.IsRateLimit(err) {
		t.Error("IsRateLimit() = false, want true")
	}
}
