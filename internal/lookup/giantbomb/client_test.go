package giantbomb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/homeshelf/homeshelf/internal/config"
)

func newTestClient(server *httptest.Server) *Client {
	cfg := config.GiantBombConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 5,
	}
	return NewClient(cfg, zerolog.Nop())
}

func TestClient_IsConfigured(t *testing.T) {
	client := NewClient(config.GiantBombConfig{APIKey: "key"}, zerolog.Nop())
	if !client.IsConfigured() {
		t.Error("IsConfigured() = false with API key set")
	}

	client = NewClient(config.GiantBombConfig{}, zerolog.Nop())
	if client.IsConfigured() {
		t.Error("IsConfigured() = true without API key")
	}
}

func TestClient_SearchGames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("api_key") != "test-key" {
			t.Errorf("api_key = %q", q.Get("api_key"))
		}
		if q.Get("query") != "Cyberpunk 2077" {
			t.Errorf("query = %q", q.Get("query"))
		}
		if q.Get("resources") != "game" {
			t.Errorf("resources = %q", q.Get("resources"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status_code": 1,
			"error": "OK",
			"results": [
				{"id": 30085, "name": "Cyberpunk 2077", "api_detail_url": "https://example.com/api/game/3030-30085/", "original_release_date": "2020-12-10"},
				{"id": 80884, "name": "Cyberpunk 2077: Phantom Liberty", "api_detail_url": "https://example.com/api/game/3030-80884/", "original_release_date": "2023-09-26"}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	results, err := client.SearchGames(context.Background(), "Cyberpunk 2077")
	if err != nil {
		t.Fatalf("SearchGames() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Name != "Cyberpunk 2077" {
		t.Errorf("Name = %q", results[0].Name)
	}
	if results[0].APIDetailURL != "https://example.com/api/game/3030-30085/" {
		t.Errorf("APIDetailURL = %q", results[0].APIDetailURL)
	}
}

func TestClient_SearchGames_NoAPIKey(t *testing.T) {
	client := NewClient(config.GiantBombConfig{}, zerolog.Nop())
	_, err := client.SearchGames(context.Background(), "anything")
	if !errors.Is(err, ErrAPIKeyMissing) {
		t.Errorf("SearchGames() error = %v, want ErrAPIKeyMissing", err)
	}
}

func TestClient_SearchGames_APIErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status_code": 100, "error": "Invalid API Key", "results": []}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.SearchGames(context.Background(), "anything")
	if !errors.Is(err, ErrAPIError) {
		t.Errorf("SearchGames() error = %v, want ErrAPIError", err)
	}
}

func TestClient_GetGameByURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/game/3030-30085/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("api_key") != "test-key" {
			t.Errorf("api_key = %q", r.URL.Query().Get("api_key"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status_code": 1,
			"error": "OK",
			"results": {
				"name": "Cyberpunk 2077",
				"deck": "An open-world RPG set in Night City.",
				"original_release_date": "2020-12-10",
				"platforms": [{"name": "PC"}, {"name": "PlayStation 5"}],
				"genres": [{"name": "Role-Playing"}],
				"developers": [{"name": "CD Projekt RED"}],
				"age_ratings": [{"category": 1, "rating": 11}],
				"image": {"super_url": "https://example.com/super.jpg", "medium_url": "https://example.com/medium.jpg"}
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	game, err := client.GetGameByURL(context.Background(), server.URL+"/api/game/3030-30085/")
	if err != nil {
		t.Fatalf("GetGameByURL() error = %v", err)
	}

	if game.Name != "Cyberpunk 2077" {
		t.Errorf("Name = %q", game.Name)
	}
	if len(game.Platforms) != 2 || game.Platforms[1] != "PlayStation 5" {
		t.Errorf("Platforms = %v", game.Platforms)
	}
	if len(game.Developers) != 1 || game.Developers[0] != "CD Projekt RED" {
		t.Errorf("Developers = %v", game.Developers)
	}
	if game.ImageURL != "https://example.com/super.jpg" {
		t.Errorf("ImageURL = %q", game.ImageURL)
	}
	if got := DecodeAgeRating(game.AgeRatings); got != "ESRB: M" {
		t.Errorf("DecodeAgeRating() = %q, want %q", got, "ESRB: M")
	}
}

func TestClient_GetGameByURL_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status_code": 101, "error": "Object Not Found", "results": null}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.GetGameByURL(context.Background(), server.URL+"/api/game/3030-99999/")
	if !errors.Is(err, ErrGameNotFound) {
		t.Errorf("GetGameByURL() error = %v, want ErrGameNotFound", err)
	}
}
