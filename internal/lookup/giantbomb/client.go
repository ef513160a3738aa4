package giantbomb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/homeshelf/homeshelf/internal/config"
)

var (
	ErrAPIKeyMissing = errors.New("GiantBomb API key is not configured")
	ErrGameNotFound  = errors.New("game not found")
	ErrAPIError      = errors.New("GiantBomb API error")
)

// Client is a GiantBomb API client.
type Client struct {
	httpClient *http.Client
	config     config.GiantBombConfig
	logger     zerolog.Logger
}

// NewClient creates a new GiantBomb client.
func NewClient(cfg config.GiantBombConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		config: cfg,
		logger: logger.With().Str("component", "giantbomb").Logger(),
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "giantbomb"
}

// IsConfigured returns true if the API key is set.
func (c *Client) IsConfigured() bool {
	return c.config.APIKey != ""
}

// Test verifies connectivity and the API key.
func (c *Client) Test(ctx context.Context) error {
	if !c.IsConfigured() {
		return ErrAPIKeyMissing
	}
	_, err := c.SearchGames(ctx, "ping")
	return err
}

// SearchGames searches for games by title.
func (c *Client) SearchGames(ctx context.Context, query string) ([]GameResult, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/search/", c.config.BaseURL)
	params := url.Values{}
	params.Set("api_key", c.config.APIKey)
	params.Set("format", "json")
	params.Set("query", query)
	params.Set("resources", "game")

	var response searchResponse
	if err := c.doRequest(ctx, endpoint, params, &response); err != nil {
		return nil, err
	}
	if response.StatusCode != statusOK {
		return nil, fmt.Errorf("%w: %s", ErrAPIError, response.Error)
	}

	results := make([]GameResult, len(response.Results))
	for i, r := range response.Results {
		results[i] = GameResult{
			ID:           r.ID,
			Name:         r.Name,
			APIDetailURL: r.APIDetailURL,
			ReleaseDate:  r.OriginalReleaseDate,
		}
	}

	c.logger.Debug().
		Str("query", query).
		Int("results", len(results)).
		Msg("Game search completed")

	return results, nil
}

// GetGameByURL fetches a full game record via the api_detail_url of a
// search candidate. The URL already carries host and path; only the key
// and format parameters are appended.
func (c *Client) GetGameByURL(ctx context.Context, detailURL string) (*Game, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	params := url.Values{}
	params.Set("api_key", c.config.APIKey)
	params.Set("format", "json")

	var response detailResponse
	if err := c.doRequest(ctx, detailURL, params, &response); err != nil {
		return nil, err
	}
	if response.StatusCode != statusOK || response.Results == nil {
		return nil, ErrGameNotFound
	}

	game := c.toGame(*response.Results)

	c.logger.Debug().
		Str("url", detailURL).
		Str("name", game.Name).
		Msg("Got game details")

	return game, nil
}

// doRequest performs an HTTP GET request and decodes the JSON response.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	reqURL := endpoint
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", endpoint).Msg("HTTP request failed")
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return ErrGameNotFound
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: invalid API key", ErrAPIError)
		default:
			return fmt.Errorf("%w: status %d", ErrAPIError, resp.StatusCode)
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// toGame converts a GiantBomb detail payload to a normalized Game.
func (c *Client) toGame(detail gameDetail) *Game {
	game := &Game{
		Name:        detail.Name,
		Deck:        detail.Deck,
		ReleaseDate: detail.OriginalReleaseDate,
		AgeRatings:  detail.AgeRatings,
	}

	for _, p := range detail.Platforms {
		if p.Name != "" {
			game.Platforms = append(game.Platforms, p.Name)
		}
	}
	for _, g := range detail.Genres {
		if g.Name != "" {
			game.Genres = append(game.Genres, g.Name)
		}
	}
	for _, d := range detail.Developers {
		if d.Name != "" {
			game.Developers = append(game.Developers, d.Name)
		}
	}

	if detail.Image != nil {
		game.ImageURL = detail.Image.SuperURL
		if game.ImageURL == "" {
			game.ImageURL = detail.Image.MediumURL
		}
	}

	return game
}
