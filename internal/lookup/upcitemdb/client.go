package upcitemdb

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
	"github.com/homeshelf/homeshelf/internal/lookup/provider"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrAPIError     = errors.New("UPCItemDB API error")
)

// Client is a UPCItemDB API client for the trial (keyless) lookup endpoint.
// The trial tier is aggressively rate limited; a 429 is surfaced as a typed
// rate-limit error so callers can back off instead of reporting a miss.
type Client struct {
	httpClient *http.Client
	config     config.UPCItemDBConfig
	logger     zerolog.Logger
}

// NewClient creates a new UPCItemDB client.
func NewClient(cfg config.UPCItemDBConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		config: cfg,
		logger: logger.With().Str("component", "upcitemdb").Logger(),
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "upcitemdb"
}

// IsConfigured always returns true; the trial endpoint is keyless.
func (c *Client) IsConfigured() bool {
	return true
}

// Test verifies connectivity to the UPCItemDB API. A miss on the probe
// barcode still proves the endpoint is reachable.
func (c *Client) Test(ctx context.Context) error {
	_, err := c.LookupCode(ctx, "0000000000000")
	if errors.Is(err, ErrItemNotFound) {
		return nil
	}
	return err
}

// LookupCode resolves a UPC or EAN barcode to its first matching listing.
func (c *Client) LookupCode(ctx context.Context, code string) (*Item, error) {
	endpoint := fmt.Sprintf("%s/prod/trial/lookup", c.config.BaseURL)
	params := url.Values{}
	params.Set("upc", code)

	var response lookupResponse
	if err := c.doRequest(ctx, endpoint, params, &response); err != nil {
		return nil, err
	}

	if len(response.Items) == 0 {
		c.logger.Debug().Str("code", code).Msg("No items in UPCItemDB response")
		return nil, ErrItemNotFound
	}

	first := response.Items[0]
	item := &Item{
		Title:    first.Title,
		Brand:    first.Brand,
		Category: first.Category,
		ISBN:     first.ISBN,
		Images:   first.Images,
	}

	c.logger.Debug().
		Str("code", code).
		Str("title", item.Title).
		Int("total", response.Total).
		Msg("Got UPCItemDB item")

	return item, nil
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
			return ErrItemNotFound
		case http.StatusTooManyRequests:
			c.logger.Warn().Str("url", endpoint).Msg("UPCItemDB rate limit hit")
			return &provider.RateLimitError{Provider: c.Name(), StatusCode: resp.StatusCode}
		default:
			return fmt.Errorf("%w: status %d", ErrAPIError, resp.StatusCode)
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
