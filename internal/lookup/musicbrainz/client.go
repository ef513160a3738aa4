package musicbrainz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/homeshelf/homeshelf/internal/config"
	"github.com/homeshelf/homeshelf/internal/lookup/provider"
	"github.com/homeshelf/homeshelf/internal/ratelimit"
)

var (
	ErrReleaseNotFound = errors.New("release not found")
	ErrAPIError        = errors.New("MusicBrainz API error")
)

const (
	coverURLTemplate = "https://coverartarchive.org/release/%s/front-500"
	maxGenres        = 5
)

// Client is a MusicBrainz API client. MusicBrainz enforces one request per
// second per client identity; every call waits on a shared pacer before
// dispatching, and a 503 is surfaced as a typed rate-limit error.
type Client struct {
	httpClient *http.Client
	config     config.MusicBrainzConfig
	pacer      *ratelimit.Pacer
	logger     zerolog.Logger
}

// NewClient creates a new MusicBrainz client. The pacer must be shared by
// every client instance talking to the same MusicBrainz identity.
func NewClient(cfg config.MusicBrainzConfig, pacer *ratelimit.Pacer, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		config: cfg,
		pacer:  pacer,
		logger: logger.With().Str("component", "musicbrainz").Logger(),
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "musicbrainz"
}

// IsConfigured always returns true; MusicBrainz is keyless.
func (c *Client) IsConfigured() bool {
	return true
}

// Test verifies connectivity to the MusicBrainz API.
func (c *Client) Test(ctx context.Context) error {
	_, err := c.SearchReleaseByBarcode(ctx, "5099750442229")
	if errors.Is(err, ErrReleaseNotFound) {
		return nil
	}
	return err
}

// SearchReleaseByBarcode resolves a barcode to a release id.
func (c *Client) SearchReleaseByBarcode(ctx context.Context, barcode string) (string, error) {
	endpoint := fmt.Sprintf("%s/ws/2/release/", c.config.BaseURL)
	params := url.Values{}
	params.Set("query", "barcode:"+barcode)
	params.Set("fmt", "json")

	var response searchResponse
	if err := c.doRequest(ctx, endpoint, params, &response); err != nil {
		return "", err
	}

	if len(response.Releases) == 0 {
		c.logger.Debug().Str("barcode", barcode).Msg("No releases in MusicBrainz response")
		return "", ErrReleaseNotFound
	}

	id := response.Releases[0].ID

	c.logger.Debug().
		Str("barcode", barcode).
		Str("releaseID", id).
		Int("count", response.Count).
		Msg("Resolved barcode to release")

	return id, nil
}

// GetRelease fetches a full release record including artist credits,
// labels, recordings and tags.
func (c *Client) GetRelease(ctx context.Context, id string) (*Release, error) {
	endpoint := fmt.Sprintf("%s/ws/2/release/%s", c.config.BaseURL, url.PathEscape(id))
	params := url.Values{}
	params.Set("inc", "artist-credits+labels+recordings+tags")
	params.Set("fmt", "json")

	var response releaseResponse
	if err := c.doRequest(ctx, endpoint, params, &response); err != nil {
		return nil, err
	}

	release := c.toRelease(response)

	c.logger.Debug().
		Str("releaseID", id).
		Str("title", release.Title).
		Int("media", len(release.Media)).
		Msg("Got release details")

	return release, nil
}

// doRequest waits on the shared pacer, then performs an HTTP GET request
// and decodes the JSON response. The pacer wait honours ctx cancellation,
// so a caller that gives up during the enforced delay never dispatches.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	if err := c.pacer.Wait(ctx); err != nil {
		return err
	}

	reqURL := endpoint
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", endpoint).Msg("HTTP request failed")
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return ErrReleaseNotFound
		case http.StatusServiceUnavailable:
			c.logger.Warn().Str("url", endpoint).Msg("MusicBrainz rate limit hit")
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

// toRelease converts a MusicBrainz release payload to a normalized Release.
func (c *Client) toRelease(response releaseResponse) *Release {
	release := &Release{
		ID:       response.ID,
		Title:    response.Title,
		Date:     response.Date,
		Genres:   topGenres(response.Tags),
		CoverURL: fmt.Sprintf(coverURLTemplate, response.ID),
	}

	if len(response.ArtistCredit) > 0 {
		release.Artist = response.ArtistCredit[0].Name
		if release.Artist == "" {
			release.Artist = response.ArtistCredit[0].Artist.Name
		}
	}
	if len(response.LabelInfo) > 0 {
		release.Label = response.LabelInfo[0].Label.Name
	}

	for _, m := range response.Media {
		medium := Medium{
			Position:   m.Position,
			Title:      m.Title,
			TrackCount: m.TrackCount,
		}
		for _, t := range m.Tracks {
			medium.Tracks = append(medium.Tracks, Track{
				Number: t.Number,
				Title:  t.Title,
				Millis: t.Length,
			})
		}
		release.Media = append(release.Media, medium)
	}

	return release
}

// topGenres sorts tags by vote count descending and keeps the top five,
// word-capitalized. Sort stability preserves payload order among equal
// counts.
func topGenres(tags []tag) []string {
	if len(tags) == 0 {
		return nil
	}

	sorted := make([]tag, len(tags))
	copy(sorted, tags)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})

	caser := cases.Title(language.English)
	genres := make([]string, 0, maxGenres)
	for _, t := range sorted {
		if t.Name == "" {
			continue
		}
		genres = append(genres, caser.String(t.Name))
		if len(genres) == maxGenres {
			break
		}
	}
	return genres
}
