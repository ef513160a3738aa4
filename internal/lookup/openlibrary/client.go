package openlibrary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/homeshelf/homeshelf/internal/config"
)

var (
	ErrBookNotFound = errors.New("book not found")
	ErrAPIError     = errors.New("OpenLibrary API error")
)

const coverURLTemplate = "https://covers.openlibrary.org/b/id/%d-L.jpg"

// Client is an OpenLibrary API client. OpenLibrary requires no API key.
type Client struct {
	httpClient *http.Client
	config     config.OpenLibraryConfig
	logger     zerolog.Logger
}

// NewClient creates a new OpenLibrary client.
func NewClient(cfg config.OpenLibraryConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		config: cfg,
		logger: logger.With().Str("component", "openlibrary").Logger(),
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "openlibrary"
}

// IsConfigured always returns true; OpenLibrary is keyless.
func (c *Client) IsConfigured() bool {
	return true
}

// Test verifies connectivity to the OpenLibrary API.
func (c *Client) Test(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/api/volumes/brief/isbn/9780345391803.json", c.config.BaseURL)
	var response volumesResponse
	return c.doRequest(ctx, endpoint, nil, &response)
}

// GetByISBN looks up a volume by ISBN-10 or ISBN-13.
func (c *Client) GetByISBN(ctx context.Context, isbn string) (*Book, error) {
	return c.getVolume(ctx, "isbn", isbn)
}

// GetByLCCN looks up a volume by Library of Congress Control Number.
func (c *Client) GetByLCCN(ctx context.Context, lccn string) (*Book, error) {
	return c.getVolume(ctx, "lccn", lccn)
}

// GetByOCLC looks up a volume by OCLC/WorldCat number.
func (c *Client) GetByOCLC(ctx context.Context, oclc string) (*Book, error) {
	return c.getVolume(ctx, "oclc", oclc)
}

// GetByOLID looks up a volume by OpenLibrary edition identifier.
func (c *Client) GetByOLID(ctx context.Context, olid string) (*Book, error) {
	return c.getVolume(ctx, "olid", olid)
}

// getVolume queries the "readable" volumes endpoint. The response is a map
// of records; the first record wins. A record with no data block is a miss.
func (c *Client) getVolume(ctx context.Context, kind, value string) (*Book, error) {
	endpoint := fmt.Sprintf("%s/api/volumes/brief/%s/%s.json", c.config.BaseURL, kind, url.PathEscape(value))

	var response volumesResponse
	if err := c.doRequest(ctx, endpoint, nil, &response); err != nil {
		return nil, err
	}

	var record *volumeRecord
	for key := range response.Records {
		r := response.Records[key]
		record = &r
		break
	}
	if record == nil || record.Data == nil {
		c.logger.Debug().Str("kind", kind).Str("value", value).Msg("No record in OpenLibrary response")
		return nil, ErrBookNotFound
	}

	book := c.toBook(*record)

	c.logger.Debug().
		Str("kind", kind).
		Str("value", value).
		Str("title", book.Title).
		Msg("Got OpenLibrary volume")

	return book, nil
}

// GetByISBNLegacy queries the older books endpoint, used as a fallback when
// the volumes endpoint has no record for an ISBN.
func (c *Client) GetByISBNLegacy(ctx context.Context, isbn string) (*Book, error) {
	endpoint := fmt.Sprintf("%s/api/books", c.config.BaseURL)
	params := url.Values{}
	params.Set("bibkeys", "ISBN:"+isbn)
	params.Set("format", "json")
	params.Set("jscmd", "data")

	var response map[string]volumeData
	if err := c.doRequest(ctx, endpoint, params, &response); err != nil {
		return nil, err
	}

	data, ok := response["ISBN:"+isbn]
	if !ok {
		return nil, ErrBookNotFound
	}

	book := c.toBook(volumeRecord{Data: &data})

	c.logger.Debug().
		Str("isbn", isbn).
		Str("title", book.Title).
		Msg("Got OpenLibrary volume via legacy endpoint")

	return book, nil
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
			return ErrBookNotFound
		default:
			return fmt.Errorf("%w: status %d", ErrAPIError, resp.StatusCode)
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

var paginationDigitsRe = regexp.MustCompile(`\d+`)

// toBook converts an OpenLibrary record to a normalized Book.
func (c *Client) toBook(record volumeRecord) *Book {
	data := record.Data

	book := &Book{
		Title:       data.Title,
		Subtitle:    data.Subtitle,
		PublishDate: data.PublishDate,
	}

	// Record-level publishDates are more specific than the data block's
	// publish_date when both are present.
	if len(record.PublishDates) > 0 && record.PublishDates[0] != "" {
		book.PublishDate = record.PublishDates[0]
	}

	for _, a := range data.Authors {
		if a.Name != "" {
			book.Authors = append(book.Authors, a.Name)
		}
	}
	if len(data.Publishers) > 0 {
		book.Publisher = data.Publishers[0].Name
	}

	subjects := make([]string, 0, len(data.Subjects))
	for _, s := range data.Subjects {
		if s.Name != "" {
			subjects = append(subjects, s.Name)
		}
	}
	book.Subjects = DedupeSubjects(subjects)

	book.Pages = pageCount(record)

	if record.Details != nil && record.Details.Details != nil {
		inner := record.Details.Details
		if inner.PhysicalFormat != "" {
			book.Format = cases.Title(language.English).String(strings.ToLower(inner.PhysicalFormat))
		}
		if len(inner.Covers) > 0 && inner.Covers[0] > 0 {
			book.CoverURL = fmt.Sprintf(coverURLTemplate, inner.Covers[0])
		}
	}
	if book.CoverURL == "" && data.Cover != nil {
		book.CoverURL = data.Cover.Large
	}

	return book
}

// pageCount prefers number_of_pages over the free-text pagination field,
// checking the data block before the details block.
func pageCount(record volumeRecord) int {
	if record.Data.NumberOfPages > 0 {
		return record.Data.NumberOfPages
	}
	if record.Details != nil && record.Details.Details != nil {
		if record.Details.Details.NumberOfPages > 0 {
			return record.Details.Details.NumberOfPages
		}
	}
	pagination := record.Data.Pagination
	if pagination == "" && record.Details != nil && record.Details.Details != nil {
		pagination = record.Details.Details.Pagination
	}
	if m := paginationDigitsRe.FindString(pagination); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return n
		}
	}
	return 0
}
