package catalog

import (
	"time"

	"github.com/homeshelf/homeshelf/internal/lookup"
)

// Item is one catalogued piece of media.
type Item struct {
	ID             string           `json:"id"`
	Media          lookup.MediaType `json:"media"`
	Title          string           `json:"title"`
	Creator        string           `json:"creator"`
	Genres         []string         `json:"genres"`
	Format         string           `json:"format"`
	ReleaseDate    string           `json:"releaseDate"`
	IdentifierKind string           `json:"identifierKind,omitempty"`
	Identifier     string           `json:"identifier,omitempty"`
	Rating         string           `json:"rating,omitempty"`
	Description    string           `json:"description,omitempty"`
	ImageURL       string           `json:"imageUrl,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// CreateItemInput is the payload for creating an item.
type CreateItemInput struct {
	Media          string   `json:"media"`
	Title          string   `json:"title"`
	Creator        string   `json:"creator"`
	Genres         []string `json:"genres"`
	Format         string   `json:"format"`
	ReleaseDate    string   `json:"releaseDate"`
	IdentifierKind string   `json:"identifierKind"`
	Identifier     string   `json:"identifier"`
	Rating         string   `json:"rating"`
	Description    string   `json:"description"`
	ImageURL       string   `json:"imageUrl"`
	Notes          string   `json:"notes"`
}

// UpdateItemInput is the payload for updating an item. Nil fields are
// left untouched.
type UpdateItemInput struct {
	Title       *string   `json:"title"`
	Creator     *string   `json:"creator"`
	Genres      *[]string `json:"genres"`
	Format      *string   `json:"format"`
	ReleaseDate *string   `json:"releaseDate"`
	Rating      *string   `json:"rating"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	Notes       *string   `json:"notes"`
}

// ListItemsOptions filters and pages item listings.
type ListItemsOptions struct {
	Media    string
	Search   string
	Page     int
	PageSize int
}

// ImportSummary reports the outcome of a CSV bulk import.
type ImportSummary struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
