// Package lookup resolves product identifiers (ISBN, UPC, EAN, ...) into
// normalized catalog entries by orchestrating the external metadata
// providers behind media-type specific strategies.
package lookup

import (
	"errors"
	"fmt"
)

// MediaType identifies which catalog a lookup targets.
type MediaType string

// Media types.
const (
	MediaBook  MediaType = "book"
	MediaMovie MediaType = "movie"
	MediaGame  MediaType = "game"
	MediaMusic MediaType = "music"
)

// ParseMediaType converts a route/request string into a MediaType.
func ParseMediaType(s string) (MediaType, error) {
	switch MediaType(s) {
	case MediaBook, MediaMovie, MediaGame, MediaMusic:
		return MediaType(s), nil
	}
	return "", fmt.Errorf("unknown media type %q", s)
}

// IdentifierKind is the category of product/catalog code used as a lookup key.
type IdentifierKind string

// Identifier kinds.
const (
	KindISBN IdentifierKind = "isbn"
	KindLCCN IdentifierKind = "lccn"
	KindOCLC IdentifierKind = "oclc"
	KindOLID IdentifierKind = "olid"
	KindUPC  IdentifierKind = "upc"
	KindEAN  IdentifierKind = "ean"
)

// ParseIdentifierKind converts a request string into an IdentifierKind.
func ParseIdentifierKind(s string) (IdentifierKind, error) {
	switch IdentifierKind(s) {
	case KindISBN, KindLCCN, KindOCLC, KindOLID, KindUPC, KindEAN:
		return IdentifierKind(s), nil
	}
	return "", fmt.Errorf("unknown identifier kind %q", s)
}

// Identifier is a tagged product code.
type Identifier struct {
	Kind  IdentifierKind `json:"kind"`
	Value string         `json:"value"`
}

// ErrNotFound is returned by the service when every consulted provider
// came back empty. Strategies themselves signal a miss with a nil result.
var ErrNotFound = errors.New("no metadata found for identifier")

// UnsupportedError reports that no registered strategy claims the requested
// (media type, identifier kind) pair. This is a configuration error, not a
// data miss, and is never silently defaulted.
type UnsupportedError struct {
	Media MediaType
	Kind  IdentifierKind
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("no lookup strategy for media type %q with identifier kind %q", e.Media, e.Kind)
}

// BookResponse is the normalized result of a book lookup.
type BookResponse struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Authors     []string `json:"authors,omitempty"`
	Subjects    []string `json:"subjects,omitempty"`
	Publisher   string   `json:"publisher,omitempty"`
	PublishDate string   `json:"publishDate,omitempty"`
	Pages       int      `json:"pages,omitempty"`
	Format      string   `json:"format,omitempty"`
	CoverURL    string   `json:"coverUrl,omitempty"`
}

// MovieResponse is the normalized result of a movie lookup.
type MovieResponse struct {
	Title       string   `json:"title"`
	Genres      []string `json:"genres,omitempty"`
	Studios     []string `json:"studios,omitempty"`
	Rating      string   `json:"rating,omitempty"`
	ReleaseDate string   `json:"releaseDate,omitempty"`
	Format      string   `json:"format,omitempty"`
	Runtime     int      `json:"runtime,omitempty"`
	Description string   `json:"description,omitempty"`
	PosterURL   string   `json:"posterUrl,omitempty"`
}

// GameResponse is the normalized result of a game lookup.
type GameResponse struct {
	Title       string   `json:"title"`
	Platform    string   `json:"platform,omitempty"`
	Format      string   `json:"format,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Developers  []string `json:"developers,omitempty"`
	AgeRating   string   `json:"ageRating,omitempty"`
	ReleaseDate string   `json:"releaseDate,omitempty"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
}

// MusicTrack is one track in a disc listing.
type MusicTrack struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Millis int    `json:"millis,omitempty"`
}

// MusicDisc is one medium of a release with its numbered tracks.
type MusicDisc struct {
	Position int          `json:"position"`
	Title    string       `json:"title,omitempty"`
	Tracks   []MusicTrack `json:"tracks"`
}

// MusicResponse is the normalized result of a music lookup.
type MusicResponse struct {
	Title       string      `json:"title"`
	Artist      string      `json:"artist,omitempty"`
	Genres      []string    `json:"genres,omitempty"`
	Label       string      `json:"label,omitempty"`
	ReleaseDate string      `json:"releaseDate,omitempty"`
	TrackCount  int         `json:"trackCount,omitempty"`
	Millis      int         `json:"millis,omitempty"`
	Discs       []MusicDisc `json:"discs,omitempty"`
	CoverURL    string      `json:"coverUrl,omitempty"`
}

// Result is a tagged lookup outcome: exactly one of the response pointers
// matching Media is non-nil.
type Result struct {
	Media MediaType      `json:"media"`
	Book  *BookResponse  `json:"book,omitempty"`
	Movie *MovieResponse `json:"movie,omitempty"`
	Game  *GameResponse  `json:"game,omitempty"`
	Music *MusicResponse `json:"music,omitempty"`
}
