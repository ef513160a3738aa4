package lookup

import (
	"context"

	"github.com/homeshelf/homeshelf/internal/lookup/giantbomb"
	"github.com/homeshelf/homeshelf/internal/lookup/musicbrainz"
	"github.com/homeshelf/homeshelf/internal/lookup/openlibrary"
	"github.com/homeshelf/homeshelf/internal/lookup/tmdb"
	"github.com/homeshelf/homeshelf/internal/lookup/upcitemdb"
)

// OpenLibraryClient defines the interface for OpenLibrary API operations.
type OpenLibraryClient interface {
	Name() string
	IsConfigured() bool
	Test(ctx context.Context) error
	GetByISBN(ctx context.Context, isbn string) (*openlibrary.Book, error)
	GetByLCCN(ctx context.Context, lccn string) (*openlibrary.Book, error)
	GetByOCLC(ctx context.Context, oclc string) (*openlibrary.Book, error)
	GetByOLID(ctx context.Context, olid string) (*openlibrary.Book, error)
	GetByISBNLegacy(ctx context.Context, isbn string) (*openlibrary.Book, error)
}

// UPCItemDBClient defines the interface for UPCItemDB API operations.
type UPCItemDBClient interface {
	Name() string
	IsConfigured() bool
	Test(ctx context.Context) error
	LookupCode(ctx context.Context, code string) (*upcitemdb.Item, error)
}

// GiantBombClient defines the interface for GiantBomb API operations.
type GiantBombClient interface {
	Name() string
	IsConfigured() bool
	Test(ctx context.Context) error
	SearchGames(ctx context.Context, query string) ([]giantbomb.GameResult, error)
	GetGameByURL(ctx context.Context, detailURL string) (*giantbomb.Game, error)
}

// TMDBClient defines the interface for TMDB API operations.
type TMDBClient interface {
	Name() string
	IsConfigured() bool
	Test(ctx context.Context) error
	SearchMovies(ctx context.Context, query string) ([]tmdb.MovieResult, error)
	GetMovie(ctx context.Context, id int) (*tmdb.Movie, error)
}

// MusicBrainzClient defines the interface for MusicBrainz API operations.
type MusicBrainzClient interface {
	Name() string
	IsConfigured() bool
	Test(ctx context.Context) error
	SearchReleaseByBarcode(ctx context.Context, barcode string) (string, error)
	GetRelease(ctx context.Context, id string) (*musicbrainz.Release, error)
}

// ProviderClient is the surface every provider client shares, used for
// health reporting.
type ProviderClient interface {
	Name() string
	IsConfigured() bool
	Test(ctx context.Context) error
}

// Strategy resolves one identifier into a normalized response for the
// (media type, identifier kind) pairs it claims. A nil result with a nil
// error means the provider had no matching record; rate-limit and
// cancellation errors propagate.
type Strategy interface {
	CanHandle(media MediaType, kind IdentifierKind) bool
	Lookup(ctx context.Context, ident Identifier) (*Result, error)
}
