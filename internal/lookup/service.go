package lookup

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/homeshelf/homeshelf/internal/config"
	"github.com/homeshelf/homeshelf/internal/lookup/giantbomb"
	"github.com/homeshelf/homeshelf/internal/lookup/musicbrainz"
	"github.com/homeshelf/homeshelf/internal/lookup/openlibrary"
	"github.com/homeshelf/homeshelf/internal/lookup/provider"
	"github.com/homeshelf/homeshelf/internal/lookup/tmdb"
	"github.com/homeshelf/homeshelf/internal/lookup/upcitemdb"
	"github.com/homeshelf/homeshelf/internal/ratelimit"
)

// musicBrainzInterval is the minimum spacing MusicBrainz requires between
// requests from one client identity.
const musicBrainzInterval = time.Second

// Service orchestrates identifier lookups across the provider clients.
type Service struct {
	registry    *Registry
	openLibrary OpenLibraryClient
	upcItemDB   UPCItemDBClient
	giantBomb   GiantBombClient
	tmdb        TMDBClient
	musicBrainz MusicBrainzClient
	logger      zerolog.Logger
}

// NewService creates a lookup service with real API clients.
func NewService(cfg *config.LookupConfig, logger zerolog.Logger) *Service {
	pacer := ratelimit.NewPacer("musicbrainz", musicBrainzInterval)
	return NewServiceWithClients(
		openlibrary.NewClient(cfg.OpenLibrary, logger),
		upcitemdb.NewClient(cfg.UPCItemDB, logger),
		giantbomb.NewClient(cfg.GiantBomb, logger),
		tmdb.NewClient(cfg.TMDB, logger),
		musicbrainz.NewClient(cfg.MusicBrainz, pacer, logger),
		logger,
	)
}

// NewServiceWithClients creates a lookup service with custom clients
// (for testing/mocking).
func NewServiceWithClients(ol OpenLibraryClient, upc UPCItemDBClient, gb GiantBombClient, tm TMDBClient, mb MusicBrainzClient, logger zerolog.Logger) *Service {
	subLogger := logger.With().Str("component", "lookup").Logger()
	return &Service{
		registry: NewRegistry(
			newBookStrategy(ol, upc, subLogger),
			newMovieStrategy(upc, tm, subLogger),
			newGameStrategy(upc, gb, subLogger),
			newMusicStrategy(mb, subLogger),
		),
		openLibrary: ol,
		upcItemDB:   upc,
		giantBomb:   gb,
		tmdb:        tm,
		musicBrainz: mb,
		logger:      subLogger,
	}
}

// Lookup resolves one identifier into a normalized result. ErrNotFound
// means the provider chain had no matching record; an UnsupportedError
// means no strategy claims the pair; rate-limit errors carry the provider
// and status code.
func (s *Service) Lookup(ctx context.Context, media MediaType, kind IdentifierKind, value string) (*Result, error) {
	strategy, err := s.registry.Get(media, kind)
	if err != nil {
		return nil, err
	}

	result, err := strategy.Lookup(ctx, Identifier{Kind: kind, Value: value})
	if err != nil {
		return nil, err
	}
	if result == nil {
		s.logger.Debug().
			Str("media", string(media)).
			Str("kind", string(kind)).
			Str("value", value).
			Msg("Lookup found no record")
		return nil, ErrNotFound
	}

	s.logger.Info().
		Str("media", string(media)).
		Str("kind", string(kind)).
		Str("value", value).
		Msg("Lookup completed")

	return result, nil
}

// Clients returns every provider client for health reporting.
func (s *Service) Clients() []ProviderClient {
	return []ProviderClient{s.openLibrary, s.upcItemDB, s.giantBomb, s.tmdb, s.musicBrainz}
}

// mustPropagate reports whether a client error has to surface to the
// caller instead of degrading to a miss: rate limits mean "try later",
// and cancellation is the caller's own doing. An http.Client timeout
// also satisfies errors.Is(err, context.DeadlineExceeded), so the error
// alone cannot tell a transport timeout from the caller giving up; only
// the caller's own context being done counts as cancellation, and a
// transport timeout degrades like any other transient provider error.
func mustPropagate(ctx context.Context, err error) bool {
	return provider.IsRateLimit(err) || ctx.Err() != nil
}
