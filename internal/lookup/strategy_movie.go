package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/homeshelf/homeshelf/internal/lookup/tmdb"
	"github.com/homeshelf/homeshelf/internal/lookup/upcitemdb"
)

// movieStrategy resolves movie barcodes: UPCItemDB gives a noisy listing
// title, the cleaned title goes to a TMDB search, and the full record is
// fetched for the chosen candidate.
type movieStrategy struct {
	upcItemDB UPCItemDBClient
	tmdb      TMDBClient
	logger    zerolog.Logger
}

func newMovieStrategy(upc UPCItemDBClient, tm TMDBClient, logger zerolog.Logger) *movieStrategy {
	return &movieStrategy{
		upcItemDB: upc,
		tmdb:      tm,
		logger:    logger.With().Str("strategy", "movie").Logger(),
	}
}

func (s *movieStrategy) CanHandle(media MediaType, kind IdentifierKind) bool {
	return media == MediaMovie && (kind == KindUPC || kind == KindEAN)
}

func (s *movieStrategy) Lookup(ctx context.Context, ident Identifier) (*Result, error) {
	item, err := s.upcItemDB.LookupCode(ctx, ident.Value)
	if err != nil {
		if errors.Is(err, upcitemdb.ErrItemNotFound) {
			return nil, nil
		}
		if mustPropagate(ctx, err) {
			return nil, err
		}
		s.logger.Warn().Err(err).Str("code", ident.Value).Msg("Barcode lookup failed")
		return nil, nil
	}

	title := CleanMovieTitle(item.Title)
	if title == "" {
		return nil, nil
	}
	format := ExtractMovieFormat(item.Title)

	results, err := s.tmdb.SearchMovies(ctx, title)
	if err != nil {
		if mustPropagate(ctx, err) {
			return nil, err
		}
		s.logger.Warn().Err(err).Str("title", title).Msg("Movie search failed")
		return nil, nil
	}
	if len(results) == 0 {
		s.logger.Debug().Str("title", title).Msg("No movie candidates")
		return nil, nil
	}

	// Exact case-insensitive title match wins, otherwise the provider's
	// first result stands.
	chosen := results[0]
	for _, r := range results {
		if strings.EqualFold(r.Title, title) {
			chosen = r
			break
		}
	}

	movie, err := s.tmdb.GetMovie(ctx, chosen.ID)
	if err != nil {
		if errors.Is(err, tmdb.ErrMovieNotFound) {
			return nil, nil
		}
		if mustPropagate(ctx, err) {
			return nil, err
		}
		s.logger.Warn().Err(err).Int("id", chosen.ID).Msg("Movie detail fetch failed")
		return nil, nil
	}

	return &Result{
		Media: MediaMovie,
		Movie: &MovieResponse{
			Title:       movie.Title,
			Genres:      movie.Genres,
			Studios:     movie.Studios,
			Rating:      fmt.Sprintf("%.1f/10", movie.VoteAverage),
			ReleaseDate: movie.ReleaseDate,
			Format:      format,
			Runtime:     movie.Runtime,
			Description: movie.Overview,
			PosterURL:   movie.PosterURL,
		},
	}, nil
}
