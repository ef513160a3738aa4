package lookup

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/homeshelf/homeshelf/internal/lookup/giantbomb"
	"github.com/homeshelf/homeshelf/internal/lookup/upcitemdb"
)

// gameStrategy resolves game barcodes: UPCItemDB gives a noisy listing
// title carrying platform, format and edition markers; the cleaned title
// goes to a GiantBomb search, the match scorer picks a candidate, and the
// full record is fetched via the candidate's detail URL.
type gameStrategy struct {
	upcItemDB UPCItemDBClient
	giantBomb GiantBombClient
	logger    zerolog.Logger
}

func newGameStrategy(upc UPCItemDBClient, gb GiantBombClient, logger zerolog.Logger) *gameStrategy {
	return &gameStrategy{
		upcItemDB: upc,
		giantBomb: gb,
		logger:    logger.With().Str("strategy", "game").Logger(),
	}
}

func (s *gameStrategy) CanHandle(media MediaType, kind IdentifierKind) bool {
	return media == MediaGame && (kind == KindUPC || kind == KindEAN)
}

func (s *gameStrategy) Lookup(ctx context.Context, ident Identifier) (*Result, error) {
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

	title, edition := CleanGameTitle(item.Title)
	if title == "" {
		return nil, nil
	}
	format := ExtractGameFormat(item.Title)
	platformHint := ExtractPlatform(item.Title)

	results, err := s.giantBomb.SearchGames(ctx, title)
	if err != nil {
		if mustPropagate(ctx, err) {
			return nil, err
		}
		s.logger.Warn().Err(err).Str("title", title).Msg("Game search failed")
		return nil, nil
	}
	if len(results) == 0 {
		s.logger.Debug().Str("title", title).Msg("No game candidates")
		return nil, nil
	}

	chosen, ok := BestMatch(results, title, func(r giantbomb.GameResult) string { return r.Name })
	if !ok {
		return nil, nil
	}

	game, err := s.giantBomb.GetGameByURL(ctx, chosen.APIDetailURL)
	if err != nil {
		if errors.Is(err, giantbomb.ErrGameNotFound) {
			return nil, nil
		}
		if mustPropagate(ctx, err) {
			return nil, err
		}
		s.logger.Warn().Err(err).Str("url", chosen.APIDetailURL).Msg("Game detail fetch failed")
		return nil, nil
	}

	if format == "" {
		format = DeriveFormatFromPlatforms(game.Platforms, platformHint)
	}

	platform := platformHint
	if platform == "" && len(game.Platforms) > 0 {
		platform = game.Platforms[0]
	}

	displayTitle := game.Name
	if edition != "" {
		displayTitle = fmt.Sprintf("%s (%s)", game.Name, edition)
	}

	return &Result{
		Media: MediaGame,
		Game: &GameResponse{
			Title:       displayTitle,
			Platform:    platform,
			Format:      format,
			Genres:      game.Genres,
			Developers:  game.Developers,
			AgeRating:   giantbomb.DecodeAgeRating(game.AgeRatings),
			ReleaseDate: game.ReleaseDate,
			Description: game.Deck,
			ImageURL:    game.ImageURL,
		},
	}, nil
}
