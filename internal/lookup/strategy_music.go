package lookup

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/homeshelf/homeshelf/internal/lookup/musicbrainz"
)

// musicStrategy resolves album barcodes through MusicBrainz: a barcode
// search yields a release id, then the full release is fetched for track
// and label detail.
type musicStrategy struct {
	musicBrainz MusicBrainzClient
	logger      zerolog.Logger
}

func newMusicStrategy(mb MusicBrainzClient, logger zerolog.Logger) *musicStrategy {
	return &musicStrategy{
		musicBrainz: mb,
		logger:      logger.With().Str("strategy", "music").Logger(),
	}
}

func (s *musicStrategy) CanHandle(media MediaType, kind IdentifierKind) bool {
	return media == MediaMusic && (kind == KindUPC || kind == KindEAN)
}

func (s *musicStrategy) Lookup(ctx context.Context, ident Identifier) (*Result, error) {
	id, err := s.musicBrainz.SearchReleaseByBarcode(ctx, ident.Value)
	if err != nil {
		return nil, s.degrade(ctx, err, "Barcode search failed")
	}

	release, err := s.musicBrainz.GetRelease(ctx, id)
	if err != nil {
		return nil, s.degrade(ctx, err, "Release fetch failed")
	}

	return s.toResult(release), nil
}

// degrade maps a client error to the strategy contract: misses become a
// nil result, rate limits and cancellation propagate, everything else is
// logged and treated as a miss.
func (s *musicStrategy) degrade(ctx context.Context, err error, msg string) error {
	if errors.Is(err, musicbrainz.ErrReleaseNotFound) {
		return nil
	}
	if mustPropagate(ctx, err) {
		return err
	}
	s.logger.Warn().Err(err).Msg(msg)
	return nil
}

func (s *musicStrategy) toResult(release *musicbrainz.Release) *Result {
	resp := &MusicResponse{
		Title:       release.Title,
		Artist:      release.Artist,
		Genres:      release.Genres,
		Label:       release.Label,
		ReleaseDate: release.Date,
		CoverURL:    release.CoverURL,
	}

	for _, m := range release.Media {
		disc := MusicDisc{
			Position: m.Position,
			Title:    m.Title,
		}
		for _, t := range m.Tracks {
			// Every track counts toward totals, but only tracks with
			// numeric numbering appear in the disc listing.
			resp.TrackCount++
			resp.Millis += t.Millis
			number, err := strconv.Atoi(t.Number)
			if err != nil {
				continue
			}
			disc.Tracks = append(disc.Tracks, MusicTrack{
				Number: number,
				Title:  t.Title,
				Millis: t.Millis,
			})
		}
		resp.Discs = append(resp.Discs, disc)
	}

	return &Result{Media: MediaMusic, Music: resp}
}
