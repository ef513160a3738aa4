package catalog

import (
	"strings"

	"github.com/homeshelf/homeshelf/internal/lookup"
)

// InputFromLookup pre-fills a create payload from a lookup result so a
// client can offer "add to catalog" in one step. The identifier that
// produced the result is carried along.
func InputFromLookup(result *lookup.Result, kind lookup.IdentifierKind, value string) *CreateItemInput {
	input := &CreateItemInput{
		Media:          string(result.Media),
		IdentifierKind: string(kind),
		Identifier:     value,
	}

	switch {
	case result.Book != nil:
		b := result.Book
		input.Title = b.Title
		input.Creator = strings.Join(b.Authors, "; ")
		input.Genres = b.Subjects
		input.Format = b.Format
		input.ReleaseDate = b.PublishDate
		input.ImageURL = b.CoverURL
	case result.Movie != nil:
		m := result.Movie
		input.Title = m.Title
		input.Creator = strings.Join(m.Studios, "; ")
		input.Genres = m.Genres
		input.Format = m.Format
		input.ReleaseDate = m.ReleaseDate
		input.Rating = m.Rating
		input.Description = m.Description
		input.ImageURL = m.PosterURL
	case result.Game != nil:
		g := result.Game
		input.Title = g.Title
		input.Creator = strings.Join(g.Developers, "; ")
		input.Genres = g.Genres
		input.Format = g.Format
		input.ReleaseDate = g.ReleaseDate
		input.Rating = g.AgeRating
		input.Description = g.Description
		input.ImageURL = g.ImageURL
	case result.Music != nil:
		mu := result.Music
		input.Title = mu.Title
		input.Creator = mu.Artist
		input.Genres = mu.Genres
		input.ReleaseDate = mu.ReleaseDate
		input.ImageURL = mu.CoverURL
	}

	return input
}
