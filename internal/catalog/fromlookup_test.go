package catalog

import (
	"reflect"
	"testing"

	"github.com/homeshelf/homeshelf/internal/lookup"
)

func TestInputFromLookup_Book(t *testing.T) {
	result := &lookup.Result{
		Media: lookup.MediaBook,
		Book: &lookup.BookResponse{
			Title:       "The Left Hand of Darkness",
			Authors:     []string{"Ursula K. Le Guin"},
			Subjects:    []string{"Fiction", "Science Fiction"},
			Publisher:   "Ace Books",
			PublishDate: "1969",
			Format:      "Paperback",
			CoverURL:    "https://covers.openlibrary.org/b/id/123-L.jpg",
		},
	}

	input := InputFromLookup(result, lookup.KindISBN, "9780441478125")

	if input.Media != "book" {
		t.Errorf("Media = %q", input.Media)
	}
	if input.Title != "The Left Hand of Darkness" {
		t.Errorf("Title = %q", input.Title)
	}
	if input.Creator != "Ursula K. Le Guin" {
		t.Errorf("Creator = %q", input.Creator)
	}
	if !reflect.DeepEqual(input.Genres, []string{"Fiction", "Science Fiction"}) {
		t.Errorf("Genres = %v", input.Genres)
	}
	if input.IdentifierKind != "isbn" || input.Identifier != "9780441478125" {
		t.Errorf("identifier = %s:%s", input.IdentifierKind, input.Identifier)
	}
	if input.ImageURL != "https://covers.openlibrary.org/b/id/123-L.jpg" {
		t.Errorf("ImageURL = %q", input.ImageURL)
	}
}

func TestInputFromLookup_Game(t *testing.T) {
	result := &lookup.Result{
		Media: lookup.MediaGame,
		Game: &lookup.GameResponse{
			Title:      "Hades (Deluxe)",
			Platform:   "Nintendo Switch",
			Format:     "Cartridge",
			Developers: []string{"Supergiant Games"},
			AgeRating:  "ESRB: T",
		},
	}

	input := InputFromLookup(result, lookup.KindUPC, "810061820021")

	if input.Media != "game" {
		t.Errorf("Media = %q", input.Media)
	}
	if input.Creator != "Supergiant Games" {
		t.Errorf("Creator = %q", input.Creator)
	}
	if input.Format != "Cartridge" {
		t.Errorf("Format = %q", input.Format)
	}
	if input.Rating != "ESRB: T" {
		t.Errorf("Rating = %q", input.Rating)
	}
}

func TestInputFromLookup_Music(t *testing.T) {
	result := &lookup.Result{
		Media: lookup.MediaMusic,
		Music: &lookup.MusicResponse{
			Title:    "OK Computer",
			Artist:   "Radiohead",
			Genres:   []string{"Alternative Rock"},
			CoverURL: "https://coverartarchive.org/release/abc/front-500",
		},
	}

	input := InputFromLookup(result, lookup.KindEAN, "724385522925")

	if input.Creator != "Radiohead" {
		t.Errorf("Creator = %q", input.Creator)
	}
	if input.IdentifierKind != "ean" {
		t.Errorf("IdentifierKind = %q", input.IdentifierKind)
	}
}
