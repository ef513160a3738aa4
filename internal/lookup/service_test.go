package lookup

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/rs/zerolog"

	"github.com/homeshelf/homeshelf/internal/lookup/giantbomb"
	"github.com/homeshelf/homeshelf/internal/lookup/musicbrainz"
	"github.com/homeshelf/homeshelf/internal/lookup/openlibrary"
	"github.com/homeshelf/homeshelf/internal/lookup/provider"
	"github.com/homeshelf/homeshelf/internal/lookup/tmdb"
	"github.com/homeshelf/homeshelf/internal/lookup/upcitemdb"
)

type mockOpenLibrary struct {
	books       map[string]*openlibrary.Book
	legacyBooks map[string]*openlibrary.Book
}

func (m *mockOpenLibrary) Name() string                    { return "openlibrary" }
func (m *mockOpenLibrary) IsConfigured() bool              { return true }
func (m *mockOpenLibrary) Test(ctx context.Context) error  { return nil }
func (m *mockOpenLibrary) get(key string) (*openlibrary.Book, error) {
	if b, ok := m.books[key]; ok {
		return b, nil
	}
	return nil, openlibrary.ErrBookNotFound
}
func (m *mockOpenLibrary) GetByISBN(ctx context.Context, v string) (*openlibrary.Book, error) {
	return m.get("isbn:" + v)
}
func (m *mockOpenLibrary) GetByLCCN(ctx context.Context, v string) (*openlibrary.Book, error) {
	return m.get("lccn:" + v)
}
func (m *mockOpenLibrary) GetByOCLC(ctx context.Context, v string) (*openlibrary.Book, error) {
	return m.get("oclc:" + v)
}
func (m *mockOpenLibrary) GetByOLID(ctx context.Context, v string) (*openlibrary.Book, error) {
	return m.get("olid:" + v)
}
func (m *mockOpenLibrary) GetByISBNLegacy(ctx context.Context, v string) (*openlibrary.Book, error) {
	if b, ok := m.legacyBooks[v]; ok {
		return b, nil
	}
	return nil, openlibrary.ErrBookNotFound
}

type mockUPCItemDB struct {
	items map[string]*upcitemdb.Item
	err   error
}

func (m *mockUPCItemDB) Name() string                   { return "upcitemdb" }
func (m *mockUPCItemDB) IsConfigured() bool             { return true }
func (m *mockUPCItemDB) Test(ctx context.Context) error { return nil }
func (m *mockUPCItemDB) LookupCode(ctx context.Context, code string) (*upcitemdb.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	if item, ok := m.items[code]; ok {
		return item, nil
	}
	return nil, upcitemdb.ErrItemNotFound
}

type mockGiantBomb struct {
	results []giantbomb.GameResult
	games   map[string]*giantbomb.Game
}

func (m *mockGiantBomb) Name() string                   { return "giantbomb" }
func (m *mockGiantBomb) IsConfigured() bool             { return true }
func (m *mockGiantBomb) Test(ctx context.Context) error { return nil }
func (m *mockGiantBomb) SearchGames(ctx context.Context, query string) ([]giantbomb.GameResult, error) {
	return m.results, nil
}
func (m *mockGiantBomb) GetGameByURL(ctx context.Context, detailURL string) (*giantbomb.Game, error) {
	if g, ok := m.games[detailURL]; ok {
		return g, nil
	}
	return nil, giantbomb.ErrGameNotFound
}

type mockTMDB struct {
	results []tmdb.MovieResult
	movies  map[int]*tmdb.Movie
}

func (m *mockTMDB) Name() string                   { return "tmdb" }
func (m *mockTMDB) IsConfigured() bool             { return true }
func (m *mockTMDB) Test(ctx context.Context) error { return nil }
func (m *mockTMDB) SearchMovies(ctx context.Context, query string) ([]tmdb.MovieResult, error) {
	return m.results, nil
}
func (m *mockTMDB) GetMovie(ctx context.Context, id int) (*tmdb.Movie, error) {
	if movie, ok := m.movies[id]; ok {
		return movie, nil
	}
	return nil, tmdb.ErrMovieNotFound
}

type mockMusicBrainz struct {
	releaseID string
	release   *musicbrainz.Release
	err       error
}

func (m *mockMusicBrainz) Name() string                   { return "musicbrainz" }
func (m *mockMusicBrainz) IsConfigured() bool             { return true }
func (m *mockMusicBrainz) Test(ctx context.Context) error { return nil }
func (m *mockMusicBrainz) SearchReleaseByBarcode(ctx context.Context, barcode string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.releaseID == "" {
		return "", musicbrainz.ErrReleaseNotFound
	}
	return m.releaseID, nil
}
func (m *mockMusicBrainz) GetRelease(ctx context.Context, id string) (*musicbrainz.Release, error) {
	if m.release == nil {
		return nil, musicbrainz.ErrReleaseNotFound
	}
	return m.release, nil
}

func newTestService(ol *mockOpenLibrary, upc *mockUPCItemDB, gb *mockGiantBomb, tm *mockTMDB, mb *mockMusicBrainz) *Service {
	if ol == nil {
		ol = &mockOpenLibrary{}
	}
	if upc == nil {
		upc = &mockUPCItemDB{}
	}
	if gb == nil {
		gb = &mockGiantBomb{}
	}
	if tm == nil {
		tm = &mockTMDB{}
	}
	if mb == nil {
		mb = &mockMusicBrainz{}
	}
	return NewServiceWithClients(ol, upc, gb, tm, mb, zerolog.Nop())
}

func TestService_UnsupportedPair(t *testing.T) {
	s := newTestService(nil, nil, nil, nil, nil)

	pairs := []struct {
		media MediaType
		kind  IdentifierKind
	}{
		{MediaMovie, KindISBN},
		{MediaGame, KindOLID},
		{MediaMusic, KindLCCN},
	}
	for _, p := range pairs {
		_, err := s.Lookup(context.Background(), p.media, p.kind, "x")
		var unsupported *UnsupportedError
		if !errors.As(err, &unsupported) {
			t.Errorf("Lookup(%s, %s) error = %v, want UnsupportedError", p.media, p.kind, err)
		}
	}
}

func TestService_BookByISBN(t *testing.T) {
	ol := &mockOpenLibrary{books: map[string]*openlibrary.Book{
		"isbn:9780134190440": {
			Title:   "The Go Programming Language",
			Authors: []string{"Alan A. A. Donovan", "Brian W. Kernighan"},
			Pages:   380,
		},
	}}
	s := newTestService(ol, nil, nil, nil, nil)

	result, err := s.Lookup(context.Background(), MediaBook, KindISBN, "9780134190440")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if result.Book == nil {
		t.Fatal("Lookup() result.Book = nil")
	}
	if result.Book.Title != "The Go Programming Language" {
		t.Errorf("Title = %q", result.Book.Title)
	}
	if len(result.Book.Authors) != 2 {
		t.Errorf("Authors = %v, want 2 entries", result.Book.Authors)
	}
}

func TestService_BookISBNFallsBackToLegacy(t *testing.T) {
	ol := &mockOpenLibrary{legacyBooks: map[string]*openlibrary.Book{
		"9780441013593": {Title: "Dune"},
	}}
	s := newTestService(ol, nil, nil, nil, nil)

	result, err := s.Lookup(context.Background(), MediaBook, KindISBN, "9780441013593")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if result.Book.Title != "Dune" {
		t.Errorf("Title = %q, want %q", result.Book.Title, "Dune")
	}
}

func TestService_BookByUPCResolvesISBN(t *testing.T) {
	ol := &mockOpenLibrary{books: map[string]*openlibrary.Book{
		"isbn:9780547928227": {Title: "The Hobbit"},
	}}
	upc := &mockUPCItemDB{items: map[string]*upcitemdb.Item{
		"012345678905": {Title: "The Hobbit (Paperback)", ISBN: "9780547928227"},
	}}
	s := newTestService(ol, upc, nil, nil, nil)

	result, err := s.Lookup(context.Background(), MediaBook, KindUPC, "012345678905")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if result.Book.Title != "The Hobbit" {
		t.Errorf("Title = %q, want %q", result.Book.Title, "The Hobbit")
	}
}

func TestService_BookByUPCWithoutISBN(t *testing.T) {
	upc := &mockUPCItemDB{items: map[string]*upcitemdb.Item{
		"012345678905": {Title: "Some Gadget"},
	}}
	s := newTestService(nil, upc, nil, nil, nil)

	_, err := s.Lookup(context.Background(), MediaBook, KindUPC, "012345678905")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup() error = %v, want ErrNotFound", err)
	}
}

func TestService_NotFound(t *testing.T) {
	s := newTestService(nil, nil, nil, nil, nil)

	_, err := s.Lookup(context.Background(), MediaBook, KindISBN, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup() error = %v, want ErrNotFound", err)
	}
}

func TestService_RateLimitPropagates(t *testing.T) {
	upc := &mockUPCItemDB{err: &provider.RateLimitError{Provider: "upcitemdb", StatusCode: 429}}
	s := newTestService(nil, upc, nil, nil, nil)

	_, err := s.Lookup(context.Background(), MediaMovie, KindUPC, "012345678905")
	var rl *provider.RateLimitError
	if !errors.As(err, &rl) {
		t.Fatalf("Lookup() error = %v, want RateLimitError", err)
	}
	if rl.StatusCode != 429 {
		t.Errorf("StatusCode = %d, want 429", rl.StatusCode)
	}
}

func TestService_TransportTimeoutDegradesToMiss(t *testing.T) {
	// An http.Client timeout satisfies errors.Is(err,
	// context.DeadlineExceeded) even though the caller never cancelled.
	timeoutErr := fmt.Errorf("HTTP request failed: %w", &url.Error{
		Op:  "Get",
		URL: "https://api.upcitemdb.com/prod/trial/lookup",
		Err: fmt.Errorf("%w (Client.Timeout exceeded while awaiting headers)", context.DeadlineExceeded),
	})
	upc := &mockUPCItemDB{err: timeoutErr}
	s := newTestService(nil, upc, nil, nil, nil)

	_, err := s.Lookup(context.Background(), MediaMovie, KindUPC, "786936224436")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup() error = %v, want ErrNotFound for a provider timeout", err)
	}
}

func TestService_CallerCancellationPropagates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	upc := &mockUPCItemDB{err: fmt.Errorf("HTTP request failed: %w", context.Canceled)}
	s := newTestService(nil, upc, nil, nil, nil)

	_, err := s.Lookup(ctx, MediaMovie, KindUPC, "786936224436")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Lookup() error = %v, want context.Canceled", err)
	}
}

func TestService_MoviePrefersExactTitleMatch(t *testing.T) {
	upc := &mockUPCItemDB{items: map[string]*upcitemdb.Item{
		"786936224436": {Title: "The Matrix - Blu-ray"},
	}}
	tm := &mockTMDB{
		results: []tmdb.MovieResult{
			{ID: 604, Title: "The Matrix Reloaded"},
			{ID: 603, Title: "the matrix"},
		},
		movies: map[int]*tmdb.Movie{
			603: {
				ID:          603,
				Title:       "The Matrix",
				VoteAverage: 8.22,
				Genres:      []string{"Action", "Science Fiction"},
				Studios:     []string{"Warner Bros. Pictures"},
				Runtime:     136,
				PosterURL:   "https://image.tmdb.org/t/p/w500/matrix.jpg",
			},
		},
	}
	s := newTestService(nil, upc, nil, tm, nil)

	result, err := s.Lookup(context.Background(), MediaMovie, KindUPC, "786936224436")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	m := result.Movie
	if m == nil {
		t.Fatal("Lookup() result.Movie = nil")
	}
	if m.Title != "The Matrix" {
		t.Errorf("Title = %q, want exact match chosen over first result", m.Title)
	}
	if m.Rating != "8.2/10" {
		t.Errorf("Rating = %q, want %q", m.Rating, "8.2/10")
	}
	if m.Format != "Blu-ray" {
		t.Errorf("Format = %q, want %q", m.Format, "Blu-ray")
	}
}

func TestService_GameLookup(t *testing.T) {
	upc := &mockUPCItemDB{items: map[string]*upcitemdb.Item{
		"710425570766": {Title: "Cyberpunk 2077 Deluxe Edition - PlayStation 5"},
	}}
	gb := &mockGiantBomb{
		results: []giantbomb.GameResult{
			{ID: 1, Name: "Cyberpunk 2077: Phantom Liberty", APIDetailURL: "https://api/game/1"},
			{ID: 2, Name: "Cyberpunk 2077", APIDetailURL: "https://api/game/2"},
		},
		games: map[string]*giantbomb.Game{
			"https://api/game/2": {
				Name:       "Cyberpunk 2077",
				Platforms:  []string{"PC", "PlayStation 5"},
				Genres:     []string{"Role-Playing"},
				Developers: []string{"CD Projekt Red"},
				AgeRatings: []giantbomb.AgeRating{{Category: 2, Rating: 5}, {Category: 1, Rating: 11}},
			},
		},
	}
	s := newTestService(nil, upc, gb, nil, nil)

	result, err := s.Lookup(context.Background(), MediaGame, KindUPC, "710425570766")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	g := result.Game
	if g == nil {
		t.Fatal("Lookup() result.Game = nil")
	}
	if g.Title != "Cyberpunk 2077 (Deluxe)" {
		t.Errorf("Title = %q, want edition re-appended", g.Title)
	}
	if g.Platform != "PlayStation 5" {
		t.Errorf("Platform = %q, want %q", g.Platform, "PlayStation 5")
	}
	if g.Format != "Blu-ray Disc" {
		t.Errorf("Format = %q, want derived %q", g.Format, "Blu-ray Disc")
	}
	if g.AgeRating != "ESRB: M" {
		t.Errorf("AgeRating = %q, want %q", g.AgeRating, "ESRB: M")
	}
}

func TestService_MusicLookup(t *testing.T) {
	mb := &mockMusicBrainz{
		releaseID: "rel-1",
		release: &musicbrainz.Release{
			ID:     "rel-1",
			Title:  "OK Computer",
			Artist: "Radiohead",
			Date:   "1997-05-21",
			Label:  "Parlophone",
			Genres: []string{"Alternative Rock", "Rock"},
			Media: []musicbrainz.Medium{
				{
					Position: 1,
					Tracks: []musicbrainz.Track{
						{Number: "1", Title: "Airbag", Millis: 284000},
						{Number: "2", Title: "Paranoid Android", Millis: 383000},
						{Number: "A", Title: "Hidden Track", Millis: 60000},
					},
				},
			},
		},
	}
	s := newTestService(nil, nil, nil, nil, mb)

	result, err := s.Lookup(context.Background(), MediaMusic, KindUPC, "724385522925")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	mu := result.Music
	if mu == nil {
		t.Fatal("Lookup() result.Music = nil")
	}
	if mu.Artist != "Radiohead" {
		t.Errorf("Artist = %q", mu.Artist)
	}
	// Non-numeric tracks count toward totals but stay out of the listing.
	if mu.TrackCount != 3 {
		t.Errorf("TrackCount = %d, want 3", mu.TrackCount)
	}
	if mu.Millis != 727000 {
		t.Errorf("Millis = %d, want 727000", mu.Millis)
	}
	if len(mu.Discs) != 1 || len(mu.Discs[0].Tracks) != 2 {
		t.Fatalf("Discs = %+v, want 1 disc with 2 numeric tracks", mu.Discs)
	}
}

func TestRegistry_Get(t *testing.T) {
	s := newTestService(nil, nil, nil, nil, nil)

	strategy, err := s.registry.Get(MediaBook, KindOLID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !strategy.CanHandle(MediaBook, KindOLID) {
		t.Error("Get() returned strategy that does not claim the pair")
	}

	_, err = s.registry.Get(MediaMusic, KindISBN)
	var unsupported *UnsupportedError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Get() error = %v, want UnsupportedError", err)
	}
	if unsupported.Media != MediaMusic || unsupported.Kind != KindISBN {
		t.Errorf("UnsupportedError = %+v, want music/isbn", unsupported)
	}
}
