package giantbomb

// GameResult is a minimal search candidate. Only the detail URL is needed
// to fetch the full record.
type GameResult struct {
	ID           int
	Name         string
	APIDetailURL string
	ReleaseDate  string
}

// Game is a normalized GiantBomb game record.
type Game struct {
	Name        string
	Deck        string
	ReleaseDate string
	Platforms   []string
	Genres      []string
	Developers  []string
	AgeRatings  []AgeRating
	ImageURL    string
}

// AgeRating is a (board, code) pair as stored by the provider.
type AgeRating struct {
	Category int `json:"category"`
	Rating   int `json:"rating"`
}

// All GiantBomb responses share an envelope with an API status code;
// 1 means OK, 101 means object not found.
type searchResponse struct {
	StatusCode int            `json:"status_code"`
	Error      string         `json:"error"`
	Results    []searchResult `json:"results"`
}

type searchResult struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	APIDetailURL        string `json:"api_detail_url"`
	OriginalReleaseDate string `json:"original_release_date"`
}

type detailResponse struct {
	StatusCode int         `json:"status_code"`
	Error      string      `json:"error"`
	Results    *gameDetail `json:"results"`
}

type gameDetail struct {
	Name                string      `json:"name"`
	Deck                string      `json:"deck"`
	OriginalReleaseDate string      `json:"original_release_date"`
	Platforms           []namedRef  `json:"platforms"`
	Genres              []namedRef  `json:"genres"`
	Developers          []namedRef  `json:"developers"`
	AgeRatings          []AgeRating `json:"age_ratings"`
	Image               *gameImage  `json:"image"`
}

type namedRef struct {
	Name string `json:"name"`
}

type gameImage struct {
	SuperURL  string `json:"super_url"`
	MediumURL string `json:"medium_url"`
}

const statusOK = 1
