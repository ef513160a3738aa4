package tmdb

// MovieResult is a minimal search candidate.
type MovieResult struct {
	ID          int
	Title       string
	ReleaseDate string
}

// Movie is a normalized TMDB movie record.
type Movie struct {
	ID          int
	Title       string
	Overview    string
	ReleaseDate string
	Runtime     int
	VoteAverage float64
	Genres      []string
	Studios     []string
	PosterURL   string
}

type searchMoviesResponse struct {
	Page         int           `json:"page"`
	Results      []movieResult `json:"results"`
	TotalResults int           `json:"total_results"`
}

type movieResult struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
}

type movieDetails struct {
	ID                  int          `json:"id"`
	Title               string       `json:"title"`
	Overview            string       `json:"overview"`
	ReleaseDate         string       `json:"release_date"`
	Runtime             int          `json:"runtime"`
	VoteAverage         float64      `json:"vote_average"`
	Genres              []namedRef   `json:"genres"`
	ProductionCompanies []namedRef   `json:"production_companies"`
	PosterPath          *string      `json:"poster_path"`
}

type namedRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type errorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
