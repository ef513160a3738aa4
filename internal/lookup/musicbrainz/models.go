package musicbrainz

// Release is a normalized MusicBrainz release record.
type Release struct {
	ID       string
	Title    string
	Artist   string
	Date     string
	Label    string
	Genres   []string
	Media    []Medium
	CoverURL string
}

// Medium is one physical unit of a release (a disc, a tape side).
type Medium struct {
	Position   int
	Title      string
	TrackCount int
	Tracks     []Track
}

// Track numbers come back as strings; vinyl and tape releases use
// non-numeric numbering like "A1".
type Track struct {
	Number string
	Title  string
	Millis int
}

type searchResponse struct {
	Count    int             `json:"count"`
	Releases []searchRelease `json:"releases"`
}

type searchRelease struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Score int    `json:"score"`
}

type releaseResponse struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Date         string         `json:"date"`
	ArtistCredit []artistCredit `json:"artist-credit"`
	LabelInfo    []labelInfo    `json:"label-info"`
	Media        []medium       `json:"media"`
	Tags         []tag          `json:"tags"`
}

type artistCredit struct {
	Name   string `json:"name"`
	Artist struct {
		Name string `json:"name"`
	} `json:"artist"`
}

type labelInfo struct {
	Label struct {
		Name string `json:"name"`
	} `json:"label"`
}

type medium struct {
	Position   int     `json:"position"`
	Title      string  `json:"title"`
	TrackCount int     `json:"track-count"`
	Tracks     []track `json:"tracks"`
}

type track struct {
	Number string `json:"number"`
	Title  string `json:"title"`
	Length int    `json:"length"`
}

type tag struct {
	Count int    `json:"count"`
	Name  string `json:"name"`
}
