package openlibrary

// Book is a normalized OpenLibrary volume record.
type Book struct {
	Title       string
	Subtitle    string
	Authors     []string
	Subjects    []string
	Publisher   string
	PublishDate string
	Pages       int
	Format      string
	CoverURL    string
}

// volumesResponse is the api/volumes/brief payload: a map of records keyed
// by an opaque record identifier. Only the first record is used.
type volumesResponse struct {
	Records map[string]volumeRecord `json:"records"`
}

type volumeRecord struct {
	PublishDates []string       `json:"publishDates"`
	Data         *volumeData    `json:"data"`
	Details      *volumeDetails `json:"details"`
}

// volumeData is the jscmd=data block, shared by the readable and legacy
// endpoints.
type volumeData struct {
	Title         string    `json:"title"`
	Subtitle      string    `json:"subtitle"`
	Authors       []nameRef `json:"authors"`
	Publishers    []nameRef `json:"publishers"`
	PublishDate   string    `json:"publish_date"`
	Subjects      []nameRef `json:"subjects"`
	NumberOfPages int       `json:"number_of_pages"`
	Pagination    string    `json:"pagination"`
	Cover         *coverSet `json:"cover"`
}

type nameRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type coverSet struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

type volumeDetails struct {
	Details *volumeDetailsInner `json:"details"`
}

type volumeDetailsInner struct {
	PhysicalFormat string `json:"physical_format"`
	Covers         []int  `json:"covers"`
	NumberOfPages  int    `json:"number_of_pages"`
	Pagination     string `json:"pagination"`
}
