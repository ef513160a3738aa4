package upcitemdb

// Item is a normalized UPCItemDB listing.
type Item struct {
	Title    string
	Brand    string
	Category string
	ISBN     string
	Images   []string
}

type lookupResponse struct {
	Code  string       `json:"code"`
	Total int          `json:"total"`
	Items []lookupItem `json:"items"`
}

type lookupItem struct {
	Title    string   `json:"title"`
	Brand    string   `json:"brand"`
	Category string   `json:"category"`
	UPC      string   `json:"upc"`
	EAN      string   `json:"ean"`
	ISBN     string   `json:"isbn"`
	Images   []string `json:"images"`
}
