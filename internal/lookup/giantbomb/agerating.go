package giantbomb

import "fmt"

// Rating board categories as stored in provider payloads.
const (
	categoryESRB = 1
	categoryPEGI = 2
)

var esrbCodes = map[int]string{
	6:  "RP",
	7:  "EC",
	8:  "E",
	9:  "E10+",
	10: "T",
	11: "M",
	12: "AO",
}

var pegiCodes = map[int]string{
	1: "3",
	2: "7",
	3: "12",
	4: "16",
	5: "18",
}

// DecodeAgeRating renders the display age rating for a game. An ESRB entry
// is preferred over PEGI regardless of the order the provider returned
// them in. Unknown boards and unknown codes are skipped; empty input
// yields an empty string.
func DecodeAgeRating(ratings []AgeRating) string {
	for _, r := range ratings {
		if r.Category != categoryESRB {
			continue
		}
		if code, ok := esrbCodes[r.Rating]; ok {
			return fmt.Sprintf("ESRB: %s", code)
		}
	}
	for _, r := range ratings {
		if r.Category != categoryPEGI {
			continue
		}
		if code, ok := pegiCodes[r.Rating]; ok {
			return fmt.Sprintf("PEGI: %s", code)
		}
	}
	return ""
}
