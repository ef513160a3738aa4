package lookup

import "strings"

// matchThreshold is the minimum score a best candidate must reach before it
// is preferred over the provider's own first result.
const matchThreshold = 0.5

// BestMatch ranks search candidates against a cleaned query title and
// returns the most likely match. A single candidate is returned without
// scoring. With two or more, each candidate scores 1.0 for a
// case-insensitive exact title match, 0.9 when the candidate name contains
// the whole query, and otherwise the fraction of query words that partially
// match a candidate word. If the top score is below the threshold the
// provider's first result is returned instead, so a non-empty candidate
// list always yields a match. ok is false only for an empty list.
func BestMatch[T any](candidates []T, title string, name func(T) string) (best T, ok bool) {
	if len(candidates) == 0 {
		return best, false
	}
	if len(candidates) == 1 {
		return candidates[0], true
	}

	bestIdx := 0
	bestScore := -1.0
	for i, c := range candidates {
		// First max in original order wins ties.
		if score := matchScore(name(c), title); score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}

	if bestScore >= matchThreshold {
		return candidates[bestIdx], true
	}
	return candidates[0], true
}

// matchScore compares a candidate name against the query title.
func matchScore(candidate, query string) float64 {
	c := strings.ToLower(strings.TrimSpace(candidate))
	q := strings.ToLower(strings.TrimSpace(query))

	if c == q {
		return 1.0
	}
	if q != "" && strings.Contains(c, q) {
		return 0.9
	}

	queryWords := splitTitleWords(q)
	if len(queryWords) == 0 {
		return 0
	}
	candidateWords := splitTitleWords(c)

	matched := 0
	for _, qw := range queryWords {
		for _, cw := range candidateWords {
			if strings.Contains(cw, qw) || strings.Contains(qw, cw) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(queryWords))
}

// splitTitleWords splits a title on the separators that commonly vary
// between storefront listings and provider records.
func splitTitleWords(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == ':' || r == '.'
	})
	words := parts[:0]
	for _, p := range parts {
		if p != "" {
			words = append(words, p)
		}
	}
	return words
}
