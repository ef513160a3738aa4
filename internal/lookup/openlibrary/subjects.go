package openlibrary

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var semicolonSpacingRe = regexp.MustCompile(`\s*;\s*`)

// DedupeSubjects collapses near-duplicate subject tags. Entries are grouped
// by a normalization key that ignores case, diacritics and punctuation;
// the first entry of each group wins and is rendered in display form.
// Order of first appearance is preserved.
func DedupeSubjects(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		key := subjectKey(s)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, displaySubject(s))
	}
	return out
}

// subjectKey decomposes the string so diacritic marks become standalone
// combining runes, then keeps only letters and digits, lowercased.
func subjectKey(s string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return norm.NFC.String(b.String())
}

// displaySubject title-cases the tag and renders comma-separated facets
// as "a; b; c" with exactly one space after each semicolon.
func displaySubject(s string) string {
	s = cases.Title(language.English).String(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, ",", ";")
	s = semicolonSpacingRe.ReplaceAllString(s, "; ")
	return strings.TrimSpace(s)
}
