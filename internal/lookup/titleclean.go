package lookup

import (
	"regexp"
	"strings"
)

// Barcode databases store listing titles, not catalog titles: platform
// names, shrink-wrap conditions, disc counts and SKU codes are all crammed
// into one string. The cleaners below reduce those listings to something a
// provider search endpoint will actually match.

var (
	gameEditionRe = regexp.MustCompile(`(?i)\b(Collector's Edition|Game of the Year|GOTY|Deluxe|Definitive|Complete|Ultimate)\b`)

	gamePlatformTokenRe = regexp.MustCompile(`(?i)\b(PlayStation\s?[2345]|PlayStation Vita|PlayStation|PS[2345]|PS Vita|PSP|Xbox Series X\|S|Xbox Series [XS]|Xbox One|Xbox 360|Xbox|Nintendo Switch|Switch|Wii U|Wii|Nintendo 3DS|3DS|Nintendo DS|GameCube|Nintendo 64|N64|Dreamcast|PC)\b`)

	gameFormatParenRe = regexp.MustCompile(`(?i)[(\[][^)\]]*\b(?:disc|cartridge|digital)\b[^)\]]*[)\]]`)
	gameFormatDashRe  = regexp.MustCompile(`(?i)\s*-\s*[^-]*\b(?:disc|cartridge|digital)\b[^-]*$`)

	gameConditionRe = regexp.MustCompile(`(?i)\s*-\s*(Pre[\s-]?Played|Pre[\s-]?Owned|Used|Greatest Hits|Platinum Hits|Player's Choice|Nintendo Selects|Essentials)\b[^-]*$`)

	danglingDashRe  = regexp.MustCompile(`[\s-]+$`)
	skuCodeRe       = regexp.MustCompile(`(?i)\s\(?([A-Z0-9]{3,}-[A-Z0-9]{2,})\)?$`)
	leftoverParenRe = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)
	multiSpaceRe    = regexp.MustCompile(`\s+`)
)

// CleanGameTitle strips platform, format, condition and SKU noise from a
// barcode-database game listing and extracts the edition marker, if any,
// so the caller can re-append it as "{Title} ({Edition})".
// Empty or whitespace-only input yields ("", "").
func CleanGameTitle(raw string) (title, edition string) {
	title = strings.TrimSpace(raw)
	if title == "" {
		return "", ""
	}

	if m := gameEditionRe.FindString(title); m != "" {
		edition = m
	}

	title = gamePlatformTokenRe.ReplaceAllString(title, " ")
	title = gameFormatParenRe.ReplaceAllString(title, " ")
	title = gameFormatDashRe.ReplaceAllString(title, " ")
	title = gameConditionRe.ReplaceAllString(title, " ")

	title = strings.TrimSpace(title)
	title = danglingDashRe.ReplaceAllString(title, "")
	if m := skuCodeRe.FindStringSubmatch(title); m != nil && strings.ContainsAny(m[1], "0123456789") {
		title = title[:len(title)-len(m[0])]
	}

	if edition != "" {
		editionTokenRe := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(edition) + `(\s+Edition)?\b`)
		title = editionTokenRe.ReplaceAllString(title, " ")
	}

	title = leftoverParenRe.ReplaceAllString(title, " ")
	title = danglingDashRe.ReplaceAllString(title, "")
	title = strings.TrimSpace(multiSpaceRe.ReplaceAllString(title, " "))

	return title, edition
}

// Retail brand prefixes seen on movie barcode listings, stripped as
// "{Brand} - " or "{Brand}: ".
var movieBrands = []string{
	"Walt Disney",
	"Disney",
	"Warner Bros.",
	"Warner Bros",
	"Universal Studios",
	"Universal",
	"Paramount",
	"Sony Pictures",
	"Lionsgate",
	"MGM",
	"20th Century Fox",
	"Criterion Collection",
}

var (
	movieConditionRe = regexp.MustCompile(`(?i)[\s\-(\[]+(Brand New|Like New|Very Good|New|Used|Sealed|Good|Acceptable)[\s)\]]*$`)

	discCountCommaRe  = regexp.MustCompile(`(?i),\s*\d+[\s-]*disc\b.*$`)
	formatComboRe     = regexp.MustCompile(`(?i)\b(Blu-?ray|DVD|4K(?:\s*(?:Ultra\s*HD|UHD))?|UHD|Digital(?:\s*(?:Copy|Code|HD))?|HD)(\s*\+\s*(Blu-?ray|DVD|4K(?:\s*(?:Ultra\s*HD|UHD))?|UHD|Digital(?:\s*(?:Copy|Code|HD))?|HD))+\b`)
	movieFormatTailRe = regexp.MustCompile(`(?i)(\s*-\s*|\s+)(Blu-?ray|DVD|4K(?:\s*(?:Ultra\s*HD|UHD))?|UHD|Digital|BD|HD DVD)\s*$`)
	discEditionTailRe = regexp.MustCompile(`(?i)(\s*-\s*|\s+)(\d+[\s-]*Disc(\s+(Set|Edition))?|Complete Collection)\s*$`)
	trailingArticleRe = regexp.MustCompile(`(?i)^(.+?),?\s+(The|A)$`)
)

// CleanMovieTitle reduces a movie barcode listing to a searchable title.
// Trailing leading-article forms ("Scanner Darkly A") are rotated back to
// the front ("A Scanner Darkly").
func CleanMovieTitle(raw string) string {
	title := strings.TrimSpace(raw)
	if title == "" {
		return ""
	}

	for _, brand := range movieBrands {
		for _, sep := range []string{" - ", ": "} {
			prefix := brand + sep
			if len(title) > len(prefix) && strings.EqualFold(title[:len(prefix)], prefix) {
				title = title[len(prefix):]
			}
		}
	}

	for {
		next := movieConditionRe.ReplaceAllString(title, "")
		if next == title {
			break
		}
		title = next
	}

	// A parenthetical is always packaging noise unless the title starts
	// with one.
	if idx := strings.IndexAny(title, "(["); idx > 0 {
		title = title[:idx]
	}

	title = discCountCommaRe.ReplaceAllString(title, "")
	title = formatComboRe.ReplaceAllString(title, " ")

	for _, brand := range movieBrands {
		suffixRe := regexp.MustCompile(`(?i)(\s*-\s*|\s+)` + regexp.QuoteMeta(brand) + `\s*$`)
		title = suffixRe.ReplaceAllString(title, "")
	}
	for {
		next := movieFormatTailRe.ReplaceAllString(title, "")
		if next == title {
			break
		}
		title = next
	}
	title = discEditionTailRe.ReplaceAllString(title, "")

	title = strings.TrimSpace(multiSpaceRe.ReplaceAllString(title, " "))
	title = strings.Trim(title, "-, ")

	if m := trailingArticleRe.FindStringSubmatch(title); m != nil {
		title = m[2] + " " + m[1]
	}

	return strings.TrimSpace(title)
}

var (
	gameCartridgeRe = regexp.MustCompile(`(?i)\bcartridge\b`)
	gameDigitalRe   = regexp.MustCompile(`(?i)\bdigital\b`)
	gameDiscRe      = regexp.MustCompile(`(?i)\bdisc\b`)

	movie4KRe      = regexp.MustCompile(`(?i)\b4K(\s*(Ultra\s*HD|UHD))?\b|\bUHD\b`)
	movieBluRayRe  = regexp.MustCompile(`(?i)\bBlu-?ray\b|\bBD\b`)
	movieHDDVDRe   = regexp.MustCompile(`(?i)\bHD\s*DVD\b`)
	movieDVDRe     = regexp.MustCompile(`(?i)\bDVD\b`)
	movieDigitalRe = regexp.MustCompile(`(?i)\bdigital\b`)
)

// ExtractGameFormat pulls a physical format keyword out of a raw listing
// title. Empty result means the caller should derive the format from the
// matched game's platform list instead.
func ExtractGameFormat(raw string) string {
	switch {
	case gameCartridgeRe.MatchString(raw):
		return "Cartridge"
	case gameDigitalRe.MatchString(raw):
		return "Digital"
	case gameDiscRe.MatchString(raw):
		return "Disc"
	}
	return ""
}

// ExtractMovieFormat pulls a video format keyword out of a raw listing title.
func ExtractMovieFormat(raw string) string {
	switch {
	case movie4KRe.MatchString(raw):
		return "4K Ultra HD"
	case movieHDDVDRe.MatchString(raw):
		return "HD DVD"
	case movieBluRayRe.MatchString(raw):
		return "Blu-ray"
	case movieDVDRe.MatchString(raw):
		return "DVD"
	case movieDigitalRe.MatchString(raw):
		return "Digital"
	}
	return ""
}

// platformAliases maps listing tokens to canonical platform names, scanned
// longest-alias-first so "PlayStation 4" never half-matches "PlayStation".
var platformAliases = []struct {
	token    *regexp.Regexp
	platform string
}{
	{regexp.MustCompile(`(?i)\bPlayStation\s?5\b|\bPS5\b`), "PlayStation 5"},
	{regexp.MustCompile(`(?i)\bPlayStation\s?4\b|\bPS4\b`), "PlayStation 4"},
	{regexp.MustCompile(`(?i)\bPlayStation\s?3\b|\bPS3\b`), "PlayStation 3"},
	{regexp.MustCompile(`(?i)\bPlayStation\s?2\b|\bPS2\b`), "PlayStation 2"},
	{regexp.MustCompile(`(?i)\bPlayStation Vita\b|\bPS Vita\b`), "PlayStation Vita"},
	{regexp.MustCompile(`(?i)\bPSP\b`), "PSP"},
	{regexp.MustCompile(`(?i)\bPlayStation\b`), "PlayStation"},
	{regexp.MustCompile(`(?i)\bXbox Series\b`), "Xbox Series X|S"},
	{regexp.MustCompile(`(?i)\bXbox One\b`), "Xbox One"},
	{regexp.MustCompile(`(?i)\bXbox 360\b`), "Xbox 360"},
	{regexp.MustCompile(`(?i)\bXbox\b`), "Xbox"},
	{regexp.MustCompile(`(?i)\bNintendo Switch\b|\bSwitch\b`), "Nintendo Switch"},
	{regexp.MustCompile(`(?i)\bWii U\b`), "Wii U"},
	{regexp.MustCompile(`(?i)\bWii\b`), "Wii"},
	{regexp.MustCompile(`(?i)\bNintendo 3DS\b|\b3DS\b`), "Nintendo 3DS"},
	{regexp.MustCompile(`(?i)\bNintendo DS\b|\bNDS\b`), "Nintendo DS"},
	{regexp.MustCompile(`(?i)\bGameCube\b`), "GameCube"},
	{regexp.MustCompile(`(?i)\bNintendo 64\b|\bN64\b`), "Nintendo 64"},
	{regexp.MustCompile(`(?i)\bDreamcast\b`), "Dreamcast"},
	{regexp.MustCompile(`(?i)\bPC\b|\bWindows\b`), "PC"},
}

// ExtractPlatform pulls a canonical platform name out of a raw listing title.
func ExtractPlatform(raw string) string {
	for _, alias := range platformAliases {
		if alias.token.MatchString(raw) {
			return alias.platform
		}
	}
	return ""
}

// DeriveFormatFromPlatforms maps a game's platform metadata to a physical
// format when the listing title itself carried no format keyword. The
// preferred platform (extracted from the listing, may be empty) is used
// when present in the list, otherwise the first platform. Dreamcast must be
// checked before the generic optical buckets so it lands on GD-ROM.
// The closing DVD default is a deliberate approximation for platforms the
// table does not know.
func DeriveFormatFromPlatforms(platforms []string, preferred string) string {
	if len(platforms) == 0 {
		return ""
	}

	platform := platforms[0]
	for _, p := range platforms {
		if strings.EqualFold(p, preferred) {
			platform = p
			break
		}
	}

	name := strings.ToLower(platform)
	switch {
	case strings.Contains(name, "dreamcast"):
		return "GD-ROM"
	case strings.Contains(name, "switch"),
		strings.Contains(name, "3ds"),
		strings.Contains(name, "nintendo ds"),
		strings.Contains(name, "game boy"),
		strings.Contains(name, "nintendo 64"),
		strings.Contains(name, "snes"),
		strings.Contains(name, "nes"),
		strings.Contains(name, "vita"):
		return "Cartridge"
	case strings.Contains(name, "playstation 5"),
		strings.Contains(name, "playstation 4"),
		strings.Contains(name, "xbox one"),
		strings.Contains(name, "xbox series"):
		return "Blu-ray Disc"
	case strings.Contains(name, "playstation 3"),
		strings.Contains(name, "playstation 2"),
		strings.Contains(name, "xbox"),
		strings.Contains(name, "wii"):
		return "DVD"
	case strings.Contains(name, "playstation"),
		strings.Contains(name, "saturn"),
		strings.Contains(name, "sega cd"),
		strings.Contains(name, "pc"),
		strings.Contains(name, "windows"):
		return "CD-ROM"
	}
	return "DVD"
}
