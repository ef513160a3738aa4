package config

// Embedded API keys injected at build time via ldflags.
// These serve as defaults and can be overridden by environment
// variables or config file.
//
// Build with:
//   go build -ldflags "-X 'github.com/homeshelf/homeshelf/internal/config.EmbeddedTMDBKey=xxx' \
//                      -X 'github.com/homeshelf/homeshelf/internal/config.EmbeddedGiantBombKey=yyy'"
var (
	EmbeddedTMDBKey      string
	EmbeddedGiantBombKey string
)
