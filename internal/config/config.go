package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Version is the application version, overridden at build time via ldflags.
var Version = "dev"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Lookup   LookupConfig   `mapstructure:"lookup"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// LookupConfig holds configuration for the external metadata providers.
type LookupConfig struct {
	OpenLibrary OpenLibraryConfig `mapstructure:"openlibrary"`
	TMDB        TMDBConfig        `mapstructure:"tmdb"`
	GiantBomb   GiantBombConfig   `mapstructure:"giantbomb"`
	UPCItemDB   UPCItemDBConfig   `mapstructure:"upcitemdb"`
	MusicBrainz MusicBrainzConfig `mapstructure:"musicbrainz"`
}

// OpenLibraryConfig holds OpenLibrary client configuration.
type OpenLibraryConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"`
}

// TMDBConfig holds TMDB client configuration.
type TMDBConfig struct {
	APIKey       string `mapstructure:"api_key"`
	BaseURL      string `mapstructure:"base_url"`
	ImageBaseURL string `mapstructure:"image_base_url"`
	Timeout      int    `mapstructure:"timeout"`
}

// GiantBombConfig holds GiantBomb client configuration.
type GiantBombConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"`
}

// UPCItemDBConfig holds UPCItemDB client configuration.
type UPCItemDBConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"`
}

// MusicBrainzConfig holds MusicBrainz client configuration.
type MusicBrainzConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	UserAgent string `mapstructure:"user_agent"`
	Timeout   int    `mapstructure:"timeout"`
}

// Load reads configuration from file and environment variables.
// Priority: environment variables > config file > defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.homeshelf")
	}

	v.SetEnvPrefix("HOMESHELF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Missing config file is fine, defaults + env vars apply.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEmbeddedKeys(cfg)

	return cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8085)

	v.SetDefault("database.path", "./data/homeshelf.db")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.path", "")

	v.SetDefault("lookup.openlibrary.base_url", "https://openlibrary.org")
	v.SetDefault("lookup.openlibrary.timeout", 10)

	v.SetDefault("lookup.tmdb.api_key", "")
	v.SetDefault("lookup.tmdb.base_url", "https://api.themoviedb.org/3")
	v.SetDefault("lookup.tmdb.image_base_url", "https://image.tmdb.org/t/p")
	v.SetDefault("lookup.tmdb.timeout", 10)

	v.SetDefault("lookup.giantbomb.api_key", "")
	v.SetDefault("lookup.giantbomb.base_url", "https://www.giantbomb.com/api")
	v.SetDefault("lookup.giantbomb.timeout", 10)

	v.SetDefault("lookup.upcitemdb.base_url", "https://api.upcitemdb.com")
	v.SetDefault("lookup.upcitemdb.timeout", 10)

	v.SetDefault("lookup.musicbrainz.base_url", "https://musicbrainz.org")
	v.SetDefault("lookup.musicbrainz.user_agent", "HomeShelf/"+Version+" (https://github.com/homeshelf/homeshelf)")
	v.SetDefault("lookup.musicbrainz.timeout", 15)
}

// applyEmbeddedKeys fills in build-time embedded API keys for any provider
// the user has not configured explicitly.
func applyEmbeddedKeys(cfg *Config) {
	if cfg.Lookup.TMDB.APIKey == "" {
		cfg.Lookup.TMDB.APIKey = EmbeddedTMDBKey
	}
	if cfg.Lookup.GiantBomb.APIKey == "" {
		cfg.Lookup.GiantBomb.APIKey = EmbeddedGiantBombKey
	}
}

// Address returns the server address string.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
