package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Maps     MapsConfig     `toml:"maps"`
	Search   SearchConfig   `toml:"search"`
	Scraper  ScraperConfig  `toml:"scraper"`
	Import   ImportConfig   `toml:"import"`
}

type ServerConfig struct {
	Addr string `toml:"addr"` // e.g. ":8080"
	Mode string `toml:"mode"` // gin mode: debug/release/test
}

type DatabaseConfig struct {
	URL            string `toml:"url"`
	MigrationsPath string `toml:"migrations_path"`
}

type MapsConfig struct {
	APIKey string `toml:"api_key"`
}

type SearchConfig struct {
	Host   string `toml:"host"` // e.g. https://APPID-dsn.algolia.net
	AppID  string `toml:"app_id"`
	APIKey string `toml:"api_key"`
	Index  string `toml:"index"` // profile index name
}

type ScraperConfig struct {
	UserAgent      string `toml:"user_agent"`
	Proxy          string `toml:"proxy"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type ImportConfig struct {
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// Load reads the TOML config file (CONFIG_FILE env, default
// config/config.toml), then overrides secrets from the environment and
// validates the result. A .env file is honored when present.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI).
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config/config.toml"
	}

	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		// No file: run on defaults + environment.
	} else if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	overrideFromEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server:   ServerConfig{Addr: ":8080", Mode: "release"},
		Database: DatabaseConfig{MigrationsPath: "internal/infrastructure/database/migrations"},
		Search:   SearchConfig{Index: "profiles"},
		Scraper: ScraperConfig{
			UserAgent:      "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0",
			TimeoutSeconds: 20,
		},
		Import: ImportConfig{TimeoutSeconds: 45},
	}
}

// overrideFromEnv applies secrets from the environment (priority env > toml).
func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("GOOGLE_MAPS_API_KEY"); v != "" {
		cfg.Maps.APIKey = v
	}
	if v := os.Getenv("SEARCH_APP_ID"); v != "" {
		cfg.Search.AppID = v
	}
	if v := os.Getenv("SEARCH_API_KEY"); v != "" {
		cfg.Search.APIKey = v
	}
	if v := os.Getenv("SCRAPER_PROXY"); v != "" {
		cfg.Scraper.Proxy = v
	}
}

// validate applies all business rules on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Database.URL) == "" {
		// Useful local default when DATABASE_URL is not provided.
		c.Database.URL = "postgres://localhost:5432/dancehub?sslmode=disable"
	}
	parsed, err := url.Parse(c.Database.URL)
	if err != nil {
		return fmt.Errorf("config: invalid database url (%q): %w", c.Database.URL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid database url (%q): missing scheme or host", c.Database.URL)
	}

	if strings.TrimSpace(c.Maps.APIKey) == "" {
		return fmt.Errorf("config: GOOGLE_MAPS_API_KEY is required")
	}
	if strings.TrimSpace(c.Search.AppID) == "" || strings.TrimSpace(c.Search.APIKey) == "" {
		return fmt.Errorf("config: SEARCH_APP_ID and SEARCH_API_KEY are required")
	}
	if c.Search.Host == "" {
		c.Search.Host = fmt.Sprintf("https://%s-dsn.algolia.net", c.Search.AppID)
	}
	if c.Scraper.TimeoutSeconds <= 0 {
		return fmt.Errorf("config: scraper timeout must be positive")
	}
	if c.Import.TimeoutSeconds <= 0 {
		return fmt.Errorf("config: import timeout must be positive")
	}
	return nil
}

// ScrapeTimeout returns the per-request scraper timeout.
func (c *Config) ScrapeTimeout() time.Duration {
	return time.Duration(c.Scraper.TimeoutSeconds) * time.Second
}

// ImportTimeout returns the end-to-end deadline for one import.
func (c *Config) ImportTimeout() time.Duration {
	return time.Duration(c.Import.TimeoutSeconds) * time.Second
}
