package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = ":9999"
mode = "debug"

[database]
url = "postgres://db:5432/dancehub?sslmode=disable"

[maps]
api_key = "maps-key"

[search]
app_id = "APP123"
api_key = "search-key"
`)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GOOGLE_MAPS_API_KEY", "")
	t.Setenv("SEARCH_APP_ID", "")
	t.Setenv("SEARCH_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":9999" || cfg.Server.Mode != "debug" {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Search.Host != "https://APP123-dsn.algolia.net" {
		t.Errorf("derived search host = %q", cfg.Search.Host)
	}
	if cfg.Search.Index != "profiles" {
		t.Errorf("default index = %q", cfg.Search.Index)
	}
	if cfg.ImportTimeout().Seconds() != 45 {
		t.Errorf("default import timeout = %v", cfg.ImportTimeout())
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[maps]
api_key = "from-file"

[search]
app_id = "APP123"
api_key = "search-key"
`)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("GOOGLE_MAPS_API_KEY", "from-env")
	t.Setenv("DATABASE_URL", "postgres://env-db:5432/dancehub")
	t.Setenv("SEARCH_APP_ID", "")
	t.Setenv("SEARCH_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Maps.APIKey != "from-env" {
		t.Errorf("maps key = %q, want env to win", cfg.Maps.APIKey)
	}
	if cfg.Database.URL != "postgres://env-db:5432/dancehub" {
		t.Errorf("database url = %q", cfg.Database.URL)
	}
}

func TestLoadRejectsMissingSecrets(t *testing.T) {
	path := writeConfig(t, `
[maps]
api_key = "maps-key"
`)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("GOOGLE_MAPS_API_KEY", "")
	t.Setenv("SEARCH_APP_ID", "")
	t.Setenv("SEARCH_API_KEY", "")
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing search credentials")
	}
}
