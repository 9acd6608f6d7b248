package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 3001 {
		t.Errorf("Port = %d, want default 3001", cfg.Server.Port)
	}
	if len(cfg.Scoring.ReputableChannels) == 0 {
		t.Error("default scoring lists missing")
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 8080
logging:
  level: debug
providers:
  youtube_api_key: from-file
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want override 8080", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Providers.YouTubeAPIKey != "from-file" {
		t.Errorf("YouTubeAPIKey = %q, want from-file", cfg.Providers.YouTubeAPIKey)
	}
	// Untouched sections keep their defaults.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want default host kept", cfg.Server.Host)
	}
	if cfg.Database.Path != "./eduscout.db" {
		t.Errorf("Database.Path = %q, want default kept", cfg.Database.Path)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("providers:\n  youtube_api_key: from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("YOUTUBE_API_KEY", "from-env")
	t.Setenv("SERPAPI_KEY", "serp-from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Providers.YouTubeAPIKey != "from-env" {
		t.Errorf("YouTubeAPIKey = %q, want environment to win", cfg.Providers.YouTubeAPIKey)
	}
	if cfg.Providers.SerpAPIKey != "serp-from-env" {
		t.Errorf("SerpAPIKey = %q, want serp-from-env", cfg.Providers.SerpAPIKey)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a mapping"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
