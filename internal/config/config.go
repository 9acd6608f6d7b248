package config

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Logging   LoggingConfig   `yaml:"logging"`
	Providers ProvidersConfig `yaml:"providers"`
	Scoring   ScoringConfig   `yaml:"scoring"`
}

type ServerConfig struct {
	Host                string `yaml:"host"`
	Port                int    `yaml:"port"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
}

type DatabaseConfig struct {
	// Path of the search-history database. Empty disables history logging.
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ProvidersConfig holds external provider credentials. The environment
// variables YOUTUBE_API_KEY and SERPAPI_KEY override any YAML values.
// The YouTube key is mandatory for the search pipeline; the SerpAPI key
// is optional and its absence only disables article/PDF results.
type ProvidersConfig struct {
	YouTubeAPIKey string `yaml:"youtube_api_key"`
	SerpAPIKey    string `yaml:"serpapi_key"`
}

// ScoringConfig carries the heuristic keyword and domain lists used by the
// scoring engine and the article classifier. They are data, not code, so
// deployments can tune them without a rebuild.
type ScoringConfig struct {
	ReputableChannels []string `yaml:"reputable_channels"`
	ReputableDomains  []string `yaml:"reputable_domains"`
	ArticleDomains    []string `yaml:"article_domains"`
	AdvancedKeywords  []string `yaml:"advanced_keywords"`
	BeginnerKeywords  []string `yaml:"beginner_keywords"`
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:                "0.0.0.0",
			Port:                3001,
			ReadTimeoutSeconds:  30,
			WriteTimeoutSeconds: 60,
		},
		Database: DatabaseConfig{
			Path: "./eduscout.db",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Scoring: ScoringConfig{
			ReputableChannels: []string{
				"khan academy", "coursera", "edx", "mit", "stanford", "harvard",
				"freecodecamp", "traversy media", "net ninja", "3blue1brown",
			},
			ReputableDomains: []string{
				"edu", "org", "medium.com", "dev.to", "wikipedia.org",
				"coursera.org", "edx.org",
			},
			ArticleDomains: []string{
				"medium.com", "dev.to", "wikipedia.org", "edu",
			},
			AdvancedKeywords: []string{
				"advanced", "expert", "professional", "master", "deep dive", "comprehensive",
			},
			BeginnerKeywords: []string{
				"beginner", "introduction", "basics", "getting started", "101", "fundamentals",
			},
		},
	}
}

// Load reads a YAML config file and merges it over defaults, then overlays
// provider credentials from the environment. If the file does not exist,
// defaults are returned without error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No config file found, using defaults", "path", path)
			cfg.applyEnv()
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("YOUTUBE_API_KEY"); v != "" {
		c.Providers.YouTubeAPIKey = v
	}
	if v := os.Getenv("SERPAPI_KEY"); v != "" {
		c.Providers.SerpAPIKey = v
	}
}
