// Package config loads application configuration from a YAML file with
// environment overrides. Credentials for the upstream API never appear here;
// the ingestion layer receives them at construction time.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Server holds the HTTP listener settings.
type Server struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Cache holds TTLs for the rendered-post and thumbnail caches.
type Cache struct {
	RenderedTTLMinutes int `yaml:"rendered_ttl_minutes"`
	ThumbTTLMinutes    int `yaml:"thumb_ttl_minutes"`
}

// Vimeo holds the thumbnail lookup endpoint settings.
type Vimeo struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Video holds iframe embed dimensions.
type Video struct {
	IframeWidth  int `yaml:"iframe_width"`
	IframeHeight int `yaml:"iframe_height"`
}

// Links holds the site URL templates for entity anchors.
type Links struct {
	SiteBase      string `yaml:"site_base"`
	HashtagSearch string `yaml:"hashtag_search"`
}

// RateLimit holds the per-IP fetch limit.
type RateLimit struct {
	PerMinute int `yaml:"per_minute"`
}

// Logging holds the log level.
type Logging struct {
	Level string `yaml:"level"`
}

// Source holds the replay-file path used when no live ingestion layer is
// wired in.
type Source struct {
	File string `yaml:"file"`
}

// Config is the full application configuration.
type Config struct {
	Server    Server    `yaml:"server"`
	Cache     Cache     `yaml:"cache"`
	Vimeo     Vimeo     `yaml:"vimeo"`
	Video     Video     `yaml:"video"`
	Links     Links     `yaml:"links"`
	RateLimit RateLimit `yaml:"rate_limit"`
	Logging   Logging   `yaml:"logging"`
	Source    Source    `yaml:"source"`
}

// Load reads the YAML file at path (missing file is fine, defaults apply),
// then applies environment overrides. A .env file is honored when present.
func Load(path string) (*Config, error) {
	// Ignore the error: a .env file is optional.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults only.
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	applyEnv(cfg)

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("CACHE_TTL_MINUTES"); v != "" {
		if ttl, err := strconv.Atoi(v); err == nil {
			cfg.Cache.RenderedTTLMinutes = ttl
		}
	}
	if v := os.Getenv("VIMEO_BASE_URL"); v != "" {
		cfg.Vimeo.BaseURL = v
	}
	if v := os.Getenv("VIMEO_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.Vimeo.TimeoutSeconds = secs
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SOURCE_FILE"); v != "" {
		cfg.Source.File = v
	}
}
