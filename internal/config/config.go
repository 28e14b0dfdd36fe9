package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Merge modes for pairing remote assets with the episode catalog.
const (
	MergePositional = "positional"
	MergeStrict     = "strict"
)

type Config struct {
	App struct {
		Port      int    `yaml:"port"`
		Debug     bool   `yaml:"debug"`
		LogJSON   bool   `yaml:"log_json"`
		UIEnabled bool   `yaml:"ui_enabled"`
		ShowTitle string `yaml:"show_title"`
		ShowSlug  string `yaml:"show_slug"`
	} `yaml:"app"`

	Mux struct {
		TokenID     string `yaml:"token_id"`
		TokenSecret string `yaml:"token_secret"`
		BaseURL     string `yaml:"base_url"`
		Timeout     string `yaml:"timeout"`
	} `yaml:"mux"`

	Relay struct {
		AllowedOrigin string `yaml:"allowed_origin"`
	} `yaml:"relay"`

	UI struct {
		// Where the episode page and the list command reach the relay.
		// Empty means this server's own /api/episodes.
		RelayURL string `yaml:"relay_url"`
		Merge    string `yaml:"merge"`
	} `yaml:"ui"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.App.Port = 8081
	cfg.App.Debug = false
	cfg.App.UIEnabled = true
	cfg.App.ShowTitle = "Family Guy Season 2"
	cfg.App.ShowSlug = "family-guy-season-2"

	cfg.Mux.BaseURL = "https://api.mux.com"
	cfg.Mux.Timeout = "30s"

	cfg.Relay.AllowedOrigin = "*"

	cfg.UI.Merge = MergePositional
}

// loadFromEnv applies hosting-environment overrides. Mux secrets are
// expected to arrive this way rather than from a committed file.
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("MUX_TOKEN_ID"); v != "" {
		cfg.Mux.TokenID = v
	}
	if v := os.Getenv("MUX_TOKEN_SECRET"); v != "" {
		cfg.Mux.TokenSecret = v
	}
	if v := os.Getenv("MUX_BASE_URL"); v != "" {
		cfg.Mux.BaseURL = v
	}
	if v := os.Getenv("EPISODES_RELAY_URL"); v != "" {
		cfg.UI.RelayURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.App.Port = port
	}
	return nil
}

func (c *Config) validate() error {
	if _, err := c.MuxTimeout(); err != nil {
		return err
	}
	switch c.UI.Merge {
	case MergePositional, MergeStrict:
	default:
		return fmt.Errorf("unsupported merge mode: %q", c.UI.Merge)
	}
	return nil
}

// MuxTimeout parses mux.timeout. Zero disables the client timeout.
func (c *Config) MuxTimeout() (time.Duration, error) {
	if strings.TrimSpace(c.Mux.Timeout) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Mux.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid mux.timeout %q: %w", c.Mux.Timeout, err)
	}
	return d, nil
}

// HasMuxCredentials reports whether both secrets are present and non-blank.
func (c *Config) HasMuxCredentials() bool {
	return strings.TrimSpace(c.Mux.TokenID) != "" && strings.TrimSpace(c.Mux.TokenSecret) != ""
}

// RelayEndpoint is the list URL the episode page and CLI call.
func (c *Config) RelayEndpoint() string {
	if c.UI.RelayURL != "" {
		return c.UI.RelayURL
	}
	return fmt.Sprintf("http://localhost:%d/api/episodes", c.App.Port)
}
