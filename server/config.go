package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the full service configuration.
type Config struct {
	Listen      string          `yaml:"listen"`
	DBPath      string          `yaml:"db_path"`
	UploadsDir  string          `yaml:"uploads_dir"`
	MaxUploadMB int             `yaml:"max_upload_mb"`
	LogLevel    string          `yaml:"log_level"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig seeds the rate limit rule for the extract endpoint.
// Rules live in the database and can be changed at runtime; this only
// sets the initial value.
type RateLimitConfig struct {
	MaxRequests   int `yaml:"max_requests"`
	WindowSeconds int `yaml:"window_seconds"`
}

// DefaultConfig returns sane defaults.
func DefaultConfig() *Config {
	return &Config{
		Listen:      ":8080",
		DBPath:      "timetab.db",
		UploadsDir:  "uploads",
		MaxUploadMB: 10,
		LogLevel:    "info",
		RateLimit: RateLimitConfig{
			MaxRequests:   100,
			WindowSeconds: 900,
		},
	}
}

// LoadConfig reads and parses a YAML config file. Returns DefaultConfig merged with the file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.UploadsDir == "" {
		return fmt.Errorf("uploads_dir is required")
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("max_upload_mb must be > 0")
	}
	if c.RateLimit.MaxRequests < 0 || c.RateLimit.WindowSeconds < 0 {
		return fmt.Errorf("rate_limit values must not be negative")
	}
	return nil
}

// MaxUploadBytes returns the upload limit in bytes.
func (c *Config) MaxUploadBytes() int64 { return int64(c.MaxUploadMB) * 1024 * 1024 }
