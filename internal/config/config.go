// Package config loads the MCP server configuration from a YAML file with
// environment variable overrides. The config file is optional: MCP servers
// are usually launched by a client with nothing but environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jonesrussell/mcp-aws-blogs/internal/logger"
)

// Default client values.
const (
	// DefaultHTTPTimeoutSeconds is the fixed per-request transport timeout.
	DefaultHTTPTimeoutSeconds = 30
	// DefaultUserAgent mirrors a desktop browser; aws.amazon.com rejects
	// obvious bot user agents on some edge nodes.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
	// DefaultMaxFanoutCategories caps multi-feed fan-out for search and
	// recent-posts when no category filter is given.
	DefaultMaxFanoutCategories = 5
)

// Config holds the MCP server configuration.
type Config struct {
	Client  ClientConfig  `yaml:"client"`
	Blogs   BlogsConfig   `yaml:"blogs"`
	Logging logger.Config `yaml:"logging"`
}

// ClientConfig holds outbound HTTP settings.
type ClientConfig struct {
	HTTPTimeoutSeconds int    `yaml:"http_timeout_seconds" env:"HTTP_TIMEOUT_SECONDS"`
	UserAgent          string `yaml:"user_agent" env:"HTTP_USER_AGENT"`
}

// BlogsConfig holds blog-engine settings.
type BlogsConfig struct {
	MaxFanoutCategories int `yaml:"max_fanout_categories" env:"MAX_FANOUT_CATEGORIES"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// LoadOrDefault loads config from file, or returns defaults (plus env
// overrides) if the file can't be read.
func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		cfg = NewDefault()
		applyEnvOverrides(cfg)
	}
	return cfg
}

// NewDefault creates a new config with all default values.
func NewDefault() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	if cfg.Client.HTTPTimeoutSeconds <= 0 {
		cfg.Client.HTTPTimeoutSeconds = DefaultHTTPTimeoutSeconds
	}
	if cfg.Client.UserAgent == "" {
		cfg.Client.UserAgent = DefaultUserAgent
	}
	if cfg.Blogs.MaxFanoutCategories <= 0 {
		cfg.Blogs.MaxFanoutCategories = DefaultMaxFanoutCategories
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

// loadEnvFiles loads .env files in priority order: ENV_FILE if set,
// otherwise .env.local then .env. Missing files are not an error.
func loadEnvFiles() {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		_ = godotenv.Load(envFile)
		return
	}
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")
}

// applyEnvOverrides applies environment variable values over the loaded
// config. Env always wins over file values and defaults.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Client.HTTPTimeoutSeconds = n
		}
	}
	if v := os.Getenv("HTTP_USER_AGENT"); v != "" {
		cfg.Client.UserAgent = v
	}
	if v := os.Getenv("MAX_FANOUT_CATEGORIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Blogs.MaxFanoutCategories = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
