// Package config loads leaf-mcp configuration from TOML files with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/gbstox/leaf-mcp/internal/common"
)

// Transport modes.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds all leaf-mcp configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	Leaf    LeafConfig           `toml:"leaf"`
	Catalog CatalogConfig        `toml:"catalog"`
	Logging common.LoggingConfig `toml:"logging"`
}

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name      string `toml:"name"`
	Transport string `toml:"transport"`
	Port      int    `toml:"port"`
}

// LeafConfig holds Leaf API settings. APIKey is the process-wide bearer
// token used in single-tenant (stdio) mode; under the HTTP transport each
// inbound request supplies its own token instead.
type LeafConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
	Timeout string `toml:"timeout"`
}

// GetTimeout parses and returns the upstream request timeout.
func (c *LeafConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// CatalogConfig selects the tool catalogue source. When OpenAPISpec names a
// file, tool descriptors are derived from that OpenAPI document instead of
// the built-in static catalogue.
type CatalogConfig struct {
	OpenAPISpec string `toml:"openapi_spec"`
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name:      "leaf-mcp",
			Transport: TransportStdio,
			Port:      8080,
		},
		Leaf: LeafConfig{
			BaseURL: "https://api.withleaf.io/services/",
			Timeout: "30s",
		},
		Logging: common.LoggingConfig{
			Level:   "info",
			Outputs: []string{"console"},
		},
	}
}

// Load loads configuration from files with environment overrides.
// Priority: defaults -> files (later files override earlier) -> env.
// Missing files are skipped.
func Load(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies LEAF_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if key := os.Getenv("LEAF_API_KEY"); key != "" {
		config.Leaf.APIKey = key
	}
	if url := os.Getenv("LEAF_API_URL"); url != "" {
		config.Leaf.BaseURL = url
	}
	if transport := os.Getenv("LEAF_MCP_TRANSPORT"); transport != "" {
		config.Server.Transport = transport
	}
	if port := os.Getenv("LEAF_MCP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if level := os.Getenv("LEAF_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if spec := os.Getenv("LEAF_OPENAPI_SPEC"); spec != "" {
		config.Catalog.OpenAPISpec = spec
	}
}

// Validate checks the configuration for the selected transport.
// Single-tenant (stdio) operation requires a process-wide API key: every
// upstream call authenticates with it, so a blank key is a startup error
// rather than a per-call one.
func (c *Config) Validate() error {
	switch c.Server.Transport {
	case TransportStdio:
		if c.Leaf.APIKey == "" {
			return fmt.Errorf("LEAF_API_KEY is required for the stdio transport (set the environment variable or leaf.api_key in the config file)")
		}
	case TransportHTTP:
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			return fmt.Errorf("invalid port %d for the http transport", c.Server.Port)
		}
	default:
		return fmt.Errorf("unknown transport %q (supported: stdio, http)", c.Server.Transport)
	}
	return nil
}
