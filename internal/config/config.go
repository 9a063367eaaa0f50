// Package config handles application configuration management.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	// Provider settings for the embedding backend
	Provider ProviderConfig

	// LogFile mirrors stderr diagnostics to a file when set
	LogFile string
}

// ProviderConfig holds embedding provider configuration. The model itself is
// fixed; this only selects which backend serves it.
type ProviderConfig struct {
	// Name of the backend: "openai" (any OpenAI-compatible server) or "ollama"
	Name string `yaml:"provider"`

	// APIKey for hosted OpenAI-compatible endpoints (OPENAI_API_KEY env var)
	APIKey string `yaml:"api_key"`

	// BaseURL overrides the OpenAI endpoint, e.g. a local TEI or LocalAI server
	BaseURL string `yaml:"base_url"`

	// OllamaHost is the Ollama server address (default http://localhost:11434)
	OllamaHost string `yaml:"ollama_host"`

	// RateLimit caps provider requests per minute; 0 means unlimited
	RateLimit int `yaml:"rate_limit"`
}

// fileConfig is the on-disk YAML shape.
type fileConfig struct {
	ProviderConfig `yaml:",inline"`
	LogFile        string `yaml:"log_file"`
}

// ConfigFilePath returns the optional config file location under the XDG
// config directory.
func ConfigFilePath() string {
	return filepath.Join(xdg.ConfigHome, "embedder", "config.yaml")
}

// Load builds configuration from defaults, the optional config file, and
// environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := loadFile(cfg, ConfigFilePath()); err != nil {
		return nil, err
	}
	loadEnv(cfg)

	return cfg, nil
}

// loadFile merges the YAML file at path into cfg. A missing file is not an
// error.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Name != "" {
		cfg.Provider.Name = fc.Name
	}
	if fc.APIKey != "" {
		cfg.Provider.APIKey = fc.APIKey
	}
	if fc.BaseURL != "" {
		cfg.Provider.BaseURL = fc.BaseURL
	}
	if fc.OllamaHost != "" {
		cfg.Provider.OllamaHost = fc.OllamaHost
	}
	if fc.RateLimit > 0 {
		cfg.Provider.RateLimit = fc.RateLimit
	}
	if fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
	return nil
}

// loadEnv applies environment variable overrides.
func loadEnv(cfg *Config) {
	if name := os.Getenv("EMBEDDER_PROVIDER"); name != "" {
		cfg.Provider.Name = name
	}
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		cfg.Provider.APIKey = apiKey
	}
	if baseURL := os.Getenv("EMBEDDER_BASE_URL"); baseURL != "" {
		cfg.Provider.BaseURL = baseURL
	}
	if host := os.Getenv("OLLAMA_HOST"); host != "" {
		cfg.Provider.OllamaHost = host
	}
	if raw := os.Getenv("EMBEDDER_RATE_LIMIT"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			cfg.Provider.RateLimit = limit
		}
	}
	if logFile := os.Getenv("EMBEDDER_LOG_FILE"); logFile != "" {
		cfg.LogFile = logFile
	}
}
