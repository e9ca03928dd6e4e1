package config

import (
	"fmt"
	"net/url"
	"strings"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// Ledger
	DataFile string `env:"BUDGET_FILE" envDefault:"budget_data.csv"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Blob mirror, disabled when the URL is empty
	BlobServiceURL string `env:"BLOB_SERVICE_URL"`
	BlobContainer  string `env:"BLOB_CONTAINER" envDefault:"budget-tracker"`
}

// LoadEnvFile loads a .env file from the working directory if there is one.
func LoadEnvFile() {
	_ = godotenv.Load()
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

// MirrorEnabled reports whether saves should be copied to blob storage.
func (c *Config) MirrorEnabled() bool {
	return c.BlobServiceURL != ""
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.DataFile) == "" {
		errors = append(errors, "ledger file path cannot be empty")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'text' or 'json'", c.LogFormat))
	}

	if c.MirrorEnabled() {
		if parsedURL, err := url.Parse(c.BlobServiceURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid blob service URL '%s': %v", c.BlobServiceURL, err))
		} else if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
			errors = append(errors, fmt.Sprintf("invalid blob service URL scheme '%s': must be 'http' or 'https'", parsedURL.Scheme))
		}
		if c.BlobContainer == "" {
			errors = append(errors, "blob container name cannot be empty when a blob service URL is provided")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}
