// Package config provides configuration loading and validation for the job
// portal server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds server configuration. Values can come from a JSON file, from
// environment variables, or from CLI flags; missing values use defaults.
type Config struct {
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	InMemory    bool   `json:"in_memory,omitempty"`    // Use the in-memory store instead of PostgreSQL
	MailFrom    string `json:"mail_from,omitempty"`    // From address for candidate notifications
	JSONLog     bool   `json:"json_log,omitempty"`     // Emit JSON logs
	Debug       bool   `json:"debug,omitempty"`        // Enable debug logging
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// FromEnv fills unset fields from environment variables.
func (c *Config) FromEnv() {
	if c.Port == 0 {
		if v := os.Getenv("PORT"); v != "" {
			if port, err := strconv.Atoi(v); err == nil {
				c.Port = port
			}
		}
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.MailFrom == "" {
		c.MailFrom = os.Getenv("MAIL_FROM")
	}
}

// ApplyDefaults fills remaining unset fields.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.MailFrom == "" {
		c.MailFrom = "noreply@jobportal.local"
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535")
	}
	if !c.InMemory && c.DatabaseURL == "" {
		return fmt.Errorf("config error: 'database_url' is required unless 'in_memory' is set")
	}
	return nil
}
