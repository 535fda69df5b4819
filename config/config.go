// Package config loads the server configuration from an optional YAML
// file with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Admin identifies the account added as editor to every created board.
// ID wins over Email, Email over Username.
type Admin struct {
	ID       string `yaml:"id"`
	Email    string `yaml:"email"`
	Username string `yaml:"username"`
}

// Config is the full server configuration.
type Config struct {
	BaseURL       string        `yaml:"base_url"`
	AgentEmail    string        `yaml:"agent_email"`
	AgentPassword string        `yaml:"agent_password"`
	Admin         Admin         `yaml:"admin"`
	Timeout       time.Duration `yaml:"timeout"`
}

// rawConfig is the YAML wire shape. Timeout is a duration string
// ("30s", "2m"); yaml cannot decode those into time.Duration directly.
type rawConfig struct {
	BaseURL       string `yaml:"base_url"`
	AgentEmail    string `yaml:"agent_email"`
	AgentPassword string `yaml:"agent_password"`
	Admin         Admin  `yaml:"admin"`
	Timeout       string `yaml:"timeout"`
}

// UnmarshalYAML merges file values over existing ones, so defaults
// survive fields the file omits.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw rawConfig
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.BaseURL != "" {
		c.BaseURL = raw.BaseURL
	}
	if raw.AgentEmail != "" {
		c.AgentEmail = raw.AgentEmail
	}
	if raw.AgentPassword != "" {
		c.AgentPassword = raw.AgentPassword
	}
	if raw.Admin != (Admin{}) {
		c.Admin = raw.Admin
	}
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		c.Timeout = d
	}
	return nil
}

// Default returns a config with usable defaults.
func Default() *Config {
	return &Config{
		BaseURL: "http://localhost:3000",
		Timeout: 30 * time.Second,
	}
}

// Load reads a config file when path is non-empty, then applies
// environment overrides. A missing file at the default path is not an
// error; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides file values with environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("PLANKA_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("PLANKA_AGENT_EMAIL"); v != "" {
		c.AgentEmail = v
	}
	if v := os.Getenv("PLANKA_AGENT_PASSWORD"); v != "" {
		c.AgentPassword = v
	}
	if v := os.Getenv("PLANKA_ADMIN_ID"); v != "" {
		c.Admin.ID = v
	}
	if v := os.Getenv("PLANKA_ADMIN_EMAIL"); v != "" {
		c.Admin.Email = v
	}
	if v := os.Getenv("PLANKA_ADMIN_USERNAME"); v != "" {
		c.Admin.Username = v
	}
	if v := os.Getenv("PLANKA_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}
}

// Validate checks that the config can produce a working client.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.AgentEmail == "" {
		return fmt.Errorf("agent_email is required (or PLANKA_AGENT_EMAIL)")
	}
	if c.AgentPassword == "" {
		return fmt.Errorf("agent_password is required (or PLANKA_AGENT_PASSWORD)")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}
