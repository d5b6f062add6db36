// Package config loads ghost-as-a-service configuration from a YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hyoaru/ghost-as-a-service/internal/excuse"
)

// Provider names accepted in the provider field.
const (
	ProviderGemini    = "gemini"
	ProviderGeminiSDK = "gemini-sdk"
	ProviderAnthropic = "anthropic"
	ProviderStatic    = "static"
)

// Config holds all ghost-as-a-service configuration.
type Config struct {
	// Repository provider: gemini, gemini-sdk, anthropic, static
	Provider string `yaml:"provider"`

	// AI configuration (ignored by the static provider)
	APIKey             string `yaml:"api_key"`
	Model              string `yaml:"model"`
	Timeout            string `yaml:"timeout"`
	SystemInstructions string `yaml:"system_instructions"`

	// Static bank override; empty means the built-in bank
	Excuses []string `yaml:"excuses"`

	// HTTP entry adapter
	Server ServerConfig `yaml:"server"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the HTTP entry adapter.
type ServerConfig struct {
	Addr           string `yaml:"addr"`
	RequestTimeout string `yaml:"request_timeout"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    "gemini-1.5-flash",
		Timeout:  "60s",
		Server: ServerConfig{
			Addr:           ":8080",
			RequestTimeout: "30s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment variables override the file in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.APIKey = key
		if c.Provider == "" || c.Provider == ProviderStatic {
			c.Provider = ProviderGemini
		}
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		c.APIKey = key
		c.Provider = ProviderAnthropic
	}

	if provider := os.Getenv("GHOST_PROVIDER"); provider != "" {
		c.Provider = provider
	}
	if model := os.Getenv("GHOST_MODEL"); model != "" {
		c.Model = model
	}
	if addr := os.Getenv("GHOST_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
}

// Validate checks that the configuration can serve requests.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderGeminiSDK, ProviderAnthropic:
		if strings.TrimSpace(c.APIKey) == "" {
			return excuse.NewConfiguration(
				fmt.Sprintf("provider %q requires an API key", c.Provider))
		}
	case ProviderStatic:
		// The built-in bank backs an empty excuses list.
	default:
		return excuse.NewConfiguration(
			fmt.Sprintf("unknown provider %q (valid: gemini, gemini-sdk, anthropic, static)", c.Provider))
	}

	return nil
}

// GetTimeout returns the AI call timeout as a duration.
func (c *Config) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 60 * time.Second
	}
	return d
}

// GetRequestTimeout returns the per-request server timeout as a duration.
func (c *Config) GetRequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.RequestTimeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}
