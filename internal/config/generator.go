package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvGeneratorAPIKey      = "OPENAI_API_KEY"
	EnvGeneratorBaseURL     = "TYPEMITR_GENERATOR_BASE_URL"
	EnvGeneratorModel       = "TYPEMITR_GENERATOR_MODEL"
	EnvGeneratorTemperature = "TYPEMITR_GENERATOR_TEMPERATURE"
	EnvGeneratorMaxTokens   = "TYPEMITR_GENERATOR_MAX_TOKENS"
	EnvGeneratorTimeout     = "TYPEMITR_GENERATOR_TIMEOUT"
	EnvGeneratorSessionTTL  = "TYPEMITR_GENERATOR_SESSION_TTL"
)

// GeneratorConfig holds parameters for the upstream generation model.
// The API key is environment-only and never read from TOML.
type GeneratorConfig struct {
	APIKey      string  `toml:"-"`
	BaseURL     string  `toml:"base_url"`
	Model       string  `toml:"model"`
	Temperature float64 `toml:"temperature"`
	MaxTokens   int64   `toml:"max_tokens"`
	Timeout     string  `toml:"timeout"`
	SessionTTL  string  `toml:"session_ttl"`
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *GeneratorConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// SessionTTLDuration returns SessionTTL as a time.Duration.
func (c *GeneratorConfig) SessionTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.SessionTTL)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *GeneratorConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *GeneratorConfig) Merge(overlay *GeneratorConfig) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.Temperature != 0 {
		c.Temperature = overlay.Temperature
	}
	if overlay.MaxTokens != 0 {
		c.MaxTokens = overlay.MaxTokens
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.SessionTTL != "" {
		c.SessionTTL = overlay.SessionTTL
	}
}

func (c *GeneratorConfig) loadDefaults() {
	if c.Model == "" {
		c.Model = "gpt-4o"
	}
	if c.Temperature == 0 {
		c.Temperature = 0.7
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 2000
	}
	if c.Timeout == "" {
		c.Timeout = "60s"
	}
	if c.SessionTTL == "" {
		c.SessionTTL = "30m"
	}
}

func (c *GeneratorConfig) loadEnv() {
	if v := os.Getenv(EnvGeneratorAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvGeneratorBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvGeneratorModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvGeneratorTemperature); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			c.Temperature = t
		}
	}
	if v := os.Getenv(EnvGeneratorMaxTokens); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.MaxTokens = n
		}
	}
	if v := os.Getenv(EnvGeneratorTimeout); v != "" {
		c.Timeout = v
	}
	if v := os.Getenv(EnvGeneratorSessionTTL); v != "" {
		c.SessionTTL = v
	}
}

func (c *GeneratorConfig) validate() error {
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2")
	}
	if c.MaxTokens < 1 {
		return fmt.Errorf("max_tokens must be positive")
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if _, err := time.ParseDuration(c.SessionTTL); err != nil {
		return fmt.Errorf("invalid session_ttl: %w", err)
	}
	return nil
}
