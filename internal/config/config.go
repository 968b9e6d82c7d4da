// Package config provides configuration loading for leadlens.
//
// Configuration is loaded from a YAML file and overridden with environment
// variables, with sensible defaults for everything.
package config

import "fmt"

// Config holds the complete leadlens configuration.
type Config struct {
	Logging    LoggingConfig    `koanf:"logging"`
	Extractor  ExtractorConfig  `koanf:"extractor"`
	Evaluation EvaluationConfig `koanf:"evaluation"`
}

// LoggingConfig holds logger configuration.
type LoggingConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json or console
}

// ExtractorConfig holds the probabilistic extractor configuration. The
// deterministic pattern extractor needs no configuration and always runs.
type ExtractorConfig struct {
	Provider       string `koanf:"provider"` // disabled or openai
	Model          string `koanf:"model"`
	APIKey         Secret `koanf:"api_key"`
	BaseURL        string `koanf:"base_url"`
	MaxTokens      int    `koanf:"max_tokens"`
	TimeoutSeconds int    `koanf:"timeout_seconds"`
}

// EvaluationConfig holds evaluation run configuration.
type EvaluationConfig struct {
	ResultPath string `koanf:"result_path"` // optional JSON report destination
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Validate validates the configuration.
//
// Returns an error if:
//   - The log level or format is not a known value
//   - The extractor provider is not "disabled" or "openai"
//   - The extractor timeout or token budget is not positive
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %q (must be json or console)", c.Logging.Format)
	}

	switch c.Extractor.Provider {
	case "", "disabled", "openai":
	default:
		return fmt.Errorf("invalid extractor provider: %q", c.Extractor.Provider)
	}

	if c.Extractor.TimeoutSeconds <= 0 {
		return fmt.Errorf("extractor timeout must be positive, got %d", c.Extractor.TimeoutSeconds)
	}

	if c.Extractor.MaxTokens <= 0 {
		return fmt.Errorf("extractor max tokens must be positive, got %d", c.Extractor.MaxTokens)
	}

	return nil
}
