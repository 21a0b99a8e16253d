package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0up4200/convai/filter"
)

// Load loads the CLI configuration. A missing config file is not an error;
// values then come from defaults and ELEVENLABS_* environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix("ELEVENLABS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The API key and base URL use the SDK's variable names rather than the
	// nested ELEVENLABS_ELEVENLABS_* form AutomaticEnv would produce.
	_ = v.BindEnv("elevenlabs.api_key", EnvAPIKey)
	_ = v.BindEnv("elevenlabs.base_url", EnvBaseURL)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".convai"))
		}

		// Check /etc
		v.AddConfigPath("/etc/convai/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("elevenlabs.api_key", "")
	v.SetDefault("elevenlabs.base_url", DefaultBaseURL)

	// Client defaults
	v.SetDefault("client.timeout", "30s")
	v.SetDefault("client.rate_limit", 0)
	v.SetDefault("client.burst", 1)
	v.SetDefault("client.user_agent", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	v.SetDefault("output.format", "json")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	validOutputs := map[string]bool{
		"json": true,
		"yaml": true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output.format: %s (must be 'json' or 'yaml')", cfg.Output.Format)
	}

	if cfg.Client.Timeout < 0 {
		return fmt.Errorf("client.timeout must not be negative")
	}
	if cfg.Client.RateLimit < 0 {
		return fmt.Errorf("client.rate_limit must not be negative")
	}

	// Validate named filters
	for name, expr := range cfg.Filters {
		if _, err := filter.Compile(expr); err != nil {
			return fmt.Errorf("invalid filter '%s': %w", name, err)
		}
	}

	return nil
}

// Settings converts the loaded file and environment values into a holder
// the SDK can resolve credentials from.
func (c *Config) Settings() *Settings {
	s := NewSettings()
	props := map[string]string{}
	if c.ElevenLabs.APIKey != "" {
		props[PropAPIKey] = c.ElevenLabs.APIKey
	}
	if c.ElevenLabs.BaseURL != "" {
		props[PropBaseURL] = c.ElevenLabs.BaseURL
	}
	s.Configure(props)
	return s
}
