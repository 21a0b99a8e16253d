package config

import "time"

// Config represents the complete CLI configuration structure
type Config struct {
	ElevenLabs ElevenLabsConfig `mapstructure:"elevenlabs"`
	Client     ClientConfig     `mapstructure:"client"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Output     OutputConfig     `mapstructure:"output"`
	// Filters maps a name to a filter expression usable with --filter
	Filters map[string]string `mapstructure:"filters"`
}

// ElevenLabsConfig holds API connection details
type ElevenLabsConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// ClientConfig tunes the HTTP dispatcher
type ClientConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	RateLimit float64       `mapstructure:"rate_limit"`
	Burst     int           `mapstructure:"burst"`
	UserAgent string        `mapstructure:"user_agent"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// OutputConfig controls how command results are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
}
