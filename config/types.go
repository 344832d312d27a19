package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Safety  SafetyConfig  `mapstructure:"safety"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds the 4YouSee API connection details
type APIConfig struct {
	URL   string `mapstructure:"url"`
	Token string `mapstructure:"token"`
	// RequestDelay is the pause before every request; zero disables it
	RequestDelay time.Duration `mapstructure:"request_delay"`
	Timeout      time.Duration `mapstructure:"timeout"`
	// RateLimit caps requests per second on top of the delay; zero disables it
	RateLimit float64       `mapstructure:"rate_limit"`
	Account   AccountConfig `mapstructure:"account"`
}

// AccountConfig describes the account the token belongs to
type AccountConfig struct {
	Name    string `mapstructure:"name"`
	Account string `mapstructure:"account"`
	Type    string `mapstructure:"type"`
}

// FilterConfig contains named record filter expressions
type FilterConfig map[string]string

// SafetyConfig contains safety-related settings
type SafetyConfig struct {
	DryRun        bool `mapstructure:"dry_run"`
	ConfirmDelete bool `mapstructure:"confirm_delete"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
