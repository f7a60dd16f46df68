// File: internal/config/config.go
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/xkilldash9x/vaultfill-cli/api/schemas"
)

// Config holds the entire application configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Fill   FillConfig   `mapstructure:"fill" yaml:"fill"`
	Match  MatchConfig  `mapstructure:"match" yaml:"match"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// FillConfig tunes script generation. Every knob here has a matching CLI
// flag; the flag wins when both are set.
type FillConfig struct {
	// AllowTotpAutofill permits verification-code fields to be filled from
	// the item's TOTP seed.
	AllowTotpAutofill bool `mapstructure:"allow_totp_autofill" yaml:"allow_totp_autofill"`
	// AllowHiddenFields lets the locators consider fields that are not
	// currently viewable.
	AllowHiddenFields bool `mapstructure:"allow_hidden_fields" yaml:"allow_hidden_fields"`
	// AllowUsernameOnlyFill keeps the fuzzy username fallback enabled on
	// pages with no password field at all.
	AllowUsernameOnlyFill bool `mapstructure:"allow_username_only_fill" yaml:"allow_username_only_fill"`
	// OnlyEmptyFields skips password fields that already carry a value.
	OnlyEmptyFields bool `mapstructure:"only_empty_fields" yaml:"only_empty_fields"`
	// FillNewPassword targets autocomplete="new-password" fields, for
	// change-password pages.
	FillNewPassword bool `mapstructure:"fill_new_password" yaml:"fill_new_password"`
	// ActionDelayMs is the pause the executor should leave between script
	// operations.
	ActionDelayMs int `mapstructure:"action_delay_ms" yaml:"action_delay_ms"`
}

// MatchConfig controls how saved login URIs are compared to the page URL.
type MatchConfig struct {
	// DefaultURIMatch applies to saved URIs that don't pin their own match
	// mode. One of: base_domain, host, starts_with, exact, regex, never.
	DefaultURIMatch string `mapstructure:"default_uri_match" yaml:"default_uri_match"`
	// EquivalentDomains holds user-supplied domain groups that are merged
	// with the built-in ones for base-domain matching.
	EquivalentDomains [][]string `mapstructure:"equivalent_domains" yaml:"equivalent_domains"`
}

// URIMatchMode resolves the configured default match mode. Unknown values
// were already rejected by Validate.
func (m MatchConfig) URIMatchMode() schemas.URIMatchMode {
	mode, _ := ParseURIMatchMode(m.DefaultURIMatch)
	return mode
}

// ParseURIMatchMode maps a config string to its match mode.
func ParseURIMatchMode(s string) (schemas.URIMatchMode, error) {
	switch s {
	case "base_domain", "":
		return schemas.URIMatchBaseDomain, nil
	case "host":
		return schemas.URIMatchHost, nil
	case "starts_with":
		return schemas.URIMatchStartsWith, nil
	case "exact":
		return schemas.URIMatchExact, nil
	case "regex":
		return schemas.URIMatchRegex, nil
	case "never":
		return schemas.URIMatchNever, nil
	}
	return schemas.URIMatchBaseDomain, fmt.Errorf("unknown uri match mode %q", s)
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "vaultfill-cli")
	v.SetDefault("logger.log_file", "vaultfill.log")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Fill --
	v.SetDefault("fill.allow_totp_autofill", true)
	v.SetDefault("fill.allow_hidden_fields", false)
	v.SetDefault("fill.allow_username_only_fill", true)
	v.SetDefault("fill.only_empty_fields", false)
	v.SetDefault("fill.fill_new_password", false)
	v.SetDefault("fill.action_delay_ms", 20)

	// -- Match --
	v.SetDefault("match.default_uri_match", "base_domain")
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if c.Fill.ActionDelayMs < 0 {
		return fmt.Errorf("fill.action_delay_ms must not be negative")
	}
	if _, err := ParseURIMatchMode(c.Match.DefaultURIMatch); err != nil {
		return fmt.Errorf("match.default_uri_match invalid: %w", err)
	}
	for i, group := range c.Match.EquivalentDomains {
		if len(group) < 2 {
			return fmt.Errorf("match.equivalent_domains[%d] needs at least two domains", i)
		}
	}
	return nil
}
