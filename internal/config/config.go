// Package config loads engine settings from defaults, an optional YAML file
// and GQLQUERY_ environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	language "github.com/hanpama/gqlquery/internal/language"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "GQLQUERY_"

// Default values.
const (
	DefaultLogLevel = "info"
	DefaultService  = "gqlquery"
)

// Config holds engine settings.
type Config struct {
	// MaxDepth bounds the nesting of selection sets, list values and object
	// values. Zero means no limit.
	MaxDepth int `koanf:"max_depth"`
	// MaxTokens bounds the number of significant tokens in a document. Zero
	// means no limit.
	MaxTokens int        `koanf:"max_tokens"`
	LogLevel  string     `koanf:"log_level"`
	OTel      OTelConfig `koanf:"otel"`
}

// OTelConfig configures span export. An empty Endpoint keeps spans on the
// global tracer provider.
type OTelConfig struct {
	Endpoint string `koanf:"endpoint"`
	Service  string `koanf:"service"`
}

// Load reads configuration.
// Precedence (highest to lowest): env vars > config file > defaults
// An empty path skips the file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"max_depth":    language.DefaultMaxDepth,
		"max_tokens":   0,
		"log_level":    DefaultLogLevel,
		"otel.service": DefaultService,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// Transform: GQLQUERY_MAX_DEPTH -> max_depth, GQLQUERY_OTEL_ENDPOINT -> otel.endpoint
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if rest, ok := strings.CutPrefix(key, "otel_"); ok {
			return "otel." + rest
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("max_tokens must not be negative, got %d", c.MaxTokens)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel. An empty level means info.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return level, nil
}
