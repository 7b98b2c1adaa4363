// Package config loads the counter's runtime configuration.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Defaults.
const (
	DefaultInterval = 10 * time.Second
	DefaultMaxWords = 0 // unlimited
)

// Config holds the runtime configuration for the wordfreq CLI.
type Config struct {
	Interval time.Duration `koanf:"interval"`
	MaxWords int           `koanf:"max_words"`
	Summary  bool          `koanf:"summary"`
	Verbose  bool          `koanf:"verbose"`
}

// Load loads configuration from environment variables and flags.
// Precedence (highest to lowest): flags > env vars > defaults.
// There is deliberately no config-file layer.
func Load(flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"interval":  DefaultInterval.String(),
		"max_words": DefaultMaxWords,
		"summary":   false,
		"verbose":   false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Environment variables (WORDFREQ_ prefix)
	// Transform: WORDFREQ_MAX_WORDS -> max_words
	if err := k.Load(env.Provider("WORDFREQ_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "WORDFREQ_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 3. Flags (highest priority)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			// Transform kebab-case to snake_case for config keys
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %s", cfg.Interval)
	}
	if cfg.MaxWords < 0 {
		return nil, fmt.Errorf("max-words must be zero or positive, got %d", cfg.MaxWords)
	}

	return &cfg, nil
}
