package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sahardevv/OpenAPI.NET/i18n"
	"github.com/sahardevv/OpenAPI.NET/reader"
)

// Config holds the settings shared by all commands. Values come from flags,
// OAICONV_* environment variables and an optional config file, in that
// order of precedence.
type Config struct {
	Verbose  bool   `mapstructure:"verbose"`
	Lang     string `mapstructure:"lang"`
	MaxDepth int    `mapstructure:"max-depth"`
	External bool   `mapstructure:"external"`
	Indent   int    `mapstructure:"indent"`

	logger zerolog.Logger
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{Lang: "en", Indent: 2}
}

// LoadConfig merges defaults, the config file at path (if any), environment
// variables and the given flags.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("lang", defaults.Lang)
	v.SetDefault("max-depth", defaults.MaxDepth)
	v.SetDefault("external", defaults.External)
	v.SetDefault("indent", defaults.Indent)

	v.SetEnvPrefix("OAICONV")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".oaiconv")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Lang != "en" && cfg.Lang != "ja" {
		return nil, fmt.Errorf("invalid lang: %s (must be en or ja)", cfg.Lang)
	}
	return &cfg, nil
}

// apply installs the logger and the diagnostic language.
func (c *Config) apply() {
	level := zerolog.InfoLevel
	if c.Verbose {
		level = zerolog.DebugLevel
	}
	c.logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Logger()
	i18n.SetLanguage(c.Lang)
}

// readerSettings builds the reader configuration for an input file.
func (c *Config) readerSettings(ctx context.Context, file string) reader.Settings {
	s := reader.Settings{
		MaxDepth: c.MaxDepth,
		Logger:   &c.logger,
	}
	if c.External {
		s.ExternalResolver = newFileResolver(ctx, file, s).Resolve
	}
	return s
}
