// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the YAML configuration of the mcslp command.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/mcslp/src/mojang"
	"github.com/H0llyW00dzZ/mcslp/src/slp"
)

// ErrInvalidConfig is returned by [Config.Validate].
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the configuration of the mcslp command. Flags override the
// values read from the file.
type Config struct {
	// Status feed.
	StatusURL    string            `yaml:"status_url"`
	FetchTimeout time.Duration     `yaml:"fetch_timeout"`
	ListMode     bool              `yaml:"list_mode"`   // grouped summary instead of inline
	BoldBanner   bool              `yaml:"bold_banner"` // "[Minecraft Status]" in bold
	Labels       map[string]string `yaml:"labels"`      // extra display labels for feed names

	// Server pings.
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	Concurrency    int           `yaml:"concurrency"`
	Resolver       string        `yaml:"resolver"` // DNS server for SRV lookups, empty for the system one

	// Output.
	Markup string `yaml:"markup"` // irc, ansi or plain

	// serve command.
	Targets []string `yaml:"targets"`
	Listen  string   `yaml:"listen"`

	Log LogConfig `yaml:"log"`
}

// LogConfig is the logging section.
type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		StatusURL:      mojang.DefaultURL,
		FetchTimeout:   10 * time.Second,
		ListMode:       false,
		BoldBanner:     true,
		ConnectTimeout: 5 * time.Second,
		ReadTimeout:    5 * time.Second,
		Concurrency:    16,
		Markup:         "ansi",
		Listen:         ":9150",
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// Load reads the file at path over [Default]. Keys missing from the
// file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate reports the first invalid value.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.StatusURL) == "":
		return fmt.Errorf("%w: status_url is empty", ErrInvalidConfig)
	case c.FetchTimeout <= 0:
		return fmt.Errorf("%w: fetch_timeout must be positive", ErrInvalidConfig)
	case c.ConnectTimeout <= 0:
		return fmt.Errorf("%w: connect_timeout must be positive", ErrInvalidConfig)
	case c.ReadTimeout <= 0:
		return fmt.Errorf("%w: read_timeout must be positive", ErrInvalidConfig)
	case c.Concurrency <= 0:
		return fmt.Errorf("%w: concurrency must be positive", ErrInvalidConfig)
	}

	if _, ok := slp.MarkupByName(c.Markup); !ok {
		return fmt.Errorf("%w: unknown markup %q", ErrInvalidConfig, c.Markup)
	}

	for _, target := range c.Targets {
		if _, err := slp.ParseAddress(target); err != nil {
			return fmt.Errorf("%w: target %q: %v", ErrInvalidConfig, target, err)
		}
	}

	return nil
}

// Policy returns the summary policy selected by ListMode.
func (c Config) Policy() mojang.Policy {
	if c.ListMode {
		return mojang.PolicyGrouped
	}
	return mojang.PolicyInline
}

// MarkupRenderer returns the renderer named by Markup, falling back to
// plain text.
func (c Config) MarkupRenderer() slp.Markup {
	if m, ok := slp.MarkupByName(c.Markup); ok {
		return m
	}
	return slp.Plain{}
}
