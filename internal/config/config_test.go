// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/mcslp/src/mojang"
	"github.com/H0llyW00dzZ/mcslp/src/slp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mcslp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, mojang.DefaultURL, cfg.StatusURL)
	assert.Equal(t, mojang.PolicyInline, cfg.Policy())
	assert.Equal(t, slp.ANSI{}, cfg.MarkupRenderer())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
status_url: http://127.0.0.1:8080/check
fetch_timeout: 3s
list_mode: true
bold_banner: false
labels:
  example.org: Example
connect_timeout: 1500ms
concurrency: 4
markup: irc
resolver: 1.1.1.1
targets:
  - mc.example.com
  - 127.0.0.1:25570
listen: 127.0.0.1:9999
log:
  level: debug
  console: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8080/check", cfg.StatusURL)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.True(t, cfg.ListMode)
	assert.False(t, cfg.BoldBanner)
	assert.Equal(t, map[string]string{"example.org": "Example"}, cfg.Labels)
	assert.Equal(t, 1500*time.Millisecond, cfg.ConnectTimeout)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, "1.1.1.1", cfg.Resolver)
	assert.Equal(t, []string{"mc.example.com", "127.0.0.1:25570"}, cfg.Targets)
	assert.Equal(t, "127.0.0.1:9999", cfg.Listen)
	assert.Equal(t, LogConfig{Level: "debug", Console: false}, cfg.Log)

	// Keys missing from the file keep their defaults.
	assert.Equal(t, Default().ReadTimeout, cfg.ReadTimeout)

	assert.Equal(t, mojang.PolicyGrouped, cfg.Policy())
	assert.Equal(t, slp.IRC{}, cfg.MarkupRenderer())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "concurrency: [1, 2"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty status url", func(c *Config) { c.StatusURL = " " }},
		{"zero fetch timeout", func(c *Config) { c.FetchTimeout = 0 }},
		{"negative connect timeout", func(c *Config) { c.ConnectTimeout = -time.Second }},
		{"zero read timeout", func(c *Config) { c.ReadTimeout = 0 }},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }},
		{"unknown markup", func(c *Config) { c.Markup = "html" }},
		{"empty target", func(c *Config) { c.Targets = []string{""} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadInvalidValue(t *testing.T) {
	_, err := Load(writeConfig(t, "markup: html\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
