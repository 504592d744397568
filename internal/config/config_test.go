package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/tagkit/internal/errors"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultAddress, cfg.Server.Address)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, DefaultNamespace, cfg.Metrics.Namespace)
	assert.Equal(t, "public", cfg.Publish.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "", cfg.Path())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "tagkit.toml",
			content: `
[server]
address = ":9000"
shutdown_timeout = "5s"

[theme]
file = "theme.toml"
default = "dark"

[publish]
bucket = "site"
prefix = "docs/"
`,
		},
		{
			name: "yaml",
			file: "tagkit.yaml",
			content: `
server:
  address: ":9000"
  shutdown_timeout: 5s
theme:
  file: theme.toml
  default: dark
publish:
  bucket: site
  prefix: docs/
`,
		},
		{
			name:    "json",
			file:    "tagkit.json",
			content: `{"server": {"address": ":9000", "shutdown_timeout": "5s"}, "theme": {"file": "theme.toml", "default": "dark"}, "publish": {"bucket": "site", "prefix": "docs/"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := write(t, dir, tt.file, tt.content)

			cfg, err := Load(dir)
			require.NoError(t, err)

			assert.Equal(t, ":9000", cfg.Server.Address)
			assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
			assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes, "unset keys keep defaults")
			assert.Equal(t, "dark", cfg.Theme.Default)
			assert.Equal(t, "site", cfg.Publish.Bucket)
			assert.Equal(t, path, cfg.Path())
			assert.Equal(t, filepath.Join(dir, "theme.toml"), cfg.ThemePath())
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestLoadPrefersTOML(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "tagkit.toml", "[server]\naddress = \":1\"\n")
	write(t, dir, "tagkit.json", `{"server": {"address": ":2"}}`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ":1", cfg.Server.Address)
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "tagkit.toml", "[server]\naddress = \":9000\"\n[publish]\nbucket = \"file-bucket\"\n")

	t.Setenv("TAGKIT_SERVER_ADDRESS", ":7000")
	t.Setenv("TAGKIT_SERVER_MAX_BODY_BYTES", "2048")
	t.Setenv("TAGKIT_PUBLISH_BUCKET", "env-bucket")
	t.Setenv("TAGKIT_LOG_LEVEL", "debug")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Address)
	assert.Equal(t, int64(2048), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "env-bucket", cfg.Publish.Bucket)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.toml"))
	assert.Equal(t, errors.CodeConfigLoad, errors.CodeOf(err))

	_, err = LoadFile(write(t, dir, "tagkit.ini", "x=1"))
	assert.Equal(t, errors.CodeConfigLoad, errors.CodeOf(err))

	_, err = LoadFile(write(t, dir, "tagkit.toml", "[server\n"))
	assert.Equal(t, errors.CodeConfigLoad, errors.CodeOf(err))

	_, err = LoadFile(write(t, dir, "bad.toml", "[server]\nshutdown_timeout = \"soon\"\n"))
	assert.Equal(t, errors.CodeConfigLoad, errors.CodeOf(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty address", func(c *Config) { c.Server.Address = "" }},
		{"zero timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }},
		{"zero body limit", func(c *Config) { c.Server.MaxBodyBytes = 0 }},
		{"bad namespace", func(c *Config) { c.Metrics.Namespace = "tag-kit" }},
		{"default theme without file", func(c *Config) { c.Theme.Default = "dark" }},
		{"no publish destination", func(c *Config) { c.Publish.Dir = "" }},
		{"absolute prefix", func(c *Config) { c.Publish.Prefix = "/docs" }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New()
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Equal(t, errors.CodeConfigInvalid, errors.CodeOf(cfg.Validate()))
		})
	}
}

func TestLogger(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	var buf bytes.Buffer
	logger := cfg.Logger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}
