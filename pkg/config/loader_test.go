package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout())
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "password123", cfg.Admin.Password)
	assert.Equal(t, "2.4", cfg.Platform.Version)
	assert.NoError(t, cfg.Validate())

	authCfg := cfg.Auth()
	assert.Equal(t, 4*time.Hour, authCfg.TTL)
	assert.Empty(t, authCfg.Secret)
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "magemock.yaml", `
server:
  port: 9090
log:
  level: debug
admin:
  password: s3cret
  tokenTtl: 30m
platform:
  version: "2.3"
seed:
  paths:
    - fixtures/*.yaml
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, DefaultReadTimeout, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "s3cret", cfg.Admin.Password)
	assert.Equal(t, 30*time.Minute, cfg.Auth().TTL)
	assert.Equal(t, "2.3", cfg.Platform.Version)
	assert.Equal(t, []string{"fixtures/*.yaml"}, cfg.Seed.Paths)
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "magemock.json", `{"server": {"port": 8181, "writeTimeout": 5}, "log": {"format": "json"}}`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout())
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"missing", filepath.Join(dir, "missing.yaml"), ErrFileNotFound},
		{"empty", writeFile(t, dir, "empty.yaml", "  \n"), ErrEmptyFile},
		{"invalid json", writeFile(t, dir, "bad.json", "{ invalid json }"), ErrInvalidJSON},
		{"invalid yaml", writeFile(t, dir, "bad.yaml", "server: [unclosed"), ErrInvalidYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromFile(tt.path)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadFromFile_Directory(t *testing.T) {
	_, err := LoadFromFile(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "magemock.yaml", `
server:
  port: 9090
seed:
  paths:
    - fixtures/*.yaml
    - /abs/fixtures.json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{filepath.Join(dir, "fixtures/*.yaml"), "/abs/fixtures.json"}, cfg.Seed.Paths)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "magemock.yaml", "server:\n  port: 70000\n")

	_, err := Load(path)
	require.Error(t, err)

	var result *ValidationResult
	require.ErrorAs(t, err, &result)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "server.port", result.Errors[0].Path)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvPort, "7070")
	t.Setenv(EnvReadTimeout, "not-a-number")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvAdminUsername, "ci")
	t.Setenv(EnvAdminPassword, "ci-pass")
	t.Setenv(EnvTokenSecret, "signing-key")
	t.Setenv(EnvTokenTTL, "1h")
	t.Setenv(EnvPlatformVersion, "2.3")
	t.Setenv(EnvSeed, "a.yaml, b/**/*.json ,")

	cfg := Default()
	ApplyEnv(cfg)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, DefaultReadTimeout, cfg.Server.ReadTimeout)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "2.3", cfg.Platform.Version)
	assert.Equal(t, []string{"a.yaml", "b/**/*.json"}, cfg.Seed.Paths)

	authCfg := cfg.Auth()
	assert.Equal(t, "ci", authCfg.Username)
	assert.Equal(t, "ci-pass", authCfg.Password)
	assert.Equal(t, "signing-key", authCfg.Secret)
	assert.Equal(t, time.Hour, authCfg.TTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		path   string
	}{
		{"negative port", func(c *Config) { c.Server.Port = -1 }, "server.port"},
		{"negative read timeout", func(c *Config) { c.Server.ReadTimeout = -1 }, "server.readTimeout"},
		{"negative write timeout", func(c *Config) { c.Server.WriteTimeout = -1 }, "server.writeTimeout"},
		{"log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"username", func(c *Config) { c.Admin.Username = "" }, "admin.username"},
		{"password", func(c *Config) { c.Admin.Password = "" }, "admin.password"},
		{"ttl syntax", func(c *Config) { c.Admin.TokenTTL = "soon" }, "admin.tokenTtl"},
		{"ttl negative", func(c *Config) { c.Admin.TokenTTL = "-1h" }, "admin.tokenTtl"},
		{"platform version", func(c *Config) { c.Platform.Version = "" }, "platform.version"},
		{"seed path", func(c *Config) { c.Seed.Paths = []string{" "} }, "seed.paths[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			var result *ValidationResult
			require.ErrorAs(t, err, &result)
			require.Len(t, result.Errors, 1)
			assert.Equal(t, tt.path, result.Errors[0].Path)
			assert.Contains(t, err.Error(), tt.path)
		})
	}
}

func TestValidate_UppercaseLevel(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "DEBUG"
	assert.NoError(t, cfg.Validate())
}
