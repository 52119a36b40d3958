package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", cfg.Client.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.Client.Timeout)
	assert.Equal(t, "5173", cfg.Proxy.Port)
	assert.Equal(t, "http://localhost:8080", cfg.Proxy.Target)
	assert.True(t, cfg.Proxy.ChangeOrigin)
	assert.Equal(t, 5*time.Minute, cfg.Proxy.APITimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("COURSEHUB_CLIENT_BASE_URL", "http://backend:9000/api")
	t.Setenv("COURSEHUB_CLIENT_TIMEOUT", "15s")
	t.Setenv("COURSEHUB_PROXY_CHANGE_ORIGIN", "false")
	t.Setenv("COURSEHUB_PROXY_API_TIMEOUT", "90s")
	t.Setenv("COURSEHUB_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://backend:9000/api", cfg.Client.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Client.Timeout)
	assert.False(t, cfg.Proxy.ChangeOrigin)
	assert.Equal(t, 90*time.Second, cfg.Proxy.APITimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coursehub.yaml")
	yaml := "proxy:\n  port: \"3000\"\n  target: http://file-backend:8080\nlogging:\n  format: console\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("COURSEHUB_PROXY_PORT", "4000")

	cfg, err := Load()
	require.NoError(t, err)

	// env wins over file, file wins over defaults
	assert.Equal(t, "4000", cfg.Proxy.Port)
	assert.Equal(t, "http://file-backend:8080", cfg.Proxy.Target)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "http://localhost:8080/api", cfg.Client.BaseURL)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("COURSEHUB_CLIENT_BASE_URL", "not a url")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BaseURL")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *AppConfig)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *AppConfig) {}},
		{name: "empty target", mutate: func(c *AppConfig) { c.Proxy.Target = "" }, wantErr: true},
		{name: "non numeric port", mutate: func(c *AppConfig) { c.Proxy.Port = "http" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *AppConfig) { c.Client.Timeout = -time.Second }, wantErr: true},
		{name: "unknown log level", mutate: func(c *AppConfig) { c.Logging.Level = "loud" }, wantErr: true},
		{name: "console format", mutate: func(c *AppConfig) { c.Logging.Format = "console" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "client.base_url", envKey("COURSEHUB_CLIENT_BASE_URL"))
	assert.Equal(t, "proxy.api_timeout", envKey("COURSEHUB_PROXY_API_TIMEOUT"))
	assert.Equal(t, "tracing.enabled", envKey("COURSEHUB_TRACING_ENABLED"))
	assert.Equal(t, "config", envKey("COURSEHUB_CONFIG"))
}
