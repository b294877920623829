package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/asteroid-belt/skillsm/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets variables that would leak into Load from the host.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GITHUB_TOKEN",
		"SKILLSM_INITIAL_VIEW",
		"SKILLSM_LOG_LEVEL",
		"SKILLSM_CATALOG_BASE_URL",
		"SKILLSM_GITHUB_TOKEN",
	} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://skills.sh", cfg.Catalog.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, "https://raw.githubusercontent.com", cfg.GitHub.RawBaseURL)
	assert.Equal(t, "npx", cfg.Install.Command)
	assert.Equal(t, []string{"skills", "add"}, cfg.Install.Args)
	assert.Equal(t, models.ViewAllTime, cfg.View())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFrom_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
initial_view = "hot"

[catalog]
base_url = "http://localhost:9999"
timeout = "5s"

[github]
rate_limit = 0

[log]
level = "debug"
`), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, models.ViewHot, cfg.View())
	assert.Equal(t, "http://localhost:9999", cfg.Catalog.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, 0, cfg.GitHub.RateLimit)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Unset keys keep their defaults.
	assert.Equal(t, "npx", cfg.Install.Command)
}

func TestLoadFrom_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SKILLSM_INITIAL_VIEW", "trending")
	t.Setenv("SKILLSM_LOG_LEVEL", "warn")
	t.Setenv("GITHUB_TOKEN", "ghp_test123")

	cfg, err := LoadFrom("")
	require.NoError(t, err)

	assert.Equal(t, models.ViewTrending, cfg.View())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "ghp_test123", cfg.GitHub.Token)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"bad view", func(c *Config) { c.InitialView = "weekly" }, "initial_view"},
		{"zero timeout", func(c *Config) { c.Catalog.Timeout = 0 }, "catalog.timeout"},
		{"negative rate", func(c *Config) { c.GitHub.RateLimit = -1 }, "github.rate_limit"},
		{"no installer", func(c *Config) { c.Install.Command = "" }, "install.command"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
