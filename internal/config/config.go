// Package config handles application configuration management.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/asteroid-belt/skillsm/internal/models"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every configuration environment variable.
const EnvPrefix = "SKILLSM"

// Config holds all application configuration.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	GitHub  GitHubConfig  `mapstructure:"github"`
	Install InstallConfig `mapstructure:"install"`
	Log     LogConfig     `mapstructure:"log"`

	// InitialView is the view shown at startup ("all-time", "trending", "hot").
	InitialView string `mapstructure:"initial_view"`
}

// CatalogConfig describes where ranking pages come from.
type CatalogConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"` // per request
}

// GitHubConfig holds GitHub settings used to resolve skill documents.
type GitHubConfig struct {
	Token      string `mapstructure:"token"`
	APIBaseURL string `mapstructure:"api_base_url"`
	RawBaseURL string `mapstructure:"raw_base_url"`
	RateLimit  int    `mapstructure:"rate_limit"` // requests per minute, 0 disables pacing
}

// InstallConfig is the external installer invoked for a skill. The skill's
// repository URL and "--skill <id>" are appended to Args.
type InstallConfig struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Dir   string `mapstructure:"dir"`
	Level string `mapstructure:"level"`
}

// Load reads configuration from the default config file (if present) and
// environment variables.
func Load() (*Config, error) {
	return load(DefaultConfigFile(), false)
}

// LoadFrom reads configuration from an explicit file, which must exist.
func LoadFrom(path string) (*Config, error) {
	return load(path, true)
}

func load(path string, required bool) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if required {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" && cfg.GitHub.Token == "" {
		cfg.GitHub.Token = token
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("catalog.base_url", d.Catalog.BaseURL)
	v.SetDefault("catalog.timeout", d.Catalog.Timeout)
	v.SetDefault("github.token", d.GitHub.Token)
	v.SetDefault("github.api_base_url", d.GitHub.APIBaseURL)
	v.SetDefault("github.raw_base_url", d.GitHub.RawBaseURL)
	v.SetDefault("github.rate_limit", d.GitHub.RateLimit)
	v.SetDefault("install.command", d.Install.Command)
	v.SetDefault("install.args", d.Install.Args)
	v.SetDefault("log.dir", d.Log.Dir)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("initial_view", d.InitialView)
}

// Validate rejects configurations the application cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if _, err := models.ParseViewKind(c.InitialView); err != nil {
		errs = append(errs, fmt.Errorf("initial_view: %w", err))
	}
	if c.Catalog.BaseURL == "" {
		errs = append(errs, errors.New("catalog.base_url must not be empty"))
	}
	if c.Catalog.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("catalog.timeout must be positive, got %s", c.Catalog.Timeout))
	}
	if c.GitHub.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("github.rate_limit must not be negative, got %d", c.GitHub.RateLimit))
	}
	if c.Install.Command == "" {
		errs = append(errs, errors.New("install.command must not be empty"))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}

	return errors.Join(errs...)
}

// View returns the parsed initial view.
func (c *Config) View() models.ViewKind {
	v, _ := models.ParseViewKind(c.InitialView)
	return v
}
