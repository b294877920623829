package config

import "time"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL: "https://skills.sh",
			Timeout: 30 * time.Second,
		},

		GitHub: GitHubConfig{
			APIBaseURL: "https://api.github.com/",
			RawBaseURL: "https://raw.githubusercontent.com",
			RateLimit:  60,
		},

		Install: InstallConfig{
			Command: "npx",
			Args:    []string{"skills", "add"},
		},

		Log: LogConfig{
			Dir:   DefaultLogDir(),
			Level: "info",
		},

		InitialView: "all-time",
	}
}
