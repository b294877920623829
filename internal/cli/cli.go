// Package cli provides the command-line interface for skillsm.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/asteroid-belt/skillsm/internal/config"
	"github.com/asteroid-belt/skillsm/internal/models"
	"github.com/asteroid-belt/skillsm/internal/telemetry"
	"github.com/asteroid-belt/skillsm/pkg/version"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var telemetryClient telemetry.Client

// options holds the root command flags.
type options struct {
	view       string
	configPath string
	logLevel   string
}

var rootOpts options

var rootCmd = &cobra.Command{
	Use:   "skillsm",
	Short: "Browse and install skills from the skills.sh catalog",
	Long: `Browse and install skills from the skills.sh catalog

Shows the All Time, Trending (24h) and Hot leaderboards, previews a
skill's SKILL.md, fuzzy-filters the list and runs the installer for the
selected skill.

Configuration is read from $XDG_CONFIG_HOME/skillsm/config.toml and
SKILLSM_* environment variables. Set GITHUB_TOKEN for higher GitHub API
rate limits.

Telemetry:
  Telemetry is enabled by default, always anonymous, and will never track
  personal information, custom/local data, or IP addresses.

  Opt-out with:
  	SKILLSM_TELEMETRY_TRACKING_ENABLED=false`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	names := make([]string, 0, len(models.AllViews()))
	for _, v := range models.AllViews() {
		names = append(names, v.Slug())
	}

	flags := rootCmd.Flags()
	flags.StringVar(&rootOpts.view, "view", "", fmt.Sprintf("initial view (%s)", strings.Join(names, ", ")))
	flags.StringVar(&rootOpts.configPath, "config", "", "path to a config file (default "+config.DefaultConfigFile()+")")
	flags.StringVar(&rootOpts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context, tc telemetry.Client) error {
	if tc == nil {
		tc = telemetry.New()
	}
	telemetryClient = tc

	return fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)
}

// loadConfig reads the config file then applies flag overrides.
func loadConfig(opts options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFrom(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if opts.view != "" {
		cfg.InitialView = opts.view
	}
	if opts.logLevel != "" {
		cfg.Log.Level = strings.ToLower(opts.logLevel)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}
