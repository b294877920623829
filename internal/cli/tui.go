package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/asteroid-belt/skillsm/internal/config"
	"github.com/asteroid-belt/skillsm/internal/installer"
	"github.com/asteroid-belt/skillsm/internal/log"
	"github.com/asteroid-belt/skillsm/internal/scraper"
	"github.com/asteroid-belt/skillsm/internal/tui"
	"github.com/asteroid-belt/skillsm/internal/tui/views"
	"github.com/asteroid-belt/skillsm/pkg/version"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var errNoTerminal = errors.New("skillsm needs an interactive terminal")

// runTUI executes the TUI when no subcommand is specified.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(rootOpts)
	if err != nil {
		return err
	}

	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errNoTerminal
	}

	if err := log.Init(cfg.Log.Dir, cfg.Log.Level); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = log.Close()
	}()

	log.Info("starting", "version", version.Short(), "view", cfg.View().Slug(), "catalog", cfg.Catalog.BaseURL)
	if cfg.GitHub.Token == "" {
		log.Info("GitHub token not set, listing calls are unauthenticated")
	}

	deps, err := buildDeps(cfg)
	if err != nil {
		return err
	}

	return tui.Run(cmd.Context(), cfg.View(), deps)
}

// buildDeps wires the network clients and installer from configuration.
func buildDeps(cfg *config.Config) (tui.Deps, error) {
	fetcher := scraper.NewHTTPFetcher(cfg.Catalog.Timeout, version.UserAgent())

	gh := scraper.NewGitHubClient(cfg.GitHub.Token, cfg.GitHub.RateLimit, cfg.Catalog.Timeout)
	if err := gh.SetBaseURL(cfg.GitHub.APIBaseURL); err != nil {
		return tui.Deps{}, fmt.Errorf("github api url: %w", err)
	}

	return tui.Deps{
		Catalog:       scraper.NewCatalogClient(fetcher, cfg.Catalog.BaseURL),
		Resolver:      scraper.NewResolver(fetcher, gh, cfg.GitHub.RawBaseURL),
		Installer:     installer.New(cfg.Install),
		Telemetry:     telemetryClient,
		MarkdownStyle: views.MarkdownStyle(),
	}, nil
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
