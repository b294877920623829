// skillsm - a terminal browser for the skills.sh catalog
//
// Lists the ranked leaderboards, previews each skill's SKILL.md straight
// from GitHub and hands the terminal to the installer for the chosen skill.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/asteroid-belt/skillsm/internal/cli"
	"github.com/asteroid-belt/skillsm/internal/telemetry"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	telemetryClient := telemetry.New()
	defer telemetryClient.Close()

	if err := cli.Execute(ctx, telemetryClient); err != nil {
		telemetryClient.Close()
		os.Exit(1)
	}
}
