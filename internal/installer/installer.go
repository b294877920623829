// Package installer runs the external skill installer in the foreground.
package installer

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/asteroid-belt/skillsm/internal/config"
	"github.com/asteroid-belt/skillsm/internal/models"
)

// Installer builds install commands for catalog entries.
// The entry's repository URL and "--skill <id>" are appended to the
// configured arguments.
type Installer struct {
	command string
	args    []string
}

// New creates an installer from configuration.
func New(cfg config.InstallConfig) *Installer {
	return &Installer{
		command: cfg.Command,
		args:    append([]string(nil), cfg.Args...),
	}
}

// Args returns the full argument list for installing entry.
func (i *Installer) Args(entry models.CatalogEntry) []string {
	args := append([]string(nil), i.args...)
	return append(args, entry.RepoURL(), "--skill", entry.SkillID)
}

// Command returns an unstarted command that installs entry. Its standard
// streams are left unset so the caller can hand it the terminal.
func (i *Installer) Command(entry models.CatalogEntry) *exec.Cmd {
	return exec.Command(i.command, i.Args(entry)...)
}

// CommandLine returns the command as shown to the user.
func (i *Installer) CommandLine(entry models.CatalogEntry) string {
	return strings.Join(append([]string{i.command}, i.Args(entry)...), " ")
}

// Outcome describes the result of running an install command.
func Outcome(err error) string {
	if err == nil {
		return "Installation completed successfully"
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Sprintf("Installation failed with exit code: %d", exitErr.ExitCode())
	}
	return fmt.Sprintf("Failed to run install command: %v", err)
}
