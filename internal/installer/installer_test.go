package installer

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/asteroid-belt/skillsm/internal/config"
	"github.com/asteroid-belt/skillsm/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var demo = models.CatalogEntry{SourceRepo: "acme/skills", SkillID: "pdf", DisplayName: "PDF"}

func TestInstaller_DefaultCommand(t *testing.T) {
	inst := New(config.DefaultConfig().Install)

	cmd := inst.Command(demo)
	assert.Equal(t, []string{"npx", "skills", "add", "https://github.com/acme/skills", "--skill", "pdf"}, cmd.Args)
	assert.Nil(t, cmd.Stdin)
	assert.Nil(t, cmd.Stdout)

	assert.Equal(t, demo.InstallCommand(), inst.CommandLine(demo))
}

func TestInstaller_CustomCommand(t *testing.T) {
	inst := New(config.InstallConfig{Command: "bunx", Args: []string{"skills@latest", "add", "-y"}})

	assert.Equal(t,
		"bunx skills@latest add -y https://github.com/acme/skills --skill pdf",
		inst.CommandLine(demo))
}

func TestInstaller_ArgsNotShared(t *testing.T) {
	inst := New(config.InstallConfig{Command: "npx", Args: []string{"skills", "add"}})

	first := inst.Args(demo)
	first[0] = "mutated"

	assert.Equal(t, "skills", inst.Args(demo)[0])
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "Installation completed successfully", Outcome(nil))
	assert.Equal(t, "Failed to run install command: boom", Outcome(errors.New("boom")))
}

func TestOutcome_ExitCode(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	runErr := exec.Command(sh, "-c", "exit 3").Run()
	require.Error(t, runErr)

	assert.Equal(t, "Installation failed with exit code: 3", Outcome(runErr))
}

func TestOutcome_MissingBinary(t *testing.T) {
	runErr := exec.Command("skillsm-no-such-installer").Run()
	require.Error(t, runErr)

	assert.Contains(t, Outcome(runErr), "Failed to run install command:")
}
