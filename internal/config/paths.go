package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the per-user config and state directories.
const AppName = "skillsm"

// DefaultConfigFile returns $XDG_CONFIG_HOME/skillsm/config.toml.
func DefaultConfigFile() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// DefaultLogDir returns $XDG_STATE_HOME/skillsm.
func DefaultLogDir() string {
	return filepath.Join(xdg.StateHome, AppName)
}
