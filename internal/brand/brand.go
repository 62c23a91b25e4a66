// Package brand provides centralized naming constants for the tool.
// Keeping them in one place makes renaming or white-labeling a one-file change.
package brand

import (
	"os"
	"path/filepath"
)

const (
	Name        = "Groctl"
	LowerName   = "groctl"
	Vendor      = "grimm.is"
	Description = "UDP GRO forwarding tuner for Linux routers"

	BinaryName      = "groctl"
	ConfigEnvPrefix = "GROCTL"

	DefaultConfigDir = "/etc/groctl"
	ConfigFileName   = "groctl.hcl"
)

// Set at build time via -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// GetConfigDir returns the configuration directory, checking env vars first.
// Priority: GROCTL_CONFIG_DIR > GROCTL_PREFIX/config > DefaultConfigDir
func GetConfigDir() string {
	if dir := os.Getenv(ConfigEnvPrefix + "_CONFIG_DIR"); dir != "" {
		return dir
	}
	if prefix := os.Getenv(ConfigEnvPrefix + "_PREFIX"); prefix != "" {
		return filepath.Join(prefix, "config")
	}
	return DefaultConfigDir
}

// DefaultConfigPath returns the full path to the default config file.
func DefaultConfigPath() string {
	return filepath.Join(GetConfigDir(), ConfigFileName)
}
