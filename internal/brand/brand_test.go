package brand

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConstants(t *testing.T) {
	if Name == "" {
		t.Error("Brand name should not be empty")
	}
	if BinaryName == "" {
		t.Error("Binary name should not be empty")
	}
	// Version is a global variable overridden at build time
	if Version == "" {
		t.Error("Version should be initialized (to dev default)")
	}
}

func TestGetConfigDir(t *testing.T) {
	cleanEnv := func() {
		os.Unsetenv(ConfigEnvPrefix + "_PREFIX")
		os.Unsetenv(ConfigEnvPrefix + "_CONFIG_DIR")
	}
	cleanEnv()
	defer cleanEnv()

	// Defaults
	if GetConfigDir() != DefaultConfigDir {
		t.Errorf("Expected default config dir %s, got %s", DefaultConfigDir, GetConfigDir())
	}

	// Prefix
	os.Setenv(ConfigEnvPrefix+"_PREFIX", "/tmp/groctl")
	if GetConfigDir() != "/tmp/groctl/config" {
		t.Errorf("Expected prefix config dir, got %s", GetConfigDir())
	}

	// Direct override (highest priority)
	os.Setenv(ConfigEnvPrefix+"_CONFIG_DIR", "/custom/config")
	if GetConfigDir() != "/custom/config" {
		t.Errorf("Expected custom config dir, got %s", GetConfigDir())
	}
}

func TestDefaultConfigPath(t *testing.T) {
	os.Unsetenv(ConfigEnvPrefix + "_PREFIX")
	os.Unsetenv(ConfigEnvPrefix + "_CONFIG_DIR")

	want := filepath.Join(DefaultConfigDir, ConfigFileName)
	if DefaultConfigPath() != want {
		t.Errorf("Expected %s, got %s", want, DefaultConfigPath())
	}
}
