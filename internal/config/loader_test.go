package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingDefaultIsNotError(t *testing.T) {
	t.Setenv("GROCTL_CONFIG_DIR", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Device)
	assert.Equal(t, "info", cfg.LogLevel())
	assert.False(t, cfg.LogJSON())
}

func TestLoadMissingExplicitIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	src := `
device = "enp1s0"

log {
  level = "debug"
  json  = true
}

tuning {
  udp_memory = true
  sysctl = {
    "net.core.netdev_max_backlog" = "5000"
  }
}
`
	cfg, err := Decode("groctl.hcl", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, "enp1s0", cfg.Device)
	assert.Equal(t, "debug", cfg.LogLevel())
	assert.True(t, cfg.LogJSON())
	require.NotNil(t, cfg.Tuning)
	assert.True(t, cfg.Tuning.UDPMemory)
	assert.Equal(t, "5000", cfg.Tuning.Sysctl["net.core.netdev_max_backlog"])
}

func TestDecodeEnvInterpolation(t *testing.T) {
	t.Setenv("GROCTL_TEST_DEVICE", "wan0")

	cfg, err := Decode("groctl.hcl", []byte(`device = env.GROCTL_TEST_DEVICE`))
	require.NoError(t, err)
	assert.Equal(t, "wan0", cfg.Device)
}

func TestDecodeInvalidLevel(t *testing.T) {
	_, err := Decode("groctl.hcl", []byte(`
log {
  level = "loud"
}
`))
	assert.Error(t, err)
}

func TestDecodeInvalidSysctlKey(t *testing.T) {
	_, err := Decode("groctl.hcl", []byte(`
tuning {
  sysctl = {
    "net/core/rmem_max" = "1"
  }
}
`))
	assert.Error(t, err)
}

func TestDecodeSyntaxError(t *testing.T) {
	_, err := Decode("groctl.hcl", []byte(`device = `))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "groctl.hcl")
	err := os.WriteFile(path, []byte(`device = "eth0"`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "eth0", cfg.Device)
}
