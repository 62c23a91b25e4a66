// Package config provides HCL configuration handling for the tool.
//
// Configuration is entirely optional: with no config file present every
// default holds and the tool behaves like its zero-configuration ancestor.
package config

import (
	"fmt"
	"strings"
)

// Config is the root configuration structure.
type Config struct {
	// Device overrides default-route device detection when set.
	Device string `hcl:"device,optional"`

	Log    *LogConfig    `hcl:"log,block"`
	Tuning *TuningConfig `hcl:"tuning,block"`
}

// LogConfig controls logger behavior.
type LogConfig struct {
	Level string `hcl:"level,optional"` // debug|info|warn|error
	JSON  bool   `hcl:"json,optional"`
}

// TuningConfig controls optional sysctl tuning applied alongside the
// offload change.
type TuningConfig struct {
	// UDPMemory raises net.core.rmem_max / net.core.wmem_max so large UDP
	// socket buffers can actually be granted.
	UDPMemory bool `hcl:"udp_memory,optional"`

	// Sysctl holds extra key=value overrides applied after the built-ins.
	Sysctl map[string]string `hcl:"sysctl,optional"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	return &Config{
		Log: &LogConfig{Level: "info"},
	}
}

// Validate checks the configuration for semantic errors.
func (c *Config) Validate() error {
	if c.Log != nil && c.Log.Level != "" {
		switch strings.ToLower(c.Log.Level) {
		case "debug", "info", "warn", "warning", "error":
		default:
			return fmt.Errorf("invalid log level %q", c.Log.Level)
		}
	}
	if c.Tuning != nil {
		for key := range c.Tuning.Sysctl {
			if strings.ContainsAny(key, " \t/") {
				return fmt.Errorf("invalid sysctl key %q: use dotted notation", key)
			}
		}
	}
	return nil
}

// LogLevel returns the configured log level name, defaulting to info.
func (c *Config) LogLevel() string {
	if c.Log == nil || c.Log.Level == "" {
		return "info"
	}
	return c.Log.Level
}

// LogJSON reports whether JSON log output is requested.
func (c *Config) LogJSON() bool {
	return c.Log != nil && c.Log.JSON
}
