// Package cmd implements the CLI subcommands.
package cmd

import (
	"grimm.is/groctl/internal/config"
	"grimm.is/groctl/internal/logging"
	"grimm.is/groctl/internal/network"
)

// setup loads configuration and installs the root logger.
func setup(configFile string, verbose bool) (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}

	level := logging.ParseLevel(cfg.LogLevel())
	if verbose {
		level = logging.LevelDebug
	}
	logger := logging.New(logging.Config{Level: level, JSON: cfg.LogJSON()})
	logging.SetDefault(logger)

	return cfg, logger, nil
}

// resolveDevice returns the configured device override, or resolves the
// default-route device.
func resolveDevice(cfg *config.Config, logger *logging.Logger) (string, error) {
	if cfg.Device != "" {
		logger.Debug("using configured device", "device", cfg.Device)
		return cfg.Device, nil
	}
	return network.NewResolver(logger).DefaultRouteDevice()
}
