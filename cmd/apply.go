package cmd

import (
	"fmt"

	"grimm.is/groctl/internal/config"
	"grimm.is/groctl/internal/logging"
	"grimm.is/groctl/internal/network"
	"grimm.is/groctl/internal/offload"
)

// The apply verdict is a two-word contract: exactly one of these strings
// on stdout, exit code 0 either way. Diagnostics go to the logger.
const (
	verdictSuccess = "success!"
	verdictFailure = "failure!"
)

func verdict(err error) string {
	if err != nil {
		return verdictFailure
	}
	return verdictSuccess
}

// RunApply resolves the default-route device and enables UDP GRO forwarding
// on it: rx-udp-gro-forwarding on, rx-gro-list off, in one feature change.
func RunApply(configFile string, dryRun, verbose bool) error {
	cfg, logger, err := setup(configFile, verbose)
	if err != nil {
		return err
	}

	fmt.Println(verdict(apply(cfg, logger, dryRun)))
	return nil
}

func apply(cfg *config.Config, logger *logging.Logger, dryRun bool) error {
	device, err := resolveDevice(cfg, logger)
	if err != nil {
		logger.Debug("device resolution failed", "error", err)
		return err
	}

	if dryRun {
		for _, line := range planLines(device, cfg.Tuning) {
			fmt.Println(line)
		}
		return nil
	}

	m, err := offload.NewManager(logger)
	if err != nil {
		logger.Debug("ethtool unavailable", "error", err)
		return err
	}
	defer m.Close()

	if err := m.Apply(device); err != nil {
		logger.Debug("offload change failed", "error", err)
		return err
	}

	// Optional sysctl tuning rides along; its failures are logged by the
	// tuner and never affect the verdict.
	if cfg.Tuning != nil {
		network.NewTuner(cfg.Tuning, logger).Apply()
	}

	return nil
}

// planLines renders the operations apply would perform, in ethtool/sysctl
// command notation.
func planLines(device string, tuning *config.TuningConfig) []string {
	lines := []string{
		fmt.Sprintf("ethtool -K %s %s on %s off",
			device, offload.FeatureUDPGROForwarding, offload.FeatureGROList),
	}

	if tuning != nil {
		sys := &network.DryRunSystemController{}
		network.NewTunerWithDeps(sys, tuning, logging.Default()).Apply()
		lines = append(lines, sys.Writes...)
	}

	return lines
}
