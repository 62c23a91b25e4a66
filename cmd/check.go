package cmd

import (
	"fmt"

	"grimm.is/groctl/internal/offload"
)

// RunCheck reports whether the default-route device is optimally configured
// for UDP GRO forwarding. It returns an error (exit 1) when the
// configuration is suboptimal or cannot be determined.
func RunCheck(configFile string, verbose bool) error {
	cfg, logger, err := setup(configFile, verbose)
	if err != nil {
		return err
	}

	device, err := resolveDevice(cfg, logger)
	if err != nil {
		return fmt.Errorf("couldn't determine the default route device: %w", err)
	}

	m, err := offload.NewManager(logger)
	if err != nil {
		return err
	}
	defer m.Close()

	status, err := m.Status(device)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("device: %s\n", device)
		fmt.Printf("%s: %s\n", offload.FeatureUDPGROForwarding, onOff(status.UDPGROForwarding))
		fmt.Printf("%s: %s\n", offload.FeatureGROList, onOff(status.GROList))
	}

	if !status.Supported {
		return fmt.Errorf("%s does not expose %s; a 5.10+ kernel is required", device, offload.FeatureUDPGROForwarding)
	}
	if !status.Optimal() {
		return fmt.Errorf("UDP GRO forwarding is suboptimally configured on %s: want %s on and %s off",
			device, offload.FeatureUDPGROForwarding, offload.FeatureGROList)
	}

	fmt.Printf("UDP GRO forwarding is optimally configured on %s\n", device)
	return nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
