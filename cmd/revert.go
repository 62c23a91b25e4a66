package cmd

import (
	"fmt"

	"grimm.is/groctl/internal/offload"
)

// RunRevert returns the default-route device's managed offload features to
// their kernel defaults (both off).
func RunRevert(configFile string, verbose bool) error {
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

	if err := m.Revert(device); err != nil {
		return err
	}

	fmt.Printf("offload features reverted on %s\n", device)
	return nil
}
