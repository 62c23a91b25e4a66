package offload

import (
	"fmt"

	"grimm.is/groctl/internal/logging"
)

// Manager applies and inspects the UDP GRO forwarding configuration of a
// device.
type Manager struct {
	handle Ethtooler
	logger *logging.Logger
}

// NewManager creates a manager backed by the system's ethtool interface.
func NewManager(logger *logging.Logger) (*Manager, error) {
	h, err := newEthtooler()
	if err != nil {
		return nil, fmt.Errorf("failed to open ethtool handle: %w", err)
	}
	return NewManagerWithDeps(h, logger), nil
}

// NewManagerWithDeps creates a manager with an explicit Ethtooler.
func NewManagerWithDeps(h Ethtooler, logger *logging.Logger) *Manager {
	if logger == nil {
		logger = logging.Default()
	}
	return &Manager{
		handle: h,
		logger: logger.WithComponent("offload"),
	}
}

// Close releases the ethtool handle.
func (m *Manager) Close() {
	m.handle.Close()
}

// Apply enables rx-udp-gro-forwarding and disables rx-gro-list on the
// device in a single feature change.
func (m *Manager) Apply(device string) error {
	if device == "" {
		return fmt.Errorf("no device to configure")
	}
	if err := m.handle.Change(device, Plan()); err != nil {
		return fmt.Errorf("failed to change offload features on %s: %w", device, err)
	}
	m.logger.Info("UDP GRO forwarding enabled", "device", device)
	return nil
}

// Revert returns both features to their kernel defaults.
func (m *Manager) Revert(device string) error {
	if device == "" {
		return fmt.Errorf("no device to configure")
	}
	if err := m.handle.Change(device, RevertPlan()); err != nil {
		return fmt.Errorf("failed to revert offload features on %s: %w", device, err)
	}
	m.logger.Info("UDP GRO forwarding reverted", "device", device)
	return nil
}

// Status reads the device's current feature states.
func (m *Manager) Status(device string) (*Status, error) {
	features, err := m.handle.Features(device)
	if err != nil {
		return nil, fmt.Errorf("failed to read features of %s: %w", device, err)
	}
	return statusFromFeatures(device, features), nil
}

func statusFromFeatures(device string, features map[string]bool) *Status {
	forwarding, supported := features[FeatureUDPGROForwarding]
	return &Status{
		Device:           device,
		UDPGROForwarding: forwarding,
		GROList:          features[FeatureGROList],
		Supported:        supported,
	}
}

// Report describes a device for display purposes.
type Report struct {
	Device   string          `json:"device"`
	Driver   DriverInfo      `json:"driver_info"`
	Link     *LinkInfo       `json:"link,omitempty"`
	Features map[string]bool `json:"features"`
	Status   Status          `json:"status"`
}

// reportFeatures is the subset of feature names worth showing: the two
// managed ones plus their segmentation-offload neighbors.
var reportFeatures = []string{
	FeatureUDPGROForwarding,
	FeatureGROList,
	"generic-receive-offload",
	"generic-segmentation-offload",
	"tx-udp-segmentation",
}

// Report collects driver info, link settings, and offload feature states
// for a device.
func (m *Manager) Report(device string) (*Report, error) {
	features, err := m.handle.Features(device)
	if err != nil {
		return nil, fmt.Errorf("failed to read features of %s: %w", device, err)
	}

	report := &Report{
		Device:   device,
		Features: make(map[string]bool),
		Status:   *statusFromFeatures(device, features),
	}

	for _, name := range reportFeatures {
		if state, ok := features[name]; ok {
			report.Features[name] = state
		}
	}

	// Driver and link info are best-effort; virtual NICs often support
	// neither.
	if info, err := m.handle.DriverInfo(device); err == nil {
		report.Driver = info
	} else {
		m.logger.Debug("driver info unavailable", "device", device, "error", err)
	}
	if link, err := m.handle.LinkInfo(device); err == nil {
		report.Link = &link
	} else {
		m.logger.Debug("link info unavailable", "device", device, "error", err)
	}

	return report, nil
}
