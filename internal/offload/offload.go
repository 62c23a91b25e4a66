// Package offload manages the NIC offload features that determine UDP
// forwarding throughput.
//
// Two features matter on the default-route device of a router:
//
//   - rx-udp-gro-forwarding must be on, so the NIC aggregates received UDP
//     packets into GRO batches that survive forwarding.
//   - rx-gro-list must be off, because GRO list segmentation defeats the
//     aggregation rx-udp-gro-forwarding provides.
//
// Hardware access goes through the Ethtooler interface; the real
// implementation wraps the ethtool netlink/ioctl interface on Linux.
package offload

// Feature names as exposed by the kernel's feature strings.
const (
	FeatureUDPGROForwarding = "rx-udp-gro-forwarding"
	FeatureGROList          = "rx-gro-list"
)

// Ethtooler abstracts the per-device ethtool operations the manager needs.
type Ethtooler interface {
	// Features returns the state of all named features of a device.
	Features(device string) (map[string]bool, error)

	// Change sets the given features in a single operation.
	Change(device string, features map[string]bool) error

	// DriverInfo returns driver metadata for a device.
	DriverInfo(device string) (DriverInfo, error)

	// LinkInfo returns link speed, duplex, and autonegotiation state.
	LinkInfo(device string) (LinkInfo, error)

	// Close releases the underlying handle.
	Close()
}

// DriverInfo contains driver metadata.
type DriverInfo struct {
	Driver   string `json:"driver"`
	Version  string `json:"version"`
	Firmware string `json:"firmware,omitempty"`
	BusInfo  string `json:"bus_info,omitempty"`
}

// LinkInfo contains link speed and settings.
type LinkInfo struct {
	Speed   uint32 `json:"speed_mbps"` // Mb/s
	Duplex  string `json:"duplex"`     // "full", "half", "unknown"
	Autoneg bool   `json:"autoneg"`
}

// Status describes a device's UDP GRO forwarding configuration.
type Status struct {
	Device           string `json:"device"`
	UDPGROForwarding bool   `json:"rx_udp_gro_forwarding"`
	GROList          bool   `json:"rx_gro_list"`

	// Supported is false when the kernel or driver does not expose
	// rx-udp-gro-forwarding at all (pre-5.10 kernels).
	Supported bool `json:"supported"`
}

// Optimal reports whether the device is configured for maximum UDP
// forwarding throughput.
func (s *Status) Optimal() bool {
	return s.Supported && s.UDPGROForwarding && !s.GROList
}

// Plan returns the desired feature states applied by Apply.
func Plan() map[string]bool {
	return map[string]bool{
		FeatureUDPGROForwarding: true,
		FeatureGROList:          false,
	}
}

// RevertPlan returns the kernel-default feature states applied by Revert.
func RevertPlan() map[string]bool {
	return map[string]bool{
		FeatureUDPGROForwarding: false,
		FeatureGROList:          false,
	}
}
