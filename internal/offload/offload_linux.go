//go:build linux
// +build linux

package offload

import (
	"github.com/safchain/ethtool"
)

// realEthtool implements Ethtooler on top of the kernel's ethtool interface.
type realEthtool struct {
	handle *ethtool.Ethtool
}

func newEthtooler() (Ethtooler, error) {
	h, err := ethtool.NewEthtool()
	if err != nil {
		return nil, err
	}
	return &realEthtool{handle: h}, nil
}

func (e *realEthtool) Features(device string) (map[string]bool, error) {
	return e.handle.Features(device)
}

func (e *realEthtool) Change(device string, features map[string]bool) error {
	return e.handle.Change(device, features)
}

func (e *realEthtool) DriverInfo(device string) (DriverInfo, error) {
	info, err := e.handle.DriverInfo(device)
	if err != nil {
		return DriverInfo{}, err
	}
	return DriverInfo{
		Driver:   info.Driver,
		Version:  info.Version,
		Firmware: info.FwVersion,
		BusInfo:  info.BusInfo,
	}, nil
}

func (e *realEthtool) LinkInfo(device string) (LinkInfo, error) {
	settings, err := e.handle.GetLinkSettings(device)
	if err != nil {
		return LinkInfo{}, err
	}

	duplex := "unknown"
	switch settings.Duplex {
	case ethtool.DUPLEX_FULL:
		duplex = "full"
	case ethtool.DUPLEX_HALF:
		duplex = "half"
	}

	return LinkInfo{
		Speed:   settings.Speed,
		Duplex:  duplex,
		Autoneg: settings.Autoneg != 0,
	}, nil
}

func (e *realEthtool) Close() {
	e.handle.Close()
}
