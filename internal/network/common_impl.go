package network

import (
	"os"
	"strings"

	"github.com/vishvananda/netlink"
)

// RealNetlinker is a concrete implementation of Netlinker using the netlink
// package.
type RealNetlinker struct{}

// RouteList returns routes for the given address family.
func (r *RealNetlinker) RouteList(family int) ([]netlink.Route, error) {
	return netlink.RouteList(nil, family)
}

// LinkByIndex resolves a link by its interface index.
func (r *RealNetlinker) LinkByIndex(index int) (netlink.Link, error) {
	return netlink.LinkByIndex(index)
}

// RealSystemController is a concrete implementation of SystemController
// using os functions.
type RealSystemController struct{}

// ReadSysctl reads a sysctl value. Dotted notation is converted to a
// /proc/sys path.
func (r *RealSystemController) ReadSysctl(path string) (string, error) {
	data, err := os.ReadFile(sysctlPath(path))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteSysctl writes a sysctl value. Dotted notation is converted to a
// /proc/sys path.
func (r *RealSystemController) WriteSysctl(path, value string) error {
	return os.WriteFile(sysctlPath(path), []byte(value), 0644)
}

// IsNotExist checks if an error indicates a missing file or directory.
func (r *RealSystemController) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func sysctlPath(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/proc/sys/" + strings.ReplaceAll(path, ".", "/")
}
