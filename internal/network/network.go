// Package network provides default-route device resolution and the small
// amount of sysctl plumbing the tool needs.
//
// System access goes through narrow interfaces (Netlinker, SystemController)
// with real, dry-run, and mock implementations so everything above them is
// testable without touching the host.
package network

import (
	"github.com/vishvananda/netlink"
)

// Netlinker abstracts the routing-table operations used by the resolver.
type Netlinker interface {
	// RouteList returns routes for the given address family
	// (netlink.FAMILY_V4 or netlink.FAMILY_V6).
	RouteList(family int) ([]netlink.Route, error)

	// LinkByIndex resolves a link by its interface index.
	LinkByIndex(index int) (netlink.Link, error)
}

// SystemController abstracts sysctl access.
type SystemController interface {
	ReadSysctl(path string) (string, error)
	WriteSysctl(path, value string) error
	IsNotExist(err error) bool
}

// DefaultNetlinker is the default RealNetlinker instance.
var DefaultNetlinker Netlinker = &RealNetlinker{}

// DefaultSystemController is the default RealSystemController instance.
var DefaultSystemController SystemController = &RealSystemController{}
