package network

import (
	"fmt"
	"net"

	"github.com/jackpal/gateway"
	"github.com/vishvananda/netlink"

	"grimm.is/groctl/internal/logging"
)

// Resolver finds the network device carrying the default route, the one
// the kernel would use to reach an arbitrary external address.
type Resolver struct {
	nl     Netlinker
	logger *logging.Logger
}

// NewResolver creates a resolver using the real routing table.
func NewResolver(logger *logging.Logger) *Resolver {
	return NewResolverWithDeps(DefaultNetlinker, logger)
}

// NewResolverWithDeps creates a resolver with an explicit Netlinker.
func NewResolverWithDeps(nl Netlinker, logger *logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.Default()
	}
	return &Resolver{
		nl:     nl,
		logger: logger.WithComponent("resolver"),
	}
}

// DefaultRouteDevice returns the name of the default-route device.
// IPv4 routes are preferred; IPv6 is consulted when no IPv4 default route
// exists. When the routing table cannot be read over netlink (non-Linux
// hosts, sandboxes), gateway discovery is used as a fallback.
func (r *Resolver) DefaultRouteDevice() (string, error) {
	failures := 0
	for _, family := range []int{netlink.FAMILY_V4, netlink.FAMILY_V6} {
		name, err := r.deviceForFamily(family)
		if err != nil {
			r.logger.Debug("route lookup failed", "family", family, "error", err)
			failures++
			continue
		}
		if name != "" {
			return name, nil
		}
	}

	// The routing table itself was unreadable: fall back to gateway
	// discovery rather than concluding there is no default route.
	if failures == 2 {
		if name, err := r.deviceByGateway(); err == nil && name != "" {
			return name, nil
		}
	}

	return "", fmt.Errorf("no default route found")
}

// deviceForFamily picks the lowest-priority default route of one family
// and resolves its link name.
func (r *Resolver) deviceForFamily(family int) (string, error) {
	routes, err := r.nl.RouteList(family)
	if err != nil {
		return "", fmt.Errorf("failed to list routes: %w", err)
	}

	best := -1
	for i, route := range routes {
		if !isDefaultRoute(&routes[i]) {
			continue
		}
		if best == -1 || route.Priority < routes[best].Priority {
			best = i
		}
	}
	if best == -1 {
		return "", nil
	}

	index := routes[best].LinkIndex
	if index == 0 && len(routes[best].MultiPath) > 0 {
		// ECMP default route: any member reaches the gateway
		index = routes[best].MultiPath[0].LinkIndex
	}
	if index == 0 {
		return "", fmt.Errorf("default route has no link index")
	}

	link, err := r.nl.LinkByIndex(index)
	if err != nil {
		return "", fmt.Errorf("failed to resolve link %d: %w", index, err)
	}

	name := link.Attrs().Name
	r.logger.Debug("default route resolved", "device", name, "family", family)
	return name, nil
}

// isDefaultRoute reports whether a route matches all destinations.
// Default routes have a nil Dst or a zero-length prefix.
func isDefaultRoute(route *netlink.Route) bool {
	if route.Dst == nil {
		return true
	}
	ones, _ := route.Dst.Mask.Size()
	return ones == 0 && route.Dst.IP.IsUnspecified()
}

// deviceByGateway discovers the default gateway address and maps it to the
// interface whose subnet contains it.
func (r *Resolver) deviceByGateway() (string, error) {
	gw, err := gateway.DiscoverGateway()
	if err != nil {
		return "", fmt.Errorf("discover gateway: %w", err)
	}

	ifaces, err := net.Interfaces()
	if err != nil {
		return "", fmt.Errorf("list interfaces: %w", err)
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if ipnet.Contains(gw) {
				r.logger.Debug("default route resolved via gateway", "device", iface.Name, "gateway", gw)
				return iface.Name, nil
			}
		}
	}

	return "", fmt.Errorf("no interface has a subnet containing gateway %s", gw)
}
