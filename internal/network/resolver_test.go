package network

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"
)

func cidr(t *testing.T, s string) *net.IPNet {
	t.Helper()
	_, ipnet, err := net.ParseCIDR(s)
	require.NoError(t, err)
	return ipnet
}

func TestDefaultRouteDevice(t *testing.T) {
	nl := &FakeNetlinker{
		Routes4: []netlink.Route{
			{Dst: cidr(t, "10.0.0.0/8"), LinkIndex: 3},
			{Dst: nil, LinkIndex: 2, Priority: 100},
		},
		Links: map[int]string{2: "enp1s0", 3: "wg0"},
	}

	r := NewResolverWithDeps(nl, nil)
	name, err := r.DefaultRouteDevice()
	require.NoError(t, err)
	assert.Equal(t, "enp1s0", name)
	assert.NotEmpty(t, name)
}

func TestDefaultRouteDeviceLowestPriorityWins(t *testing.T) {
	nl := &FakeNetlinker{
		Routes4: []netlink.Route{
			{Dst: nil, LinkIndex: 2, Priority: 600},
			{Dst: nil, LinkIndex: 4, Priority: 100},
		},
		Links: map[int]string{2: "wwan0", 4: "enp1s0"},
	}

	r := NewResolverWithDeps(nl, nil)
	name, err := r.DefaultRouteDevice()
	require.NoError(t, err)
	assert.Equal(t, "enp1s0", name)
}

func TestDefaultRouteDeviceZeroPrefix(t *testing.T) {
	// Some route dumps carry 0.0.0.0/0 explicitly instead of a nil Dst.
	nl := &FakeNetlinker{
		Routes4: []netlink.Route{
			{Dst: cidr(t, "0.0.0.0/0"), LinkIndex: 2},
		},
		Links: map[int]string{2: "eth0"},
	}

	r := NewResolverWithDeps(nl, nil)
	name, err := r.DefaultRouteDevice()
	require.NoError(t, err)
	assert.Equal(t, "eth0", name)
}

func TestDefaultRouteDeviceV6Fallback(t *testing.T) {
	nl := &FakeNetlinker{
		Routes4: []netlink.Route{
			{Dst: cidr(t, "192.168.1.0/24"), LinkIndex: 2},
		},
		Routes6: []netlink.Route{
			{Dst: cidr(t, "::/0"), LinkIndex: 5},
		},
		Links: map[int]string{2: "lan0", 5: "he-ipv6"},
	}

	r := NewResolverWithDeps(nl, nil)
	name, err := r.DefaultRouteDevice()
	require.NoError(t, err)
	assert.Equal(t, "he-ipv6", name)
}

func TestDefaultRouteDeviceMultipath(t *testing.T) {
	nl := &FakeNetlinker{
		Routes4: []netlink.Route{
			{
				Dst: nil,
				MultiPath: []*netlink.NexthopInfo{
					{LinkIndex: 7},
					{LinkIndex: 8},
				},
			},
		},
		Links: map[int]string{7: "wan0", 8: "wan1"},
	}

	r := NewResolverWithDeps(nl, nil)
	name, err := r.DefaultRouteDevice()
	require.NoError(t, err)
	assert.Equal(t, "wan0", name)
}

func TestDefaultRouteDeviceNone(t *testing.T) {
	nl := &FakeNetlinker{
		Routes4: []netlink.Route{
			{Dst: cidr(t, "10.0.0.0/8"), LinkIndex: 3},
		},
		Links: map[int]string{3: "wg0"},
	}

	r := NewResolverWithDeps(nl, nil)
	_, err := r.DefaultRouteDevice()
	assert.Error(t, err)
}

func TestDefaultRouteDeviceUnknownLink(t *testing.T) {
	nl := &FakeNetlinker{
		Routes4: []netlink.Route{
			{Dst: nil, LinkIndex: 99},
		},
		Links: map[int]string{},
	}

	r := NewResolverWithDeps(nl, nil)
	_, err := r.DefaultRouteDevice()
	assert.Error(t, err)
}

func TestIsDefaultRoute(t *testing.T) {
	assert.True(t, isDefaultRoute(&netlink.Route{}))
	assert.True(t, isDefaultRoute(&netlink.Route{Dst: cidr(t, "0.0.0.0/0")}))
	assert.True(t, isDefaultRoute(&netlink.Route{Dst: cidr(t, "::/0")}))
	assert.False(t, isDefaultRoute(&netlink.Route{Dst: cidr(t, "10.0.0.0/8")}))
}
