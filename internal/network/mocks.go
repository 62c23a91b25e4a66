package network

import (
	"fmt"

	"github.com/stretchr/testify/mock"
	"github.com/vishvananda/netlink"
)

// MockSystemController is a testify mock for SystemController.
type MockSystemController struct {
	mock.Mock
}

func (m *MockSystemController) ReadSysctl(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

func (m *MockSystemController) WriteSysctl(path, value string) error {
	args := m.Called(path, value)
	return args.Error(0)
}

func (m *MockSystemController) IsNotExist(err error) bool {
	args := m.Called(err)
	return args.Bool(0)
}

// FakeNetlinker is a canned-response Netlinker for tests.
type FakeNetlinker struct {
	Routes4 []netlink.Route
	Routes6 []netlink.Route
	Links   map[int]string
	Err     error
}

func (f *FakeNetlinker) RouteList(family int) ([]netlink.Route, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if family == netlink.FAMILY_V6 {
		return f.Routes6, nil
	}
	return f.Routes4, nil
}

func (f *FakeNetlinker) LinkByIndex(index int) (netlink.Link, error) {
	name, ok := f.Links[index]
	if !ok {
		return nil, fmt.Errorf("link %d not found", index)
	}
	return &netlink.Device{LinkAttrs: netlink.LinkAttrs{Index: index, Name: name}}, nil
}
