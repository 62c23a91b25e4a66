//go:build !linux
// +build !linux

package offload

import (
	"errors"
)

func newEthtooler() (Ethtooler, error) {
	return nil, errors.New("NIC offload configuration is only supported on linux")
}
