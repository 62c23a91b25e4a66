package network_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"grimm.is/groctl/internal/config"
	"grimm.is/groctl/internal/network"
)

func TestTunerNilConfigIsNoop(t *testing.T) {
	sys := &network.DryRunSystemController{}
	tuner := network.NewTunerWithDeps(sys, nil, nil)

	assert.Empty(t, tuner.Params())
	assert.NoError(t, tuner.Apply())
	assert.Empty(t, sys.Writes)
}

func TestTunerUDPMemory(t *testing.T) {
	sys := &network.DryRunSystemController{}
	tuner := network.NewTunerWithDeps(sys, &config.TuningConfig{UDPMemory: true}, nil)

	params := tuner.Params()
	assert.Equal(t, "7500000", params["net.core.rmem_max"])
	assert.Equal(t, "7500000", params["net.core.wmem_max"])

	assert.NoError(t, tuner.Apply())
	assert.Len(t, sys.Writes, 2)
}

func TestTunerOverrides(t *testing.T) {
	cfg := &config.TuningConfig{
		UDPMemory: true,
		Sysctl: map[string]string{
			"net.core.rmem_max":           "16777216",
			"net.core.netdev_max_backlog": "5000",
		},
	}
	tuner := network.NewTunerWithDeps(&network.DryRunSystemController{}, cfg, nil)

	params := tuner.Params()
	// User override beats the built-in value
	assert.Equal(t, "16777216", params["net.core.rmem_max"])
	assert.Equal(t, "5000", params["net.core.netdev_max_backlog"])
}

func TestTunerApplyContinuesOnFailure(t *testing.T) {
	mockSys := new(network.MockSystemController)
	mockSys.On("WriteSysctl", "net.core.rmem_max", "7500000").Return(errors.New("permission denied"))
	mockSys.On("WriteSysctl", "net.core.wmem_max", "7500000").Return(nil)

	tuner := network.NewTunerWithDeps(mockSys, &config.TuningConfig{UDPMemory: true}, nil)

	// Sysctl failures are logged, not fatal
	assert.NoError(t, tuner.Apply())
	mockSys.AssertExpectations(t)
}
