package network

import (
	"fmt"

	"grimm.is/groctl/internal/config"
	"grimm.is/groctl/internal/logging"
)

// udpMemMax is the net.core.{r,w}mem_max value applied by the udp_memory
// tuning option. Large UDP socket buffers cannot be granted unless the
// kernel-wide maximum is raised first.
const udpMemMax = "7500000"

// Tuner applies optional sysctl tuning alongside the offload change.
type Tuner struct {
	sys    SystemController
	cfg    *config.TuningConfig
	logger *logging.Logger
}

// NewTuner creates a tuner for the given tuning config. A nil config yields
// a tuner whose Apply is a no-op.
func NewTuner(cfg *config.TuningConfig, logger *logging.Logger) *Tuner {
	return NewTunerWithDeps(DefaultSystemController, cfg, logger)
}

// NewTunerWithDeps creates a tuner with an explicit SystemController.
func NewTunerWithDeps(sys SystemController, cfg *config.TuningConfig, logger *logging.Logger) *Tuner {
	if logger == nil {
		logger = logging.Default()
	}
	return &Tuner{
		sys:    sys,
		cfg:    cfg,
		logger: logger.WithComponent("tuning"),
	}
}

// Params returns the sysctl parameters the tuner would apply, in the order
// built-ins first, user overrides last.
func (t *Tuner) Params() map[string]string {
	params := make(map[string]string)
	if t.cfg == nil {
		return params
	}
	if t.cfg.UDPMemory {
		params["net.core.rmem_max"] = udpMemMax
		params["net.core.wmem_max"] = udpMemMax
	}
	for key, value := range t.cfg.Sysctl {
		params[key] = value
	}
	return params
}

// Apply writes the tuning parameters. Individual failures are logged and
// skipped; some sysctls do not exist on all kernels.
func (t *Tuner) Apply() error {
	params := t.Params()
	if len(params) == 0 {
		return nil
	}

	applied := 0
	for key, value := range params {
		if err := t.sys.WriteSysctl(key, value); err != nil {
			t.logger.Warn(fmt.Sprintf("Failed to set %s=%s: %v", key, value, err))
		} else {
			applied++
		}
	}

	t.logger.Info(fmt.Sprintf("Applied %d/%d sysctl parameters", applied, len(params)))
	return nil
}
