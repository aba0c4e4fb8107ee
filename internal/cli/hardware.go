package cli

import (
	"github.com/qcsc/slurmled/internal/config"
	"github.com/qcsc/slurmled/internal/driver"
	"github.com/qcsc/slurmled/internal/logger"
)

// lineRequester picks the binary-output backend: real gpiochip lines, or
// recording no-ops under --simulate.
func lineRequester(cfg *config.Config, log logger.Logger) driver.LineRequester {
	if cfg.Simulate {
		log.Info("simulate: GPIO outputs are no-ops")
		req, _ := driver.SimLines()
		return req
	}
	return driver.GPIOLines(cfg.GPIOChip)
}

// buildMatrix assembles the matrix driver. The real pixel device is
// injected through driver.NewHardwareStrip; when it is absent (or under
// --simulate) the recording backend takes its place, so rendering logic
// never notices the difference.
func buildMatrix(cfg *config.Config, log logger.Logger) (*driver.Matrix, error) {
	var strip driver.PixelStrip
	switch {
	case cfg.Simulate || !cfg.Matrix.Enabled:
		strip = driver.NewSimStrip(cfg.Matrix.Width, cfg.Matrix.Height, log)
	case driver.NewHardwareStrip != nil:
		hw, err := driver.NewHardwareStrip(cfg.Matrix.Width*cfg.Matrix.Height, cfg.Matrix.Brightness)
		if err != nil {
			return nil, err
		}
		strip = hw
	default:
		log.Warn("no matrix hardware backend in this build; matrix runs simulated")
		strip = driver.NewSimStrip(cfg.Matrix.Width, cfg.Matrix.Height, log)
	}

	return driver.NewMatrix(strip,
		cfg.Matrix.Width, cfg.Matrix.Height,
		cfg.Matrix.Brightness, cfg.Matrix.Enabled, log), nil
}
