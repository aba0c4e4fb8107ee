// Package driver renders display directives onto physical outputs.
// Hardware access goes through two capability interfaces — Line for binary
// outputs and PixelStrip for the addressable matrix — each with a real and
// a simulated implementation, so rendering logic never branches on hardware
// presence.
package driver

import (
	"fmt"

	"github.com/qcsc/slurmled/internal/errors"
	"github.com/warthog618/go-gpiocdev"
)

// Line is one claimed binary output.
type Line interface {
	// Set drives the output high (true) or low (false).
	Set(on bool) error
	// Close releases the output, leaving it low.
	Close() error
}

// LineRequester claims a GPIO line (BCM offset) as an output.
// Claiming fails if the line is held by another process or absent; that is
// fatal at startup so two monitors can't fight over the same pins.
type LineRequester func(offset int) (Line, error)

// GPIOLines returns a LineRequester backed by the Linux gpiochip character
// device. chip is the device name, normally "gpiochip0".
func GPIOLines(chip string) LineRequester {
	return func(offset int) (Line, error) {
		l, err := gpiocdev.RequestLine(chip, offset,
			gpiocdev.AsOutput(0),
			gpiocdev.WithConsumer("slurmled"))
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrHardware,
				fmt.Sprintf("Couldn't claim GPIO %d on %s", offset, chip),
				"Another process may hold the line. Stop it, or run with --simulate.")
		}
		return &gpioLine{line: l}, nil
	}
}

// gpioLine adapts a gpiocdev line to the Line interface.
type gpioLine struct {
	line *gpiocdev.Line
}

func (g *gpioLine) Set(on bool) error {
	v := 0
	if on {
		v = 1
	}
	return g.line.SetValue(v)
}

func (g *gpioLine) Close() error {
	// Leave the pin low before releasing it.
	_ = g.line.SetValue(0)
	return g.line.Close()
}
