package driver

import "github.com/qcsc/slurmled/internal/display"

// NewHardwareStrip, when set by an embedding build, constructs the real
// pixel device with the given pixel count and brightness. It stays nil in
// builds without matrix hardware support, and callers fall back to the
// simulated strip.
var NewHardwareStrip func(pixels int, brightness float64) (PixelStrip, error)

// PixelStrip is the capability contract of the addressable pixel device.
// The electrical driver for the real WS2812-class hardware lives outside
// this repository; embedders inject an implementation. The simulated
// implementation in this package satisfies the same contract.
type PixelStrip interface {
	// Len returns the number of pixels.
	Len() int
	// SetPixel stages a color for one pixel. Out-of-range indexes are ignored.
	SetPixel(i int, c display.RGB)
	// Fill stages a color for every pixel.
	Fill(c display.RGB)
	// Show pushes staged pixels to the device.
	Show() error
	// Close releases the device, leaving all pixels dark.
	Close() error
}
