package driver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qcsc/slurmled/internal/display"
)

func TestSimStripSetPixelBounds(t *testing.T) {
	strip := NewSimStrip(4, 2, nil)

	assert.Equal(t, 8, strip.Len())

	// Out-of-range indexes are ignored, not panics.
	strip.SetPixel(-1, display.ColorWhite)
	strip.SetPixel(8, display.ColorWhite)
	strip.SetPixel(3, display.ColorWhite)

	assert.Equal(t, display.ColorWhite, strip.Pixels[3])
	assert.Equal(t, 1, litPixels(strip))
}

func TestSimStripFillAndClose(t *testing.T) {
	strip := NewSimStrip(4, 2, nil)

	strip.Fill(display.ColorClassical)
	assert.Equal(t, 8, litPixels(strip))

	assert.NoError(t, strip.Close())
	assert.True(t, strip.Closed)
	assert.Zero(t, litPixels(strip), "closing leaves all pixels dark")
}

func TestSimStripRenderBlankFrame(t *testing.T) {
	strip := NewSimStrip(3, 2, nil)

	out := strip.Render(defaultLayout(3, 2))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, []string{"...", "..."}, lines)
}

func TestSimLineRecordsWrites(t *testing.T) {
	req, lines := SimLines()

	l, err := req(17)
	assert.NoError(t, err)

	assert.NoError(t, l.Set(true))
	assert.NoError(t, l.Set(false))
	assert.NoError(t, l.Close())

	sim := lines[17]
	assert.Equal(t, []bool{true, false}, sim.Writes)
	assert.False(t, sim.State)
	assert.True(t, sim.Closed)
}
