package driver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcsc/slurmled/internal/display"
	"github.com/qcsc/slurmled/internal/logger"
)

const (
	testWidth  = 24
	testHeight = 8
)

func newTestMatrix(t *testing.T, brightness float64, enabled bool) (*Matrix, *SimStrip) {
	t.Helper()
	strip := NewSimStrip(testWidth, testHeight, nil)
	m := NewMatrix(strip, testWidth, testHeight, brightness, enabled, logger.Noop())
	return m, strip
}

// litPixels counts pixels that aren't off.
func litPixels(strip *SimStrip) int {
	n := 0
	for _, p := range strip.Pixels {
		if p != (display.RGB{}) {
			n++
		}
	}
	return n
}

func TestMatrixApplyBlankDirective(t *testing.T) {
	m, strip := newTestMatrix(t, 1.0, true)

	require.NoError(t, m.Apply(display.Directives{}))

	assert.Equal(t, 1, strip.ShowCount)
	assert.Zero(t, litPixels(strip), "nil matrix text must blank the panel")
}

func TestMatrixApplyRendersSegments(t *testing.T) {
	m, strip := newTestMatrix(t, 1.0, true)

	err := m.Apply(display.Directives{
		Matrix: &display.Text{Segments: []display.Segment{
			{Text: "Q", Color: display.ColorQuantum, X: 9},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, strip.ShowCount)
	assert.Positive(t, litPixels(strip))

	// Every lit pixel carries the segment color at full brightness.
	for _, p := range strip.Pixels {
		if p != (display.RGB{}) {
			assert.Equal(t, display.ColorQuantum, p)
		}
	}
}

func TestMatrixApplyReplacesPreviousFrame(t *testing.T) {
	m, strip := newTestMatrix(t, 1.0, true)

	require.NoError(t, m.Apply(display.Directives{
		Matrix: &display.Text{Segments: []display.Segment{
			{Text: "HPC", Color: display.ColorClassical, X: 3},
		}},
	}))
	require.NoError(t, m.Apply(display.Directives{}))

	assert.Equal(t, 2, strip.ShowCount)
	assert.Zero(t, litPixels(strip), "each frame starts from a blank panel")
}

func TestMatrixBrightnessScalesColors(t *testing.T) {
	m, strip := newTestMatrix(t, 0.5, true)

	require.NoError(t, m.Apply(display.Directives{
		Matrix: &display.Text{Segments: []display.Segment{
			{Text: "Q", Color: display.RGB{R: 200, G: 100, B: 50}, X: 9},
		}},
	}))

	want := display.RGB{R: 100, G: 50, B: 25}
	for _, p := range strip.Pixels {
		if p != (display.RGB{}) {
			assert.Equal(t, want, p)
		}
	}
}

func TestMatrixDisabledSuppressesWrites(t *testing.T) {
	m, strip := newTestMatrix(t, 1.0, false)

	require.NoError(t, m.Apply(display.Directives{
		Matrix: &display.Text{Segments: []display.Segment{
			{Text: "HPC", Color: display.ColorClassical, X: 3},
		}},
	}))
	require.NoError(t, m.Clear())

	assert.Zero(t, strip.ShowCount)
}

func TestMatrixClipsAtEdges(t *testing.T) {
	m, strip := newTestMatrix(t, 1.0, true)

	// A segment starting near the right edge renders partially; columns
	// past the edge are dropped, not wrapped.
	err := m.Apply(display.Directives{
		Matrix: &display.Text{Segments: []display.Segment{
			{Text: "HPC", Color: display.ColorClassical, X: testWidth - 2},
		}},
	})
	require.NoError(t, err)

	layout := defaultLayout(testWidth, testHeight)
	for y := 0; y < testHeight; y++ {
		for x := 0; x < 2; x++ {
			idx := layout(x, y)
			assert.Equal(t, display.RGB{}, strip.Pixels[idx], "pixel (%d,%d) must not wrap around", x, y)
		}
	}
}

func TestMatrixShowTextHoldsAndCancels(t *testing.T) {
	m, strip := newTestMatrix(t, 1.0, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.ShowText(ctx, "HPC", display.ColorWhite, 3, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, strip.ShowCount, "frame renders before the hold")
}

func TestMatrixScrollTextCoversFullWidth(t *testing.T) {
	m, strip := newTestMatrix(t, 1.0, true)

	err := m.ScrollText(context.Background(), "Q", display.ColorQuantum, 0)
	require.NoError(t, err)

	// One frame per offset from just off the right edge to fully off the
	// left edge.
	cols := len(display.TextColumns("Q"))
	assert.Equal(t, testWidth+cols+1, strip.ShowCount)
}

func TestMatrixCloseBlanksAndReleases(t *testing.T) {
	m, strip := newTestMatrix(t, 1.0, true)

	require.NoError(t, m.Apply(display.Directives{
		Matrix: &display.Text{Segments: []display.Segment{
			{Text: "Q", Color: display.ColorQuantum, X: 9},
		}},
	}))
	require.NoError(t, m.Close())

	assert.True(t, strip.Closed)
	assert.Zero(t, litPixels(strip))
}

func TestDefaultLayoutSerpentine(t *testing.T) {
	layout := defaultLayout(testWidth, testHeight)

	// Even columns run top-down.
	assert.Equal(t, 0, layout(0, 0))
	assert.Equal(t, 7, layout(0, 7))
	// Odd columns run bottom-up.
	assert.Equal(t, 15, layout(1, 0))
	assert.Equal(t, 8, layout(1, 7))
	// Out of range is skipped.
	assert.Equal(t, -1, layout(-1, 0))
	assert.Equal(t, -1, layout(testWidth, 0))
	assert.Equal(t, -1, layout(0, testHeight))
}
