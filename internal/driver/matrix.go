package driver

import (
	"context"
	"time"

	"github.com/qcsc/slurmled/internal/display"
	"github.com/qcsc/slurmled/internal/logger"
)

// LayoutFunc maps matrix coordinates to a pixel index. x runs left to
// right, y top to bottom. Returning a negative index skips the pixel.
type LayoutFunc func(x, y int) int

// defaultLayout is the column-serpentine wiring common to chained 8-high
// matrix panels: even columns run top-down, odd columns bottom-up.
func defaultLayout(width, height int) LayoutFunc {
	return func(x, y int) int {
		if x < 0 || x >= width || y < 0 || y >= height {
			return -1
		}
		if x%2 == 0 {
			return x*height + y
		}
		return x*height + (height - 1 - y)
	}
}

// Matrix renders directive text onto the addressable pixel grid.
type Matrix struct {
	strip      PixelStrip
	width      int
	height     int
	layout     LayoutFunc
	brightness float64
	enabled    bool
	log        logger.Logger
}

// MatrixOption adjusts matrix construction.
type MatrixOption func(*Matrix)

// WithLayout overrides the default serpentine pixel layout.
func WithLayout(layout LayoutFunc) MatrixOption {
	return func(m *Matrix) { m.layout = layout }
}

// NewMatrix creates a matrix driver over the given strip.
// brightness scales all rendered colors (0.0–1.0). When enabled is false
// every write is suppressed and the panel stays blank.
func NewMatrix(strip PixelStrip, width, height int, brightness float64, enabled bool, log logger.Logger, opts ...MatrixOption) *Matrix {
	m := &Matrix{
		strip:      strip,
		width:      width,
		height:     height,
		layout:     defaultLayout(width, height),
		brightness: brightness,
		enabled:    enabled,
		log:        log,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Apply renders the directive text, or blanks the matrix when the directive
// carries none. Safe to call every tick with unchanged directives.
func (m *Matrix) Apply(d display.Directives) error {
	if !m.enabled {
		return nil
	}
	m.strip.Fill(display.ColorOff)
	if d.Matrix != nil {
		for _, seg := range d.Matrix.Segments {
			m.renderText(seg.Text, seg.Color, seg.X)
		}
	}
	return m.strip.Show()
}

// ShowText blanks the matrix, renders text at the offset, and holds it for
// the duration (or until the context ends).
func (m *Matrix) ShowText(ctx context.Context, text string, color display.RGB, xOffset int, hold time.Duration) error {
	if !m.enabled {
		return sleep(ctx, hold)
	}
	m.strip.Fill(display.ColorOff)
	m.renderText(text, color, xOffset)
	if err := m.strip.Show(); err != nil {
		return err
	}
	return sleep(ctx, hold)
}

// ShowSegments renders multiple colored segments at once and holds them.
func (m *Matrix) ShowSegments(ctx context.Context, segments []display.Segment, hold time.Duration) error {
	if !m.enabled {
		return sleep(ctx, hold)
	}
	m.strip.Fill(display.ColorOff)
	for _, seg := range segments {
		m.renderText(seg.Text, seg.Color, seg.X)
	}
	if err := m.strip.Show(); err != nil {
		return err
	}
	return sleep(ctx, hold)
}

// ScrollText scrolls text right to left across the full width, one column
// per frame.
func (m *Matrix) ScrollText(ctx context.Context, text string, color display.RGB, frame time.Duration) error {
	if !m.enabled {
		return nil
	}
	cols := display.TextColumns(text)
	for offset := m.width; offset >= -len(cols); offset-- {
		m.strip.Fill(display.ColorOff)
		m.renderColumns(cols, color, offset)
		if err := m.strip.Show(); err != nil {
			return err
		}
		if err := sleep(ctx, frame); err != nil {
			return err
		}
	}
	return nil
}

// Clear blanks the matrix immediately, even mid-sequence.
func (m *Matrix) Clear() error {
	if !m.enabled {
		return nil
	}
	m.strip.Fill(display.ColorOff)
	return m.strip.Show()
}

// Close blanks the matrix and releases the strip.
func (m *Matrix) Close() error {
	if m.enabled {
		m.strip.Fill(display.ColorOff)
		_ = m.strip.Show()
	}
	return m.strip.Close()
}

func (m *Matrix) renderText(text string, color display.RGB, xOffset int) {
	m.renderColumns(display.TextColumns(text), color, xOffset)
}

// renderColumns stages a column bitmap at the offset, clipping at the
// matrix edges.
func (m *Matrix) renderColumns(cols []byte, color display.RGB, xOffset int) {
	scaled := color.Scale(m.brightness)
	for colIdx, colBits := range cols {
		x := xOffset + colIdx
		if x < 0 || x >= m.width {
			continue
		}
		for y := 0; y < m.height && y < 8; y++ {
			if colBits&(1<<uint(y)) == 0 {
				continue
			}
			if idx := m.layout(x, y); idx >= 0 {
				m.strip.SetPixel(idx, scaled)
			}
		}
	}
}

// sleep waits for d or until ctx is done, returning ctx.Err in that case.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
