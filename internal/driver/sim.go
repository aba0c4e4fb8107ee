package driver

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/qcsc/slurmled/internal/display"
	"github.com/qcsc/slurmled/internal/logger"
	"golang.org/x/term"
)

// SimLine is a Line that records writes instead of touching hardware.
type SimLine struct {
	Offset int
	State  bool
	Closed bool
	Writes []bool // every Set in order
}

// SimLines returns a LineRequester producing SimLines and a registry of the
// lines it has handed out, keyed by offset, for test assertions.
func SimLines() (LineRequester, map[int]*SimLine) {
	lines := make(map[int]*SimLine)
	req := func(offset int) (Line, error) {
		l := &SimLine{Offset: offset}
		lines[offset] = l
		return l, nil
	}
	return req, lines
}

func (s *SimLine) Set(on bool) error {
	s.State = on
	s.Writes = append(s.Writes, on)
	return nil
}

func (s *SimLine) Close() error {
	s.State = false
	s.Closed = true
	return nil
}

// SimStrip is a PixelStrip that keeps pixels in memory and optionally logs
// a rendering of the frame on every Show.
type SimStrip struct {
	Pixels    []display.RGB
	ShowCount int
	Closed    bool

	width  int
	height int
	log    logger.Logger
}

// NewSimStrip creates a simulated pixel strip for a width x height matrix.
// When log is non-nil, every Show logs the frame; lit pixels are colored
// when stderr is a terminal.
func NewSimStrip(width, height int, log logger.Logger) *SimStrip {
	return &SimStrip{
		Pixels: make([]display.RGB, width*height),
		width:  width,
		height: height,
		log:    log,
	}
}

func (s *SimStrip) Len() int {
	return len(s.Pixels)
}

func (s *SimStrip) SetPixel(i int, c display.RGB) {
	if i < 0 || i >= len(s.Pixels) {
		return
	}
	s.Pixels[i] = c
}

func (s *SimStrip) Fill(c display.RGB) {
	for i := range s.Pixels {
		s.Pixels[i] = c
	}
}

func (s *SimStrip) Show() error {
	s.ShowCount++
	if s.log != nil {
		s.log.Debug("matrix frame:\n%s", s.Render(defaultLayout(s.width, s.height)))
	}
	return nil
}

func (s *SimStrip) Close() error {
	s.Fill(display.ColorOff)
	s.Closed = true
	return nil
}

// Render draws the frame as text, one rune per pixel, using the given
// xy-to-index layout. Lit pixels render as colored blocks on a terminal.
func (s *SimStrip) Render(layout LayoutFunc) string {
	colorize := term.IsTerminal(int(os.Stderr.Fd()))
	var b strings.Builder
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			idx := layout(x, y)
			if idx < 0 || idx >= len(s.Pixels) {
				b.WriteByte(' ')
				continue
			}
			c := s.Pixels[idx]
			if c == (display.RGB{}) {
				b.WriteByte('.')
				continue
			}
			if colorize {
				style := lipgloss.NewStyle().Foreground(
					lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
				b.WriteString(style.Render("█"))
			} else {
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
