// Package display maps canonical snapshots onto display directives and
// provides the glyph font used by the text matrix. Mapping is a pure
// function; rendering happens in the driver package.
package display

import "github.com/qcsc/slurmled/internal/snapshot"

// RGB is one pixel color.
type RGB struct {
	R, G, B uint8
}

// Scale returns the color dimmed by a 0.0–1.0 brightness factor.
func (c RGB) Scale(brightness float64) RGB {
	if brightness < 0 {
		brightness = 0
	}
	if brightness > 1 {
		brightness = 1
	}
	return RGB{
		R: uint8(float64(c.R) * brightness),
		G: uint8(float64(c.G) * brightness),
		B: uint8(float64(c.B) * brightness),
	}
}

// Display palette.
var (
	ColorClassical = RGB{R: 0, G: 255, B: 0}    // green: classical/HPC partition
	ColorQuantum   = RGB{R: 0, G: 150, B: 255}  // blue: quantum partition
	ColorWhite     = RGB{R: 255, G: 255, B: 255}
	ColorOff       = RGB{}
)

// Segment is one run of text rendered at a fixed column offset in one color.
type Segment struct {
	Text  string
	Color RGB
	X     int
}

// Text is what the matrix should show: one or more colored segments.
type Text struct {
	Segments []Segment
}

// Directives is the full set of outputs derived from one snapshot.
type Directives struct {
	IndicatorA bool  // classical partition indicator
	IndicatorB bool  // quantum partition indicator
	Matrix     *Text // nil means blank
	NodeLights map[string]bool
}

// Matrix layout constants: column offsets for each status word on the
// 24-wide matrix.
const (
	offsetHPC = 3
	offsetQ   = 9
	offsetQC  = 1
	offsetSC  = 13
)

// Map derives display directives from a snapshot.
//
// The partition-activity pair maps as:
//
//	classical quantum  indicators  matrix
//	false     false    off  off    blank
//	true      false    on   off    "HPC" green
//	false     true     off  on     "Q" blue
//	true      true     on   on     "QC" blue + "SC" green
//
// Node lights map independently: NodeLights[n] = NodeActive[n]. Nodes
// absent from the snapshot are absent from the directives, so the caller's
// last-known-good substitution decides what they show.
func Map(snap snapshot.Snapshot) Directives {
	d := Directives{
		IndicatorA: snap.ClassicalActive,
		IndicatorB: snap.QuantumActive,
		NodeLights: make(map[string]bool, len(snap.NodeActive)),
	}
	for node, active := range snap.NodeActive {
		d.NodeLights[node] = active
	}

	switch {
	case snap.ClassicalActive && snap.QuantumActive:
		d.Matrix = &Text{Segments: []Segment{
			{Text: "QC", Color: ColorQuantum, X: offsetQC},
			{Text: "SC", Color: ColorClassical, X: offsetSC},
		}}
	case snap.ClassicalActive:
		d.Matrix = &Text{Segments: []Segment{
			{Text: "HPC", Color: ColorClassical, X: offsetHPC},
		}}
	case snap.QuantumActive:
		d.Matrix = &Text{Segments: []Segment{
			{Text: "Q", Color: ColorQuantum, X: offsetQ},
		}}
	}

	return d
}
