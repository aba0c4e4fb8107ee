package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextColumnsWidth(t *testing.T) {
	// n glyphs of 5 columns plus n-1 spacing columns.
	assert.Len(t, TextColumns("Q"), 5)
	assert.Len(t, TextColumns("QC"), 11)
	assert.Len(t, TextColumns("HPC"), 17)
	assert.Empty(t, TextColumns(""))
}

func TestTextColumnsLowercaseRendersUppercase(t *testing.T) {
	assert.Equal(t, TextColumns("HPC"), TextColumns("hpc"))
}

func TestTextColumnsUnknownRuneIsBlank(t *testing.T) {
	cols := TextColumns("?")
	require.Len(t, cols, 5)
	for _, c := range cols {
		assert.Zero(t, c)
	}
}

func TestTextColumnsSpacingColumnIsBlank(t *testing.T) {
	cols := TextColumns("HH")
	require.Len(t, cols, 11)
	assert.Zero(t, cols[5], "column between glyphs must be blank")
}

func TestTextColumnsGlyphShape(t *testing.T) {
	// 'H' is two full-height verticals joined by a middle bar.
	cols := TextColumns("H")
	require.Len(t, cols, 5)
	assert.Equal(t, byte(0x7F), cols[0])
	assert.Equal(t, byte(0x08), cols[1])
	assert.Equal(t, byte(0x08), cols[2])
	assert.Equal(t, byte(0x08), cols[3])
	assert.Equal(t, byte(0x7F), cols[4])
}
