package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcsc/slurmled/internal/snapshot"
)

func TestMapPartitionStates(t *testing.T) {
	tests := []struct {
		name           string
		classical      bool
		quantum        bool
		wantIndicatorA bool
		wantIndicatorB bool
		wantSegments   []Segment
	}{
		{
			name: "idle cluster blanks everything",
		},
		{
			name:           "classical only",
			classical:      true,
			wantIndicatorA: true,
			wantSegments: []Segment{
				{Text: "HPC", Color: ColorClassical, X: 3},
			},
		},
		{
			name:           "quantum only",
			quantum:        true,
			wantIndicatorB: true,
			wantSegments: []Segment{
				{Text: "Q", Color: ColorQuantum, X: 9},
			},
		},
		{
			name:           "both classes",
			classical:      true,
			quantum:        true,
			wantIndicatorA: true,
			wantIndicatorB: true,
			wantSegments: []Segment{
				{Text: "QC", Color: ColorQuantum, X: 1},
				{Text: "SC", Color: ColorClassical, X: 13},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Map(snapshot.Snapshot{
				ClassicalActive: tt.classical,
				QuantumActive:   tt.quantum,
			})

			assert.Equal(t, tt.wantIndicatorA, d.IndicatorA)
			assert.Equal(t, tt.wantIndicatorB, d.IndicatorB)

			if tt.wantSegments == nil {
				assert.Nil(t, d.Matrix, "idle cluster should blank the matrix")
				return
			}
			require.NotNil(t, d.Matrix)
			assert.Equal(t, tt.wantSegments, d.Matrix.Segments)
		})
	}
}

func TestMapNodeLightsAreIndependent(t *testing.T) {
	// Node lights mirror node activity regardless of the partition pair.
	for _, classical := range []bool{false, true} {
		for _, quantum := range []bool{false, true} {
			d := Map(snapshot.Snapshot{
				ClassicalActive: classical,
				QuantumActive:   quantum,
				NodeActive:      map[string]bool{"c1": true, "c2": false},
			})
			assert.Equal(t, map[string]bool{"c1": true, "c2": false}, d.NodeLights)
		}
	}
}

func TestMapOmitsNodesAbsentFromSnapshot(t *testing.T) {
	d := Map(snapshot.Snapshot{
		NodeActive: map[string]bool{"c1": true},
	})

	_, present := d.NodeLights["c2"]
	assert.False(t, present, "nodes without fresh data must stay absent")
}

func TestRGBScale(t *testing.T) {
	tests := []struct {
		name       string
		color      RGB
		brightness float64
		want       RGB
	}{
		{
			name:       "full brightness is identity",
			color:      ColorQuantum,
			brightness: 1.0,
			want:       ColorQuantum,
		},
		{
			name:       "half brightness halves channels",
			color:      RGB{R: 200, G: 100, B: 50},
			brightness: 0.5,
			want:       RGB{R: 100, G: 50, B: 25},
		},
		{
			name:       "zero brightness is off",
			color:      ColorWhite,
			brightness: 0,
			want:       ColorOff,
		},
		{
			name:       "negative clamps to off",
			color:      ColorWhite,
			brightness: -1,
			want:       ColorOff,
		},
		{
			name:       "above one clamps to identity",
			color:      ColorClassical,
			brightness: 2,
			want:       ColorClassical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.color.Scale(tt.brightness))
		})
	}
}
