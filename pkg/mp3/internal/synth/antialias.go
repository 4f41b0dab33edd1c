package synth

import (
	"math"

	"github.com/aikumo/baremp3/pkg/mp3/internal/frame"
)

// aliasCoeffs are the eight butterfly coefficients of the alias
// reduction stage.
var aliasCoeffs = [8]float64{
	-0.6, -0.535, -0.33, -0.185, -0.095, -0.041, -0.0142, -0.0037,
}

var aliasCS, aliasCA [8]float32

func init() {
	for i, ci := range aliasCoeffs {
		cs := 1 / math.Sqrt(1+ci*ci)
		aliasCS[i] = float32(cs)
		aliasCA[i] = float32(ci * cs)
	}
}

// antialias applies the butterfly stage across subband boundaries.
// Short blocks carry no aliasing to remove; a mixed block keeps only
// the boundary between its two long subbands.
func antialias(g *frame.Granule, x []float32) {
	boundaries := subBands - 1
	if g.BlockType == frame.BlockShort {
		if !g.MixedBlock {
			return
		}
		boundaries = 1
	}

	for sb := 1; sb <= boundaries; sb++ {
		for i := 0; i < 8; i++ {
			lo := x[sb*slotsPerGranule-1-i]
			hi := x[sb*slotsPerGranule+i]
			x[sb*slotsPerGranule-1-i] = lo*aliasCS[i] - hi*aliasCA[i]
			x[sb*slotsPerGranule+i] = hi*aliasCS[i] + lo*aliasCA[i]
		}
	}
}
