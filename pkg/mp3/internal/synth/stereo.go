package synth

import "math"

var invSqrt2 = float32(1 / math.Sqrt2)

// midSide reconstructs left/right from mid/side spectra in place.
func midSide(mid, side []float32) {
	for i := range mid {
		m, s := mid[i], side[i]
		mid[i] = (m + s) * invSqrt2
		side[i] = (m - s) * invSqrt2
	}
}
