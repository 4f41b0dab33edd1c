package synth

import "github.com/aikumo/baremp3/pkg/mp3/internal/frame"

// reorder rearranges short-block spectra from window-major band order
// to the line-interleaved order the filter bank expects. In a mixed
// block the two long subbands are left untouched and the short bands
// start at band 3.
func reorder(bands *frame.BandTable, mixed bool, x []float32) {
	var tmp [frame.SamplesPerGranule]float32

	firstBand := 0
	if mixed {
		firstBand = 3
		copy(tmp[:36], x[:36])
	}

	for b := firstBand; b < frame.BandsShort; b++ {
		start := bands.Short[b] * 3
		width := bands.Short[b+1] - bands.Short[b]
		for win := 0; win < 3; win++ {
			for l := 0; l < width; l++ {
				tmp[start+l*3+win] = x[start+win*width+l]
			}
		}
	}

	copy(x, tmp[:])
}
