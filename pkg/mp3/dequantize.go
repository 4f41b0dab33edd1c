package mp3

import (
	"math"

	"github.com/aikumo/baremp3/pkg/mp3/internal/frame"
)

// pretab is the extra scalefactor applied to the upper long bands
// when preflag is set.
var pretab = [22]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 3, 3, 3, 2, 0,
}

// pow43 restores the 4/3 power of a quantized line, keeping its sign.
func pow43(v float32) float64 {
	out := math.Pow(math.Abs(float64(v)), 4.0/3.0)
	if v < 0 {
		return -out
	}
	return out
}

// dequantize scales one granule's Huffman output to spectral values.
func dequantize(hdr *frame.Header, g *frame.Granule, sf *granuleScalefactors, out []float32) {
	globalGain := math.Pow(2, 0.25*(float64(g.GlobalGain)-210))
	scaleStep := 0.5 * (1 + float64(g.ScalefacScale))

	bands := frame.Bands(hdr.SampleRate)

	longGain := func(cb int) float64 {
		scale := float64(sf.long[cb])
		if g.Preflag {
			scale += float64(pretab[cb])
		}
		return globalGain * math.Pow(2, -scaleStep*scale)
	}
	shortGain := func(win, cb int) float64 {
		return globalGain * math.Pow(2,
			-2*float64(g.SubblockGain[win])-scaleStep*float64(sf.short[win][cb]))
	}

	switch {
	case g.BlockType == frame.BlockShort && g.WindowSwitching && !g.MixedBlock:
		short := &bands.Short
		nextBound := 3 * short[1]
		width := short[1]
		begin := 0
		cb := 0

		for i := range out {
			if i == nextBound {
				cb++
				begin = nextBound
				nextBound = 3 * short[cb+1]
				width = short[cb+1] - short[cb]
			}
			win := (i - begin) / width
			out[i] = float32(shortGain(win, cb) * pow43(out[i]))
		}

	case g.BlockType == frame.BlockShort && g.WindowSwitching && g.MixedBlock:
		long := &bands.Long
		short := &bands.Short
		nextBound := long[1]
		width := short[1]
		begin := 0
		cb := 0

		for i := range out {
			if i == nextBound {
				cb++
				switch {
				case i < long[8]:
					nextBound = long[cb+1]
				case i == long[8]:
					// Hand over from long bands to the short bands
					// that overlap the boundary.
					nextBound = 3 * short[4]
					cb = 3
					width = short[cb+1] - short[cb]
					begin = 3 * short[cb]
				default:
					begin = nextBound
					nextBound = 3 * short[cb+1]
					width = short[cb+1] - short[cb]
				}
			}

			// The first two subbands are long, the rest short.
			var gain float64
			if i >= 2*18 {
				win := (i - begin) / width
				gain = shortGain(win, cb)
			} else {
				gain = longGain(cb)
			}
			out[i] = float32(gain * pow43(out[i]))
		}

	default:
		long := &bands.Long
		nextBound := long[1]
		cb := 0
		gain := longGain(0)

		for i := range out {
			if i == nextBound {
				cb++
				nextBound = long[cb+1]
				gain = longGain(cb)
			}
			out[i] = float32(gain * pow43(out[i]))
		}
	}
}
