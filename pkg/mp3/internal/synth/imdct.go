package synth

import (
	"math"

	"github.com/aikumo/baremp3/pkg/mp3/internal/frame"
)

// imdctWindows holds the four 36-point block windows; the short window
// is stored separately as a 12-point window applied per sub-window.
var (
	imdctWindows [4][36]float32
	shortWindow  [12]float32

	cos36 [36][18]float32
	cos12 [12][6]float32
)

func init() {
	for i := 0; i < 36; i++ {
		long := math.Sin(math.Pi / 36 * (float64(i) + 0.5))

		imdctWindows[frame.BlockNormal][i] = float32(long)

		switch {
		case i < 18:
			imdctWindows[frame.BlockStart][i] = float32(long)
		case i < 24:
			imdctWindows[frame.BlockStart][i] = 1
		case i < 30:
			imdctWindows[frame.BlockStart][i] =
				float32(math.Sin(math.Pi / 12 * (float64(i-18) + 0.5)))
		}

		switch {
		case i < 6:
			// zero
		case i < 12:
			imdctWindows[frame.BlockStop][i] =
				float32(math.Sin(math.Pi / 12 * (float64(i-6) + 0.5)))
		case i < 18:
			imdctWindows[frame.BlockStop][i] = 1
		default:
			imdctWindows[frame.BlockStop][i] = float32(long)
		}
	}

	for i := 0; i < 12; i++ {
		shortWindow[i] = float32(math.Sin(math.Pi / 12 * (float64(i) + 0.5)))
	}

	for i := 0; i < 36; i++ {
		for k := 0; k < 18; k++ {
			cos36[i][k] = float32(math.Cos(math.Pi / 72 *
				float64((2*i+1+18)*(2*k+1))))
		}
	}
	for i := 0; i < 12; i++ {
		for k := 0; k < 6; k++ {
			cos12[i][k] = float32(math.Cos(math.Pi / 24 *
				float64((2*i+1+6)*(2*k+1))))
		}
	}
}

// imdct transforms one subband's 18 spectral lines to time samples,
// windows them and folds in the previous granule's overlap. prev is
// updated with this granule's tail.
func imdct(bt frame.BlockType, in []float32, prev, out *[slotsPerGranule]float32) {
	var raw [36]float32

	if bt == frame.BlockShort {
		// Three 12-point transforms, windowed and overlapped at
		// 6-sample offsets inside the 36-sample block.
		for win := 0; win < 3; win++ {
			for i := 0; i < 12; i++ {
				var sum float32
				for k := 0; k < 6; k++ {
					sum += in[k*3+win] * cos12[i][k]
				}
				raw[6+win*6+i] += sum * shortWindow[i]
			}
		}
	} else {
		w := &imdctWindows[bt]
		for i := 0; i < 36; i++ {
			var sum float32
			for k := 0; k < 18; k++ {
				sum += in[k] * cos36[i][k]
			}
			raw[i] = sum * w[i]
		}
	}

	for i := 0; i < slotsPerGranule; i++ {
		out[i] = raw[i] + prev[i]
		prev[i] = raw[slotsPerGranule+i]
	}
}
