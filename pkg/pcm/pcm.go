// Package pcm converts planar float32 audio to interleaved integer
// samples for container writers.
package pcm

import "github.com/cockroachdb/errors"

// Supported output bit depths.
const (
	Depth16 = 16
	Depth24 = 24
)

// ErrBitDepth marks an unsupported output bit depth.
var ErrBitDepth = errors.New("unsupported bit depth")

// ValidDepth reports whether the bit depth is supported.
func ValidDepth(bitDepth int) bool {
	return bitDepth == Depth16 || bitDepth == Depth24
}

// Interleave converts samples per-channel float32 data in [-1, 1) to
// interleaved signed integers of the given bit depth. Out-of-range
// input is clipped.
func Interleave(channels [][]float32, samples, bitDepth int) ([]int, error) {
	if !ValidDepth(bitDepth) {
		return nil, errors.Wrapf(ErrBitDepth, "%d bits", bitDepth)
	}
	for ch := range channels {
		if len(channels[ch]) < samples {
			return nil, errors.Newf("channel %d holds %d samples, need %d",
				ch, len(channels[ch]), samples)
		}
	}

	scale := float64(int64(1) << (bitDepth - 1))
	max := int(scale) - 1
	min := -int(scale)

	out := make([]int, samples*len(channels))
	for i := 0; i < samples; i++ {
		for ch := range channels {
			v := int(float64(channels[ch][i]) * scale)
			if v > max {
				v = max
			} else if v < min {
				v = min
			}
			out[i*len(channels)+ch] = v
		}
	}

	return out, nil
}
