package synth

import "math"

// matrixing coefficients: cosMatrix[i][k] = cos((16+i)(2k+1)π/64).
var cosMatrix [64][subBands]float32

func init() {
	for i := 0; i < 64; i++ {
		for k := 0; k < subBands; k++ {
			cosMatrix[i][k] = float32(math.Cos(
				float64(16+i) * float64(2*k+1) * math.Pi / 64))
		}
	}
}

// polyphase synthesizes 32 PCM samples from one time slot of subband
// samples, advancing the delay line by 64 positions.
func polyphase(fifo *[fifoSize]float32, slot *[subBands]float32, out []float32) {
	copy(fifo[64:], fifo[:fifoSize-64])

	for i := 0; i < 64; i++ {
		var sum float32
		for k := 0; k < subBands; k++ {
			sum += cosMatrix[i][k] * slot[k]
		}
		fifo[i] = sum
	}

	for j := 0; j < subBands; j++ {
		var sum float32
		for i := 0; i < 8; i++ {
			sum += fifo[i*128+j] * window[i*64+j]
			sum += fifo[i*128+96+j] * window[i*64+32+j]
		}
		out[j] = sum
	}
}
