// Package synth turns dequantized spectral lines into PCM: stereo
// processing, short-block reordering, alias reduction, the hybrid
// filter bank and the 32-band polyphase synthesis.
package synth

import (
	"github.com/aikumo/baremp3/pkg/mp3/internal/frame"
)

// State carries the per-channel synthesis memory that spans frames.
type State struct {
	// overlap holds the second half of the previous granule's windowed
	// subband samples.
	overlap [subBands][slotsPerGranule]float32
	// fifo is the polyphase synthesis delay line.
	fifo [fifoSize]float32
}

// Reset clears the synthesis memory, as after a seek.
func (s *State) Reset() {
	s.overlap = [subBands][slotsPerGranule]float32{}
	s.fifo = [fifoSize]float32{}
}

const (
	subBands        = 32
	slotsPerGranule = frame.SamplesPerGranule / subBands
	fifoSize        = 1024
)

// Process converts one frame of dequantized spectra to PCM in place.
// pcm[ch] holds both granules' spectral lines on entry and the frame's
// time samples on return. states[ch] must persist across frames of the
// same stream.
func Process(hdr *frame.Header, si *frame.SideInfo, states []*State, pcm [][]float32) {
	channels := hdr.Channels()
	bands := frame.Bands(hdr.SampleRate)

	for gr := 0; gr < frame.GranulesPerFrame; gr++ {
		if channels == 2 && hdr.Mode == frame.JointStereo && hdr.ModeExt.MSStereo() {
			midSide(
				pcm[0][gr*frame.SamplesPerGranule:(gr+1)*frame.SamplesPerGranule],
				pcm[1][gr*frame.SamplesPerGranule:(gr+1)*frame.SamplesPerGranule],
			)
		}

		for ch := 0; ch < channels; ch++ {
			g := &si.Channels[ch].Granules[gr]
			x := pcm[ch][gr*frame.SamplesPerGranule : (gr+1)*frame.SamplesPerGranule]

			if g.BlockType == frame.BlockShort {
				reorder(bands, g.MixedBlock, x)
			}
			antialias(g, x)
			hybrid(g, states[ch], x)
		}
	}
}

// hybrid runs the IMDCT filter bank and the polyphase synthesis for
// one granule, overwriting x with time samples.
func hybrid(g *frame.Granule, st *State, x []float32) {
	var sub [subBands][slotsPerGranule]float32

	for sb := 0; sb < subBands; sb++ {
		bt := g.BlockType
		if g.MixedBlock && sb < 2 {
			bt = frame.BlockNormal
		}
		imdct(bt, x[sb*slotsPerGranule:(sb+1)*slotsPerGranule], &st.overlap[sb], &sub[sb])
	}

	// Frequency inversion compensates the decimation in odd subbands.
	for sb := 1; sb < subBands; sb += 2 {
		for i := 1; i < slotsPerGranule; i += 2 {
			sub[sb][i] = -sub[sb][i]
		}
	}

	var slot [subBands]float32
	for t := 0; t < slotsPerGranule; t++ {
		for sb := 0; sb < subBands; sb++ {
			slot[sb] = sub[sb][t]
		}
		polyphase(&st.fifo, &slot, x[t*subBands:(t+1)*subBands])
	}
}
