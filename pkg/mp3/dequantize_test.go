package mp3

import (
	"math"
	"testing"

	"github.com/aikumo/baremp3/pkg/mp3/internal/frame"
)

func approx(t *testing.T, got float32, want float64, what string) {
	t.Helper()
	if math.Abs(float64(got)-want) > 1e-4*math.Max(1, math.Abs(want)) {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}

func TestDequantizeLong(t *testing.T) {
	hdr := &frame.Header{SampleRate: 44100}
	// global_gain 210 makes the global step exactly 1.
	g := &frame.Granule{BlockType: frame.BlockNormal, GlobalGain: 210}
	var sf granuleScalefactors

	out := make([]float32, frame.SamplesPerGranule)
	out[0] = 1
	out[1] = -1
	out[2] = 8

	dequantize(hdr, g, &sf, out)

	approx(t, out[0], 1, "out[0]")
	approx(t, out[1], -1, "out[1]")
	approx(t, out[2], 16, "out[2]") // 8^(4/3)
}

func TestDequantizeGlobalGain(t *testing.T) {
	hdr := &frame.Header{SampleRate: 44100}
	g := &frame.Granule{BlockType: frame.BlockNormal, GlobalGain: 214}
	var sf granuleScalefactors

	out := make([]float32, frame.SamplesPerGranule)
	out[0] = 1

	dequantize(hdr, g, &sf, out)

	// Four gain steps double the amplitude.
	approx(t, out[0], 2, "out[0]")
}

func TestDequantizeScalefactor(t *testing.T) {
	hdr := &frame.Header{SampleRate: 44100}
	g := &frame.Granule{BlockType: frame.BlockNormal, GlobalGain: 210}
	var sf granuleScalefactors
	sf.long[0] = 2

	out := make([]float32, frame.SamplesPerGranule)
	out[0] = 1
	out[4] = 1 // band 1 starts at sample 4

	dequantize(hdr, g, &sf, out)

	approx(t, out[0], 0.5, "out[0]") // 2^(-0.5*2)
	approx(t, out[4], 1, "out[4]")
}

func TestDequantizeScalefacScaleDoublesStep(t *testing.T) {
	hdr := &frame.Header{SampleRate: 44100}
	g := &frame.Granule{
		BlockType:     frame.BlockNormal,
		GlobalGain:    210,
		ScalefacScale: 1,
	}
	var sf granuleScalefactors
	sf.long[0] = 1

	out := make([]float32, frame.SamplesPerGranule)
	out[0] = 1

	dequantize(hdr, g, &sf, out)

	approx(t, out[0], 0.5, "out[0]")
}

func TestDequantizePreflag(t *testing.T) {
	hdr := &frame.Header{SampleRate: 44100}
	g := &frame.Granule{
		BlockType:  frame.BlockNormal,
		GlobalGain: 210,
		Preflag:    true,
	}
	var sf granuleScalefactors

	long := frame.Bands(44100).Long
	out := make([]float32, frame.SamplesPerGranule)
	out[0] = 1
	out[long[17]] = 1 // pretab[17] = 3

	dequantize(hdr, g, &sf, out)

	approx(t, out[0], 1, "out[0]")
	approx(t, out[long[17]], math.Pow(2, -1.5), "high band sample")
}

func TestDequantizeShortSubblockGain(t *testing.T) {
	hdr := &frame.Header{SampleRate: 44100}
	g := &frame.Granule{
		BlockType:       frame.BlockShort,
		WindowSwitching: true,
		GlobalGain:      210,
		SubblockGain:    [3]uint8{0, 1, 0},
	}
	var sf granuleScalefactors

	// Band 0 is 4 lines wide; samples 0-3 belong to window 0 and
	// samples 4-7 to window 1.
	out := make([]float32, frame.SamplesPerGranule)
	out[0] = 1
	out[5] = 1

	dequantize(hdr, g, &sf, out)

	approx(t, out[0], 1, "window 0 sample")
	approx(t, out[5], 0.25, "window 1 sample") // 2^(-2*1)
}
