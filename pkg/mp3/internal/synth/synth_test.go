package synth

import (
	"math"
	"testing"

	"github.com/aikumo/baremp3/pkg/mp3/internal/frame"
)

func TestMidSide(t *testing.T) {
	mid := []float32{float32(math.Sqrt2), 0, float32(math.Sqrt2)}
	side := []float32{0, float32(math.Sqrt2), float32(-math.Sqrt2)}

	midSide(mid, side)

	wantL := []float32{1, 1, 0}
	wantR := []float32{1, -1, 2}
	for i := range wantL {
		if math.Abs(float64(mid[i]-wantL[i])) > 1e-6 {
			t.Errorf("left[%d] = %v, want %v", i, mid[i], wantL[i])
		}
		if math.Abs(float64(side[i]-wantR[i])) > 1e-6 {
			t.Errorf("right[%d] = %v, want %v", i, side[i], wantR[i])
		}
	}
}

func TestReorder(t *testing.T) {
	bands := frame.Bands(44100)

	// Tag each sample with band*10000 + window*1000 + line so the
	// permutation is visible.
	x := make([]float32, frame.SamplesPerGranule)
	for b := 0; b < frame.BandsShort; b++ {
		start := bands.Short[b] * 3
		width := bands.Short[b+1] - bands.Short[b]
		for win := 0; win < 3; win++ {
			for l := 0; l < width; l++ {
				x[start+win*width+l] = float32(b*10000 + win*1000 + l)
			}
		}
	}

	reorder(bands, false, x)

	for b := 0; b < frame.BandsShort; b++ {
		start := bands.Short[b] * 3
		width := bands.Short[b+1] - bands.Short[b]
		for l := 0; l < width; l++ {
			for win := 0; win < 3; win++ {
				want := float32(b*10000 + win*1000 + l)
				got := x[start+l*3+win]
				if got != want {
					t.Fatalf("band %d line %d window %d: got %v, want %v",
						b, l, win, got, want)
				}
			}
		}
	}
}

func TestReorderMixedKeepsLongBands(t *testing.T) {
	bands := frame.Bands(44100)

	x := make([]float32, frame.SamplesPerGranule)
	for i := range x {
		x[i] = float32(i)
	}

	reorder(bands, true, x)

	for i := 0; i < 36; i++ {
		if x[i] != float32(i) {
			t.Errorf("long region sample %d moved: got %v", i, x[i])
		}
	}
}

func TestAntialiasShortBlockUntouched(t *testing.T) {
	g := &frame.Granule{BlockType: frame.BlockShort}

	x := make([]float32, frame.SamplesPerGranule)
	for i := range x {
		x[i] = float32(i%7) - 3
	}
	want := append([]float32(nil), x...)

	antialias(g, x)

	for i := range x {
		if x[i] != want[i] {
			t.Fatalf("sample %d changed on a short block", i)
		}
	}
}

func TestAntialiasPreservesButterflyEnergy(t *testing.T) {
	g := &frame.Granule{BlockType: frame.BlockNormal}

	x := make([]float32, frame.SamplesPerGranule)
	for i := range x {
		x[i] = float32(math.Sin(float64(i) * 0.37))
	}
	var before float64
	for _, v := range x {
		before += float64(v) * float64(v)
	}

	antialias(g, x)

	var after float64
	for _, v := range x {
		after += float64(v) * float64(v)
	}
	if math.Abs(before-after) > 1e-3 {
		t.Errorf("energy changed: %v -> %v", before, after)
	}
}

func TestImdctFlushesOverlap(t *testing.T) {
	in := make([]float32, slotsPerGranule)

	var prev, out [slotsPerGranule]float32
	for i := range prev {
		prev[i] = float32(i + 1)
	}

	imdct(frame.BlockNormal, in, &prev, &out)

	for i := range out {
		if out[i] != float32(i+1) {
			t.Errorf("out[%d] = %v, want %v", i, out[i], float32(i+1))
		}
		if prev[i] != 0 {
			t.Errorf("prev[%d] = %v after zero input", i, prev[i])
		}
	}
}

func TestPolyphaseSilence(t *testing.T) {
	var fifo [fifoSize]float32
	var slot [subBands]float32
	out := make([]float32, subBands)

	polyphase(&fifo, &slot, out)

	for i, v := range out {
		if v != 0 {
			t.Errorf("out[%d] = %v on silence", i, v)
		}
	}
}

func TestProcessSilence(t *testing.T) {
	hdr := &frame.Header{
		Version:    frame.MPEG1,
		Layer:      frame.LayerIII,
		SampleRate: 44100,
		Mode:       frame.Mono,
	}
	si := &frame.SideInfo{}
	states := []*State{{}, {}}

	pcm := [][]float32{make([]float32, frame.SamplesPerFrame)}
	Process(hdr, si, states, pcm)

	for i, v := range pcm[0] {
		if v != 0 {
			t.Fatalf("sample %d = %v on silent input", i, v)
		}
	}
}

func TestProcessImpulseProducesOutput(t *testing.T) {
	hdr := &frame.Header{
		Version:    frame.MPEG1,
		Layer:      frame.LayerIII,
		SampleRate: 44100,
		Mode:       frame.Mono,
	}
	si := &frame.SideInfo{}
	states := []*State{{}, {}}

	pcm := [][]float32{make([]float32, frame.SamplesPerFrame)}
	pcm[0][0] = 1

	Process(hdr, si, states, pcm)

	var peak float64
	for _, v := range pcm[0] {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatal("non-finite sample")
		}
		if a := math.Abs(float64(v)); a > peak {
			peak = a
		}
	}
	if peak < 1e-6 {
		t.Error("impulse produced silence")
	}
}

func TestWindowReferenceTaps(t *testing.T) {
	taps := []struct {
		i    int
		want float32
	}{
		{0, 0},
		{1, -0.000015259},
		{32, -0.000442505},
		{64, 0.003250122},
		{96, -0.007003784},
		{128, 0.031082153},
		{160, -0.078628540},
		{192, 0.100311279},
		{224, -0.572036743},
		{255, -1.144287109},
		{256, 1.144989014},
		{511, 0.000015259},
	}
	for _, tt := range taps {
		if got := window[tt.i]; got != tt.want {
			t.Errorf("window[%d] = %.9f, want %.9f", tt.i, got, tt.want)
		}
	}
}

func TestWindowFolding(t *testing.T) {
	// The table is the even-symmetric prototype with every other 64-tap
	// block negated, so mirrored taps match up to a sign that flips
	// except at block boundaries.
	for i := 1; i < 256; i++ {
		want := -window[i]
		if i%64 == 0 {
			want = window[i]
		}
		if window[512-i] != want {
			t.Errorf("window[%d] = %.9f, want %.9f", 512-i, window[512-i], want)
		}
	}
	if peak := window[256]; peak < 1 {
		t.Errorf("centre tap %.9f, want the prototype peak above 1", peak)
	}
}

func TestStateReset(t *testing.T) {
	var st State
	st.overlap[3][4] = 1
	st.fifo[99] = 1

	st.Reset()

	if st.overlap[3][4] != 0 || st.fifo[99] != 0 {
		t.Error("Reset left state behind")
	}
}
