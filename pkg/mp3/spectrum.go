package mp3

import (
	"github.com/aikumo/baremp3/pkg/mp3/internal/frame"
	"github.com/aikumo/baremp3/pkg/mp3/internal/huffman"
	"github.com/aikumo/baremp3/pkg/mp3/internal/reservoir"
)

// decodeSpectrum reads one granule's Huffman-coded spectral lines.
// part2Start is the reservoir bit position where the granule's
// scalefactors began; part2_3_length bounds the count1 region and the
// reader is left at that boundary regardless of where decoding ended.
func decodeSpectrum(r *reservoir.Buffer, hdr *frame.Header, g *frame.Granule,
	part2Start uint64, out []float32) {

	part3End := (part2Start + uint64(g.Part23Length)) % reservoir.SizeBits

	// True while pos lies inside the granule's bit span, which may
	// wrap around the reservoir end.
	inPart3 := func(pos uint64) bool {
		if part3End >= part2Start {
			return pos >= part2Start && pos < part3End
		}
		return pos >= part2Start || pos < part3End
	}

	// Region boundaries in sample indices. Short blocks have a fixed
	// region0 of 36 samples and no region2.
	region1Start := 36
	region2Start := frame.SamplesPerGranule
	if !(g.BlockType == frame.BlockShort && g.WindowSwitching) {
		long := &frame.Bands(hdr.SampleRate).Long
		region1Start = long[bandIndex(int(g.Region0Count)+1)]
		region2Start = long[bandIndex(int(g.Region0Count)+1+int(g.Region1Count)+1)]
	}

	bigValues := 2 * int(g.BigValues)
	if bigValues > frame.SamplesPerGranule {
		bigValues = frame.SamplesPerGranule
	}
	for i := 0; i < bigValues; i += 2 {
		table := g.TableSelect[0]
		switch {
		case i >= region2Start:
			table = g.TableSelect[2]
		case i >= region1Start:
			table = g.TableSelect[1]
		}
		x, y := huffman.DecodePair(int(table), r)
		out[i] = float32(x)
		out[i+1] = float32(y)
	}

	i := bigValues
	pos := r.Tell()
	for i < frame.SamplesPerGranule && inPart3(pos) {
		v, w, x, y := huffman.DecodeQuad(int(g.Count1Table), r)
		out[i] = float32(v)
		out[i+1] = float32(w)
		if i+2 < frame.SamplesPerGranule {
			out[i+2] = float32(x)
			out[i+3] = float32(y)
		}
		i += 4
		pos = r.Tell()
	}

	// The last quadruple may have read past part2_3_length; drop it.
	if i > bigValues && pos != part3End && !inPart3(pos) {
		i -= 4
	}

	if i < frame.SamplesPerGranule {
		clear(out[i:])
	}

	if pos != part3End {
		r.Seek(part3End)
	}
}

// bandIndex clamps a long band table index to the table bounds.
func bandIndex(i int) int {
	if i > frame.BandsLong-1 {
		return frame.BandsLong - 1
	}
	return i
}
