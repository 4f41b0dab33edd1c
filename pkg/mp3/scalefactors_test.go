package mp3

import (
	"testing"

	"github.com/aikumo/baremp3/pkg/mp3/internal/frame"
	"github.com/aikumo/baremp3/pkg/mp3/internal/reservoir"
)

func onesReservoir(bytes int) *reservoir.Buffer {
	var r reservoir.Buffer
	data := make([]byte, bytes)
	for i := range data {
		data[i] = 0xFF
	}
	r.Put(data)
	return &r
}

func TestDecodeScalefactorsLong(t *testing.T) {
	// scalefac_compress 15: slen1 = 4, slen2 = 3. All-ones input makes
	// the decoded widths directly visible.
	g := &frame.Granule{BlockType: frame.BlockNormal, ScalefacCompress: 15}
	r := onesReservoir(16)

	var scfsi [4]bool
	sf := decodeScalefactors(r, g, false, &scfsi, nil)

	for sfb := 0; sfb < 11; sfb++ {
		if sf.long[sfb] != 15 {
			t.Errorf("long[%d] = %d, want 15", sfb, sf.long[sfb])
		}
	}
	for sfb := 11; sfb < 21; sfb++ {
		if sf.long[sfb] != 7 {
			t.Errorf("long[%d] = %d, want 7", sfb, sf.long[sfb])
		}
	}
	if want := uint64(11*4 + 10*3); r.Tell() != want {
		t.Errorf("consumed %d bits, want %d", r.Tell(), want)
	}
}

func TestDecodeScalefactorsScfsiSharing(t *testing.T) {
	g := &frame.Granule{BlockType: frame.BlockNormal, ScalefacCompress: 15}
	r := onesReservoir(16)

	var first granuleScalefactors
	for i := range first.long {
		first.long[i] = 3
	}

	scfsi := [4]bool{true, false, true, false}
	sf := decodeScalefactors(r, g, true, &scfsi, &first)

	// Groups 0 (bands 0-5) and 2 (bands 11-15) come from the first
	// granule, the others from the stream.
	for sfb := 0; sfb < 6; sfb++ {
		if sf.long[sfb] != 3 {
			t.Errorf("long[%d] = %d, want shared 3", sfb, sf.long[sfb])
		}
	}
	for sfb := 6; sfb < 11; sfb++ {
		if sf.long[sfb] != 15 {
			t.Errorf("long[%d] = %d, want 15", sfb, sf.long[sfb])
		}
	}
	for sfb := 11; sfb < 16; sfb++ {
		if sf.long[sfb] != 3 {
			t.Errorf("long[%d] = %d, want shared 3", sfb, sf.long[sfb])
		}
	}
	for sfb := 16; sfb < 21; sfb++ {
		if sf.long[sfb] != 7 {
			t.Errorf("long[%d] = %d, want 7", sfb, sf.long[sfb])
		}
	}
}

func TestDecodeScalefactorsShort(t *testing.T) {
	g := &frame.Granule{
		BlockType:        frame.BlockShort,
		WindowSwitching:  true,
		ScalefacCompress: 15,
	}
	r := onesReservoir(20)

	var scfsi [4]bool
	sf := decodeScalefactors(r, g, false, &scfsi, nil)

	for win := 0; win < 3; win++ {
		for sfb := 0; sfb < 6; sfb++ {
			if sf.short[win][sfb] != 15 {
				t.Errorf("short[%d][%d] = %d, want 15", win, sfb, sf.short[win][sfb])
			}
		}
		for sfb := 6; sfb < 12; sfb++ {
			if sf.short[win][sfb] != 7 {
				t.Errorf("short[%d][%d] = %d, want 7", win, sfb, sf.short[win][sfb])
			}
		}
		if sf.short[win][12] != 0 {
			t.Errorf("short[%d][12] = %d, want 0", win, sf.short[win][12])
		}
	}
	if want := uint64(18*4 + 18*3); r.Tell() != want {
		t.Errorf("consumed %d bits, want %d", r.Tell(), want)
	}
}

func TestDecodeScalefactorsMixed(t *testing.T) {
	g := &frame.Granule{
		BlockType:        frame.BlockShort,
		WindowSwitching:  true,
		MixedBlock:       true,
		ScalefacCompress: 15,
	}
	r := onesReservoir(24)

	var scfsi [4]bool
	sf := decodeScalefactors(r, g, false, &scfsi, nil)

	for sfb := 0; sfb < 8; sfb++ {
		if sf.long[sfb] != 15 {
			t.Errorf("long[%d] = %d, want 15", sfb, sf.long[sfb])
		}
	}
	for win := 0; win < 3; win++ {
		for sfb := 0; sfb < 6; sfb++ {
			if sf.short[win][sfb] != 15 {
				t.Errorf("short[%d][%d] = %d, want 15", win, sfb, sf.short[win][sfb])
			}
		}
		for sfb := 6; sfb < 12; sfb++ {
			if sf.short[win][sfb] != 7 {
				t.Errorf("short[%d][%d] = %d, want 7", win, sfb, sf.short[win][sfb])
			}
		}
	}
	if want := uint64(8*4 + 18*4 + 18*3); r.Tell() != want {
		t.Errorf("consumed %d bits, want %d", r.Tell(), want)
	}
}
