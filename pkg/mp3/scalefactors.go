package mp3

import (
	"github.com/aikumo/baremp3/pkg/mp3/internal/frame"
	"github.com/aikumo/baremp3/pkg/mp3/internal/reservoir"
)

// slenTable gives the scalefactor bit widths (slen1, slen2) indexed by
// scalefac_compress.
var slenTable = [2][16]uint{
	{0, 0, 0, 0, 3, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4},
	{0, 1, 2, 3, 0, 1, 2, 3, 1, 2, 3, 1, 2, 3, 2, 3},
}

// Scalefactor band groups: the first two use slen1, the rest slen2.
// Long groups also bound the scfsi sharing regions.
var (
	longGroups  = [5]int{0, 6, 11, 16, 21}
	shortGroups = [3]int{0, 6, 12}
)

// granuleScalefactors holds one granule's decoded scalefactors in
// both layouts; only the one matching the block type is meaningful.
type granuleScalefactors struct {
	long  [frame.BandsLong]uint8
	short [3][frame.BandsShort]uint8
}

// decodeScalefactors reads one granule's scalefactors from the
// reservoir. For long blocks in the second granule, scfsi groups
// marked shared reuse the first granule's values instead of reading.
func decodeScalefactors(r *reservoir.Buffer, g *frame.Granule, secondGranule bool,
	scfsi *[4]bool, first *granuleScalefactors) granuleScalefactors {

	var sf granuleScalefactors
	slen1 := slenTable[0][g.ScalefacCompress]
	slen2 := slenTable[1][g.ScalefacCompress]

	if g.BlockType == frame.BlockShort && g.WindowSwitching {
		if g.MixedBlock {
			for sfb := 0; sfb < 8; sfb++ {
				sf.long[sfb] = uint8(r.ReadBits(slen1))
			}
			for sfb := 0; sfb < 6; sfb++ {
				for win := 0; win < 3; win++ {
					sf.short[win][sfb] = uint8(r.ReadBits(slen1))
				}
			}
			for sfb := 6; sfb < 12; sfb++ {
				for win := 0; win < 3; win++ {
					sf.short[win][sfb] = uint8(r.ReadBits(slen2))
				}
			}
			return sf
		}

		for i := 0; i < 2; i++ {
			slen := slen1
			if i == 1 {
				slen = slen2
			}
			for sfb := shortGroups[i]; sfb < shortGroups[i+1]; sfb++ {
				for win := 0; win < 3; win++ {
					sf.short[win][sfb] = uint8(r.ReadBits(slen))
				}
			}
		}
		// The last short band has no transmitted scalefactor.
		return sf
	}

	for i := 0; i < 4; i++ {
		if scfsi[i] && secondGranule {
			for sfb := longGroups[i]; sfb < longGroups[i+1]; sfb++ {
				sf.long[sfb] = first.long[sfb]
			}
			continue
		}
		slen := slen1
		if i >= 2 {
			slen = slen2
		}
		for sfb := longGroups[i]; sfb < longGroups[i+1]; sfb++ {
			sf.long[sfb] = uint8(r.ReadBits(slen))
		}
	}

	return sf
}
