package frame

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"github.com/icza/bitio"
)

// ParseSideInfo decodes the side information block following the header
// (and CRC, when present). Only MPEG-1 layouts are supported; MPEG-2
// streams use a different side information format and are rejected.
func ParseSideInfo(h *Header, data []byte) (*SideInfo, error) {
	if h.Version != MPEG1 {
		return nil, errors.Wrap(ErrUnsupported, "MPEG-2 side information")
	}
	if len(data) < h.SideInfoSize() {
		return nil, ErrShortData
	}

	nch := h.Channels()
	r := bitio.NewReader(bytes.NewReader(data[:h.SideInfoSize()]))

	var si SideInfo

	begin, _ := r.ReadBits(9)
	si.MainDataBegin = uint16(begin)

	// Mono frames have 5 private bits, stereo frames 3.
	privateBits := uint8(3)
	if nch == 1 {
		privateBits = 5
	}
	private, _ := r.ReadBits(privateBits)
	si.PrivateBits = uint8(private)

	for ch := 0; ch < nch; ch++ {
		for i := 0; i < 4; i++ {
			si.Channels[ch].Scfsi[i], _ = r.ReadBool()
		}
	}

	for gr := 0; gr < GranulesPerFrame; gr++ {
		for ch := 0; ch < nch; ch++ {
			g := &si.Channels[ch].Granules[gr]

			v, _ := r.ReadBits(12)
			g.Part23Length = uint16(v)
			v, _ = r.ReadBits(9)
			g.BigValues = uint16(v)
			if int(g.BigValues)*2 > SamplesPerGranule {
				return nil, errors.Wrap(ErrBadSideInfo, "big_values exceeds granule")
			}
			v, _ = r.ReadBits(8)
			g.GlobalGain = uint8(v)
			v, _ = r.ReadBits(4)
			g.ScalefacCompress = uint8(v)
			g.WindowSwitching, _ = r.ReadBool()

			if g.WindowSwitching {
				v, _ = r.ReadBits(2)
				// A normal block never signals window switching.
				if v == 0 {
					return nil, errors.Wrap(ErrBadSideInfo, "switched block with normal type")
				}
				g.BlockType = BlockType(v)

				g.MixedBlock, _ = r.ReadBool()
				for i := 0; i < 2; i++ {
					v, _ = r.ReadBits(5)
					g.TableSelect[i] = uint8(v)
				}
				for i := 0; i < 3; i++ {
					v, _ = r.ReadBits(3)
					g.SubblockGain[i] = uint8(v)
				}

				// Region boundaries are implicit for switched blocks.
				if g.BlockType == BlockShort && !g.MixedBlock {
					g.Region0Count = 8
				} else {
					g.Region0Count = 7
				}
				g.Region1Count = 20 - g.Region0Count
			} else {
				g.BlockType = BlockNormal
				for i := 0; i < 3; i++ {
					v, _ = r.ReadBits(5)
					g.TableSelect[i] = uint8(v)
				}
				v, _ = r.ReadBits(4)
				g.Region0Count = uint8(v)
				v, _ = r.ReadBits(3)
				g.Region1Count = uint8(v)
			}

			g.Preflag, _ = r.ReadBool()
			v, _ = r.ReadBits(1)
			g.ScalefacScale = uint8(v)
			v, err := r.ReadBits(1)
			if err != nil {
				return nil, errors.Wrap(ErrBadSideInfo, "truncated side information")
			}
			g.Count1Table = uint8(v)
		}
	}

	return &si, nil
}
