package frame

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"github.com/icza/bitio"
)

const (
	syncCode     = 0xFFF
	syncCodeBits = 12
)

// Parse errors.
var (
	// ErrShortData indicates the input is too small to hold the
	// structure being parsed.
	ErrShortData = errors.New("not enough data")

	// ErrBadHeader indicates a header with the sync word absent or a
	// reserved field value.
	ErrBadHeader = errors.New("invalid frame header")

	// ErrBadSideInfo indicates malformed side information.
	ErrBadSideInfo = errors.New("invalid side information")

	// ErrUnsupported indicates a stream feature outside MPEG-1 Layer III.
	ErrUnsupported = errors.New("unsupported stream")
)

// bitrates holds the MPEG-1 Layer III bitrate table in bps. Index 0 is
// free format, index 15 is forbidden.
var bitrates = [15]int{
	0, 32_000, 40_000, 48_000, 56_000, 64_000, 80_000, 96_000,
	112_000, 128_000, 160_000, 192_000, 224_000, 256_000, 320_000,
}

// sampleRates holds the MPEG-1 sampling rate table in Hz.
var sampleRates = [3]int{44100, 48000, 32000}

// FindSync returns the byte offset of the first frame sync pattern in
// data, searching on byte boundaries. ok is false when no sync word is
// present.
func FindSync(data []byte) (pos int, ok bool) {
	const (
		shift   = 16 - syncCodeBits
		pattern = syncCode << shift
	)

	if len(data) < 2 {
		return 0, false
	}

	acc := uint32(data[0])
	for i := 1; i < len(data)-1; i++ {
		acc = (acc << 8) | uint32(data[i])
		if acc&pattern == pattern {
			return i - 1, true
		}
	}

	return 0, false
}

// ParseHeader decodes the 4-byte frame header at the start of data.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, ErrShortData
	}

	r := bitio.NewReader(bytes.NewReader(data[:HeaderSize]))

	sync, err := r.ReadBits(syncCodeBits)
	if err != nil || sync != syncCode {
		return nil, errors.Wrap(ErrBadHeader, "sync word")
	}

	var h Header

	version, _ := r.ReadBits(1)
	if version == 1 {
		h.Version = MPEG1
	} else {
		h.Version = MPEG2
	}

	layerBits, _ := r.ReadBits(2)
	if layerBits == 0 {
		return nil, errors.Wrap(ErrBadHeader, "reserved layer")
	}
	h.Layer = Layer(4 - layerBits)

	noCRC, _ := r.ReadBool()
	h.Protected = !noCRC

	bitrateIdx, _ := r.ReadBits(4)
	if bitrateIdx >= 15 {
		return nil, errors.Wrap(ErrBadHeader, "forbidden bitrate index")
	}
	h.Bitrate = bitrates[bitrateIdx]

	rateIdx, _ := r.ReadBits(2)
	if rateIdx >= 3 {
		return nil, errors.Wrap(ErrBadHeader, "reserved sampling rate")
	}
	h.SampleRate = sampleRates[rateIdx]

	h.Padding, _ = r.ReadBool()

	private, _ := r.ReadBits(1)
	h.Private = uint8(private)

	mode, _ := r.ReadBits(2)
	h.Mode = ChannelMode(mode)

	ext, _ := r.ReadBits(2)
	h.ModeExt = ModeExtension(ext)

	h.Copyright, _ = r.ReadBool()
	h.Original, _ = r.ReadBool()

	emphasis, err := r.ReadBits(2)
	if err != nil {
		return nil, errors.Wrap(ErrBadHeader, "truncated header")
	}
	h.Emphasis = Emphasis(emphasis)

	return &h, nil
}
