// Package frame parses the fixed-layout parts of an MPEG-1 Layer III
// frame: the 4-byte header and the side information block.
package frame

// Stream layout constants.
const (
	// MaxChannels is the maximum channel count of a Layer III stream.
	MaxChannels = 2

	// SamplesPerFrame is the PCM sample count per channel per frame.
	SamplesPerFrame = 1152

	// GranulesPerFrame is the granule count per frame.
	GranulesPerFrame = 2

	// SamplesPerGranule is the PCM sample count per channel per granule.
	SamplesPerGranule = SamplesPerFrame / GranulesPerFrame

	// BandsLong is the scalefactor band count for long blocks.
	BandsLong = 23

	// BandsShort is the scalefactor band count for short blocks.
	BandsShort = 13

	// HeaderSize is the frame header size in bytes, sync word included.
	HeaderSize = 4

	// SideInfoSizeMono is the side information size for mono streams.
	SideInfoSizeMono = 17

	// SideInfoSizeStereo is the side information size for every
	// two-channel mode.
	SideInfoSizeStereo = 32
)

// Version is the MPEG audio version signaled in the header.
type Version int

const (
	// MPEG2 is low-sampling-frequency MPEG-2 audio. Parsed but not decoded.
	MPEG2 Version = iota
	// MPEG1 is the version this decoder supports.
	MPEG1
)

func (v Version) String() string {
	if v == MPEG1 {
		return "MPEG-1"
	}
	return "MPEG-2"
}

// Layer is the MPEG audio layer.
type Layer int

const (
	LayerI   Layer = 1
	LayerII  Layer = 2
	LayerIII Layer = 3
)

func (l Layer) String() string {
	switch l {
	case LayerI:
		return "Layer I"
	case LayerII:
		return "Layer II"
	case LayerIII:
		return "Layer III"
	}
	return "unknown layer"
}

// ChannelMode is the channel configuration of a frame.
type ChannelMode int

const (
	Stereo ChannelMode = iota
	JointStereo
	DualChannel
	Mono
)

func (m ChannelMode) String() string {
	switch m {
	case Stereo:
		return "stereo"
	case JointStereo:
		return "joint stereo"
	case DualChannel:
		return "dual channel"
	case Mono:
		return "mono"
	}
	return "unknown mode"
}

// Channels returns the channel count implied by the mode.
func (m ChannelMode) Channels() int {
	if m == Mono {
		return 1
	}
	return 2
}

// ModeExtension carries the two joint-stereo flag bits.
type ModeExtension uint8

// MSStereo reports whether mid/side stereo is enabled.
func (e ModeExtension) MSStereo() bool { return e&0x2 != 0 }

// IntensityStereo reports whether intensity stereo is enabled.
func (e ModeExtension) IntensityStereo() bool { return e&0x1 != 0 }

// Emphasis is the de-emphasis mode signaled in the header.
type Emphasis int

const (
	EmphasisNone Emphasis = iota
	Emphasis5015
	EmphasisReserved
	EmphasisCCITTJ17
)

func (e Emphasis) String() string {
	switch e {
	case EmphasisNone:
		return "none"
	case Emphasis5015:
		return "50/15 ms"
	case EmphasisCCITTJ17:
		return "CCITT J.17"
	}
	return "reserved"
}

// BlockType is the window type of a granule.
type BlockType int

const (
	BlockNormal BlockType = iota
	BlockStart
	BlockShort
	BlockStop
)

func (b BlockType) String() string {
	switch b {
	case BlockNormal:
		return "normal"
	case BlockStart:
		return "start"
	case BlockShort:
		return "short"
	case BlockStop:
		return "stop"
	}
	return "unknown block"
}

// Header is a decoded frame header.
type Header struct {
	// Version is the MPEG audio version.
	Version Version
	// Layer is the audio layer.
	Layer Layer
	// Protected reports whether a CRC16 follows the side information.
	Protected bool
	// Bitrate is the stream bitrate in bits per second.
	Bitrate int
	// SampleRate is the sampling rate in Hz.
	SampleRate int
	// Padding reports whether the frame carries one padding byte.
	Padding bool
	// Private is the application-defined header bit.
	Private uint8
	// Mode is the channel configuration.
	Mode ChannelMode
	// ModeExt holds the joint-stereo flags. Meaningful only when Mode
	// is JointStereo.
	ModeExt ModeExtension
	// Copyright reports the copyright header bit.
	Copyright bool
	// Original reports whether the stream is marked as an original.
	Original bool
	// Emphasis is the de-emphasis mode.
	Emphasis Emphasis
}

// Channels returns the decoded channel count of the frame.
func (h *Header) Channels() int { return h.Mode.Channels() }

// SideInfoSize returns the side information size in bytes.
func (h *Header) SideInfoSize() int {
	if h.Mode == Mono {
		return SideInfoSizeMono
	}
	return SideInfoSizeStereo
}

// MainDataSize returns the main data byte count carried by this frame.
// The frame length 144*bitrate/samplerate covers header, side
// information and an optional CRC16; those are subtracted here.
func (h *Header) MainDataSize() int {
	size := 144 * h.Bitrate / h.SampleRate

	size -= HeaderSize
	size -= h.SideInfoSize()

	if h.Padding {
		size++
	}
	if h.Protected {
		size -= 2
	}

	return size
}

// Granule is the per-granule, per-channel side information.
type Granule struct {
	// Part23Length is the bit count of scalefactors plus Huffman data.
	Part23Length uint16
	// BigValues is half the sample count of the big-value region.
	BigValues uint16
	// GlobalGain sets the quantizer step size.
	GlobalGain uint8
	// ScalefacCompress indexes the scalefactor bit-width table.
	ScalefacCompress uint8
	// WindowSwitching is set for start, short and stop blocks.
	WindowSwitching bool
	// BlockType is the window type.
	BlockType BlockType
	// MixedBlock keeps the two lowest subbands long in a short block.
	MixedBlock bool
	// TableSelect indexes the Huffman table per big-value region.
	TableSelect [3]uint8
	// SubblockGain is the per-window gain offset for short blocks.
	SubblockGain [3]uint8
	// Region0Count is the scalefactor band boundary of region 1.
	Region0Count uint8
	// Region1Count is the scalefactor band boundary of region 2.
	Region1Count uint8
	// Preflag enables the high-band pre-emphasis table.
	Preflag bool
	// ScalefacScale selects the scalefactor step, 0.5 or 1.
	ScalefacScale uint8
	// Count1Table selects the quadruple Huffman table.
	Count1Table uint8
}

// ChannelSideInfo is the side information of one channel.
type ChannelSideInfo struct {
	// Scfsi reports, per band group, whether granule 1 reuses the
	// scalefactors of granule 0.
	Scfsi [4]bool
	// Granules holds both granules of the frame.
	Granules [GranulesPerFrame]Granule
}

// SideInfo is the decoded side information of a frame.
type SideInfo struct {
	// MainDataBegin is the negative byte offset to the start of this
	// frame's main data in the bit reservoir.
	MainDataBegin uint16
	// PrivateBits are application-defined.
	PrivateBits uint8
	// Channels holds the per-channel side information.
	Channels [MaxChannels]ChannelSideInfo
}
