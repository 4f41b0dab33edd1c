// Package mp3 decodes MPEG-1 Audio Layer III streams to float32 PCM.
//
// A Decoder is stateful: the bit reservoir and the synthesis filter
// memory persist across frames, so frames of one stream must be fed
// to one Decoder in order. DecodeAll drives the whole loop including
// ID3v2 skipping; DecodeFrame decodes a single frame for callers that
// manage the walk themselves.
package mp3

import (
	"github.com/cockroachdb/errors"

	"github.com/aikumo/baremp3/pkg/mp3/internal/frame"
	"github.com/aikumo/baremp3/pkg/mp3/internal/reservoir"
	"github.com/aikumo/baremp3/pkg/mp3/internal/synth"
)

// FrameHeader is a decoded frame header.
type FrameHeader = frame.Header

// SideInfo is the decoded side information of a frame.
type SideInfo = frame.SideInfo

// SamplesPerFrame is the PCM sample count per channel per frame.
const SamplesPerFrame = frame.SamplesPerFrame

// Decoder decodes a Layer III stream frame by frame.
type Decoder struct {
	reservoir     reservoir.Buffer
	synth         [frame.MaxChannels]synth.State
	maindataStart int
}

// NewDecoder returns a Decoder ready for the first frame of a stream.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Reset clears all cross-frame state, as before decoding a new stream
// or after a seek.
func (d *Decoder) Reset() {
	d.reservoir.Reset()
	for i := range d.synth {
		d.synth[i].Reset()
	}
	d.maindataStart = 0
}

// frameInfo locates and parses the next frame's fixed-layout parts.
// headerSize covers everything before the main data: sync offset,
// header, side information and the CRC16 when present. maindataSize
// is clamped to the data actually available.
func frameInfo(data []byte) (headerSize, maindataSize int, hdr *frame.Header, si *frame.SideInfo, err error) {
	pos, ok := frame.FindSync(data)
	if !ok {
		return 0, 0, nil, nil, ErrNoSync
	}

	hdr, err = frame.ParseHeader(data[pos:])
	if err != nil {
		return 0, 0, nil, nil, errors.Mark(err, ErrInvalidHeader)
	}
	if hdr.Bitrate == 0 {
		return 0, 0, nil, nil, errors.Wrap(ErrUnsupported, "free-format bitrate")
	}
	headerSize = pos + frame.HeaderSize

	si, err = frame.ParseSideInfo(hdr, data[headerSize:])
	if err != nil {
		if errors.Is(err, frame.ErrUnsupported) {
			return 0, 0, nil, nil, errors.Mark(err, ErrUnsupported)
		}
		return 0, 0, nil, nil, errors.Mark(err, ErrInvalidSideInfo)
	}
	headerSize += hdr.SideInfoSize()

	if hdr.Protected {
		// The CRC16 is skipped, not verified.
		headerSize += 2
	}

	maindataSize = hdr.MainDataSize()
	if avail := len(data) - headerSize; avail < maindataSize {
		// A truncated protected frame can leave avail negative when the
		// CRC bytes themselves are missing.
		maindataSize = max(avail, 0)
	}

	return headerSize, maindataSize, hdr, si, nil
}

// DecodeFrame decodes the next frame found in data into pcm, one
// slice of at least SamplesPerFrame samples per channel. It returns
// the byte count consumed from data. ErrNoSync means no further frame
// exists.
func (d *Decoder) DecodeFrame(data []byte, pcm [][]float32) (int, *FrameHeader, error) {
	headerSize, maindataSize, hdr, si, err := frameInfo(data)
	if err != nil {
		return 0, nil, err
	}

	if len(pcm) < hdr.Channels() {
		return 0, nil, errors.Wrapf(ErrShortBuffer,
			"%d channel buffers for a %s frame", len(pcm), hdr.Mode)
	}
	for ch := 0; ch < hdr.Channels(); ch++ {
		if len(pcm[ch]) < frame.SamplesPerFrame {
			return 0, nil, errors.Wrapf(ErrShortBuffer,
				"channel %d holds %d samples, need %d", ch, len(pcm[ch]), frame.SamplesPerFrame)
		}
	}

	d.reservoir.Put(data[headerSize : headerSize+maindataSize])
	d.decodeMainData(hdr, si, pcm)

	return headerSize + maindataSize, hdr, nil
}

// decodeMainData consumes one frame's worth of reservoir bits and
// fills pcm with time samples.
func (d *Decoder) decodeMainData(hdr *frame.Header, si *frame.SideInfo, pcm [][]float32) {
	d.reservoir.AlignByte()

	// main_data_begin points back from the end of the previous
	// frame's main data; work out how many stale bytes to discard.
	prevEnd := int(d.reservoir.Tell() / 8)
	offset := prevEnd + int(si.MainDataBegin)

	var discard int
	if d.maindataStart >= offset {
		discard = d.maindataStart - offset
	} else {
		if reservoir.Size+d.maindataStart < offset {
			// The reservoir no longer holds the required history.
			// Emit silence instead of failing the stream.
			for ch := 0; ch < hdr.Channels(); ch++ {
				clear(pcm[ch][:frame.SamplesPerFrame])
			}
			d.maindataStart = wrapStart(d.maindataStart + hdr.MainDataSize())
			return
		}
		discard = reservoir.Size + d.maindataStart - offset
	}
	d.reservoir.Skip(uint64(discard) * 8)

	d.maindataStart = wrapStart(d.maindataStart + hdr.MainDataSize())

	channels := hdr.Channels()
	var sf [frame.MaxChannels][frame.GranulesPerFrame]granuleScalefactors

	for gr := 0; gr < frame.GranulesPerFrame; gr++ {
		for ch := 0; ch < channels; ch++ {
			g := &si.Channels[ch].Granules[gr]
			out := pcm[ch][gr*frame.SamplesPerGranule : (gr+1)*frame.SamplesPerGranule]

			part2Start := d.reservoir.Tell()

			sf[ch][gr] = decodeScalefactors(&d.reservoir, g,
				gr == frame.GranulesPerFrame-1, &si.Channels[ch].Scfsi, &sf[ch][0])

			decodeSpectrum(&d.reservoir, hdr, g, part2Start, out)

			dequantize(hdr, g, &sf[ch][gr], out)
		}
	}

	states := make([]*synth.State, channels)
	for ch := range states {
		states[ch] = &d.synth[ch]
	}
	synth.Process(hdr, si, states, pcm[:channels])
}

// wrapStart keeps the main data start offset inside the reservoir.
func wrapStart(pos int) int {
	if pos > reservoir.Size {
		pos -= reservoir.Size
	}
	return pos
}

// DecodeAll resets the decoder, skips a leading ID3v2 tag and decodes
// every frame into out, one slice per channel. A mono stream fills
// only out[0]. It returns the bytes consumed and the samples produced
// per channel.
func (d *Decoder) DecodeAll(data []byte, out [][]float32) (consumed, samples int, err error) {
	d.Reset()

	if len(out) == 0 {
		return 0, 0, errors.Wrap(ErrShortBuffer, "no output channels")
	}
	channels := 1
	if len(out) >= 2 && len(out[1]) > 0 {
		channels = 2
	}

	pos, err := ID3v2Size(data)
	if err != nil {
		return 0, 0, err
	}

	var scratch [frame.MaxChannels][frame.SamplesPerFrame]float32
	pcm := [][]float32{scratch[0][:], scratch[1][:]}

	for pos < len(data) {
		size, _, err := d.DecodeFrame(data[pos:], pcm)
		if err != nil {
			if errors.Is(err, ErrNoSync) {
				break
			}
			return pos, samples, err
		}

		for ch := 0; ch < channels; ch++ {
			if samples+frame.SamplesPerFrame > len(out[ch]) {
				return pos, samples, errors.Wrapf(ErrShortBuffer,
					"channel %d full after %d samples", ch, samples)
			}
			copy(out[ch][samples:], scratch[ch][:])
		}
		pos += size
		samples += frame.SamplesPerFrame
	}

	return pos, samples, nil
}
