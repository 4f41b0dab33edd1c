package mp3

import "github.com/cockroachdb/errors"

// Format describes a stream as discovered by walking its frame
// headers without decoding audio.
type Format struct {
	// Channels is 2 if any frame is two-channel, else 1.
	Channels int
	// Samples is the PCM sample count per channel.
	Samples int
	// SampleRate is the sampling rate in Hz.
	SampleRate int
	// Bitrate is the bitrate of the last frame seen, in bits per
	// second. Streams may switch bitrates between frames.
	Bitrate int
}

// NextFrame parses the next frame's header and side information
// without decoding audio. headerSize covers everything before the
// main data, including any junk bytes skipped before the sync code;
// maindataSize is clamped to the data available. ErrNoSync means no
// further frame exists.
func NextFrame(data []byte) (headerSize, maindataSize int, hdr *FrameHeader, err error) {
	headerSize, maindataSize, hdr, _, err = frameInfo(data)
	return headerSize, maindataSize, hdr, err
}

// Probe walks every frame of the stream and reports its format. The
// walk stops cleanly when no further sync code exists; any other
// frame error is returned.
func Probe(data []byte) (*Format, error) {
	format := &Format{
		Channels:   1,
		SampleRate: 44100,
		Bitrate:    128000,
	}

	pos := 0
	if size, err := ID3v2Size(data); err == nil {
		pos = size
	}

	for pos < len(data) {
		headerSize, maindataSize, hdr, _, err := frameInfo(data[pos:])
		if err != nil {
			if errors.Is(err, ErrNoSync) {
				break
			}
			return nil, err
		}

		if hdr.Channels() == 2 {
			format.Channels = 2
		}
		format.SampleRate = hdr.SampleRate
		format.Bitrate = hdr.Bitrate
		format.Samples += SamplesPerFrame

		pos += headerSize + maindataSize
	}

	return format, nil
}
