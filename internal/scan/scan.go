// Package scan walks the frame structure of a Layer III stream
// without decoding audio. Both probe and validate build on the same
// walk: probe summarizes it, validate grades its findings.
package scan

import "github.com/aikumo/baremp3/pkg/mp3"

// Record describes one frame encountered in the stream.
type Record struct {
	// Offset is the frame's byte offset from the start of the data.
	Offset int
	// HeaderSize covers sync offset, header, side information and CRC.
	HeaderSize int
	// MainDataSize is the frame's main data byte count.
	MainDataSize int
	// Bitrate is the frame's bitrate in bits per second.
	Bitrate int
	// SampleRate is the frame's sampling rate in Hz.
	SampleRate int
	// Channels is the frame's channel count.
	Channels int
	// Mode is the channel mode as a display string.
	Mode string
	// Protected reports whether the frame carries a CRC16.
	Protected bool
	// Truncated reports that the data ends before the frame's full
	// main data.
	Truncated bool
}

// Summary aggregates one stream walk.
type Summary struct {
	// ID3Size is the byte size of the leading ID3v2 tag, 0 if none.
	ID3Size int
	// Frames is the frame count.
	Frames int
	// Samples is the PCM sample count per channel.
	Samples int
	// SampleRate is the sampling rate of the last frame, in Hz.
	SampleRate int
	// Bitrate is the bitrate of the last frame, in bits per second.
	Bitrate int
	// Channels is 2 if any frame is two-channel.
	Channels int
	// BitrateSwitches counts frames whose bitrate differs from the
	// previous frame's.
	BitrateSwitches int
	// TrailingBytes counts bytes after the last complete frame.
	TrailingBytes int
}

// Duration returns the stream play time in seconds.
func (s *Summary) Duration() float64 {
	if s.SampleRate == 0 {
		return 0
	}
	return float64(s.Samples) / float64(s.SampleRate)
}

// Stream is the full result of a walk.
type Stream struct {
	Summary Summary
	Records []Record
}

// Walk parses every frame of data and collects records plus a
// summary. Parse failures end the walk; the error is reflected in the
// summary's trailing byte count and surfaced by Check.
func Walk(data []byte) *Stream {
	st := &Stream{
		Summary: Summary{Channels: 1},
	}

	pos := 0
	if size, err := mp3.ID3v2Size(data); err == nil {
		pos = size
		st.Summary.ID3Size = size
	}

	for pos < len(data) {
		rec, size, ok := parseOne(data, pos)
		if !ok {
			break
		}

		if st.Summary.Frames > 0 && rec.Bitrate != st.Summary.Bitrate {
			st.Summary.BitrateSwitches++
		}
		st.Summary.Frames++
		st.Summary.Samples += mp3.SamplesPerFrame
		st.Summary.SampleRate = rec.SampleRate
		st.Summary.Bitrate = rec.Bitrate
		if rec.Channels == 2 {
			st.Summary.Channels = 2
		}

		st.Records = append(st.Records, rec)
		pos += size
	}

	st.Summary.TrailingBytes = len(data) - pos
	return st
}

func parseOne(data []byte, pos int) (Record, int, bool) {
	headerSize, maindataSize, hdr, err := mp3.NextFrame(data[pos:])
	if err != nil {
		return Record{}, 0, false
	}

	return Record{
		Offset:       pos,
		HeaderSize:   headerSize,
		MainDataSize: maindataSize,
		Bitrate:      hdr.Bitrate,
		SampleRate:   hdr.SampleRate,
		Channels:     hdr.Channels(),
		Mode:         hdr.Mode.String(),
		Protected:    hdr.Protected,
		Truncated:    maindataSize < hdr.MainDataSize(),
	}, headerSize + maindataSize, true
}
