// Package wav writes decoded PCM to RIFF/WAVE files and reads them
// back for comparison.
package wav

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/aikumo/baremp3/pkg/pcm"
)

// Encode writes samples per channel of planar float32 PCM as an
// integer WAV stream of the given bit depth.
func Encode(w io.WriteSeeker, channels [][]float32, samples, sampleRate, bitDepth int) error {
	data, err := pcm.Interleave(channels, samples, bitDepth)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, len(channels), 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: len(channels),
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return errors.Wrap(err, "writing WAV data")
	}
	return errors.Wrap(enc.Close(), "finalizing WAV file")
}

// Decode reads a whole WAV file into planar float32 channels scaled
// to [-1, 1).
func Decode(r io.ReadSeeker) (channels [][]float32, sampleRate int, err error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, errors.New("not a WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, errors.Wrap(err, "reading WAV data")
	}

	numCh := buf.Format.NumChannels
	if numCh < 1 {
		return nil, 0, errors.New("WAV file without channels")
	}
	depth := int(dec.BitDepth)
	scale := float32(int64(1) << (depth - 1))

	samples := len(buf.Data) / numCh
	channels = make([][]float32, numCh)
	for ch := range channels {
		channels[ch] = make([]float32, samples)
		for i := 0; i < samples; i++ {
			channels[ch][i] = float32(buf.Data[i*numCh+ch]) / scale
		}
	}

	return channels, buf.Format.SampleRate, nil
}
