package mp3

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestProbe(t *testing.T) {
	data := silentStream(5)

	format, err := Probe(data)
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}

	if format.Channels != 1 {
		t.Errorf("Channels = %d, want 1", format.Channels)
	}
	if format.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", format.SampleRate)
	}
	if format.Bitrate != 128000 {
		t.Errorf("Bitrate = %d, want 128000", format.Bitrate)
	}
	if want := 5 * SamplesPerFrame; format.Samples != want {
		t.Errorf("Samples = %d, want %d", format.Samples, want)
	}
}

func TestProbeDetectsStereo(t *testing.T) {
	// One stereo frame among mono frames flips the channel count.
	stereo := make([]byte, 144*128000/44100)
	copy(stereo, []byte{0xFF, 0xFB, 0x90, 0x00})

	data := append(silentStream(2), stereo...)

	format, err := Probe(data)
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if format.Channels != 2 {
		t.Errorf("Channels = %d, want 2", format.Channels)
	}
}

func TestProbeEmpty(t *testing.T) {
	format, err := Probe(nil)
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if format.Samples != 0 {
		t.Errorf("Samples = %d, want 0", format.Samples)
	}
}

func TestID3v2Size(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want int
		err  error
	}{
		{
			name: "no tag",
			data: silentFrame(),
			want: 0,
		},
		{
			name: "syncsafe size",
			data: []byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0x02, 0x01},
			want: 10 + 0x101,
		},
		{
			name: "all size bytes",
			data: []byte{'I', 'D', '3', 4, 0, 0, 0x01, 0x02, 0x03, 0x04},
			want: 10 + 1<<21 + 2<<14 + 3<<7 + 4,
		},
		{
			name: "short data",
			data: []byte{'I', 'D', '3'},
			err:  ErrShortBuffer,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ID3v2Size(tt.data)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("got error %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ID3v2Size: %v", err)
			}
			if got != tt.want {
				t.Errorf("size = %d, want %d", got, tt.want)
			}
		})
	}
}
