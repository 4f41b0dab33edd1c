package frame

import (
	"testing"

	"github.com/cockroachdb/errors"
)

// header128Stereo is a 128kbps 44.1kHz stereo Layer III header with no
// CRC and no padding.
var header128Stereo = []byte{0xFF, 0xFB, 0x90, 0x00}

func TestParseHeader(t *testing.T) {
	h, err := ParseHeader(header128Stereo)
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}

	if h.Version != MPEG1 {
		t.Errorf("Version = %v, want MPEG1", h.Version)
	}
	if h.Layer != LayerIII {
		t.Errorf("Layer = %v, want LayerIII", h.Layer)
	}
	if h.Protected {
		t.Error("Protected = true, want false")
	}
	if h.Bitrate != 128_000 {
		t.Errorf("Bitrate = %d, want 128000", h.Bitrate)
	}
	if h.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", h.SampleRate)
	}
	if h.Mode != Stereo {
		t.Errorf("Mode = %v, want Stereo", h.Mode)
	}
	if h.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", h.Channels())
	}
}

func TestParseHeader_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short data", []byte{0xFF, 0xFB}},
		{"no sync", []byte{0x00, 0x00, 0x00, 0x00}},
		{"reserved layer", []byte{0xFF, 0xF9, 0x90, 0x00}},
		{"forbidden bitrate", []byte{0xFF, 0xFB, 0xF0, 0x00}},
		{"reserved sample rate", []byte{0xFF, 0xFB, 0x9C, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseHeader(tt.data); err == nil {
				t.Error("ParseHeader() should fail")
			}
		})
	}
}

func TestHeader_MainDataSize(t *testing.T) {
	tests := []struct {
		name string
		h    Header
		want int
	}{
		{
			name: "stereo 128k",
			h:    Header{Bitrate: 128_000, SampleRate: 44100, Mode: Stereo},
			want: 144*128_000/44100 - HeaderSize - SideInfoSizeStereo,
		},
		{
			name: "mono 128k",
			h:    Header{Bitrate: 128_000, SampleRate: 44100, Mode: Mono},
			want: 144*128_000/44100 - HeaderSize - SideInfoSizeMono,
		},
		{
			name: "padding adds a byte",
			h:    Header{Bitrate: 128_000, SampleRate: 44100, Mode: Mono, Padding: true},
			want: 144*128_000/44100 - HeaderSize - SideInfoSizeMono + 1,
		},
		{
			name: "crc subtracts two",
			h:    Header{Bitrate: 128_000, SampleRate: 44100, Mode: Mono, Protected: true},
			want: 144*128_000/44100 - HeaderSize - SideInfoSizeMono - 2,
		},
		{
			name: "48kHz 320k stereo",
			h:    Header{Bitrate: 320_000, SampleRate: 48000, Mode: JointStereo},
			want: 144*320_000/48000 - HeaderSize - SideInfoSizeStereo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.h.MainDataSize(); got != tt.want {
				t.Errorf("MainDataSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFindSync(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantPos int
		wantOK  bool
	}{
		{"at start", []byte{0xFF, 0xFB, 0x90, 0x00}, 0, true},
		{"after garbage", []byte{0x00, 0x12, 0xFF, 0xFA, 0x00}, 2, true},
		{"split nibble", []byte{0x0F, 0xFF, 0x00}, 0, false},
		{"absent", []byte{0x01, 0x02, 0x03, 0x04}, 0, false},
		{"too short", []byte{0xFF}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := FindSync(tt.data)
			if ok != tt.wantOK {
				t.Fatalf("FindSync() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && pos != tt.wantPos {
				t.Errorf("FindSync() pos = %d, want %d", pos, tt.wantPos)
			}
		})
	}
}

func TestModeExtension(t *testing.T) {
	if !ModeExtension(0x2).MSStereo() {
		t.Error("bit 1 should enable MS stereo")
	}
	if ModeExtension(0x2).IntensityStereo() {
		t.Error("bit 0 clear should disable intensity stereo")
	}
	if !ModeExtension(0x3).IntensityStereo() {
		t.Error("bit 0 should enable intensity stereo")
	}
}

func TestBands(t *testing.T) {
	for _, rate := range []int{44100, 48000, 32000} {
		bt := Bands(rate)
		if got := bt.Long[BandsLong-1]; got != SamplesPerGranule {
			t.Errorf("Bands(%d).Long end = %d, want %d", rate, got, SamplesPerGranule)
		}
		if got := bt.Short[BandsShort]; got != SamplesPerGranule/3 {
			t.Errorf("Bands(%d).Short end = %d, want %d", rate, got, SamplesPerGranule/3)
		}
		for i := 1; i < BandsLong; i++ {
			if bt.Long[i] <= bt.Long[i-1] {
				t.Errorf("Bands(%d).Long not increasing at %d", rate, i)
			}
		}
	}
}

func TestParseHeader_ErrorKind(t *testing.T) {
	_, err := ParseHeader([]byte{0x00, 0x00, 0x00, 0x00})
	if !errors.Is(err, ErrBadHeader) {
		t.Errorf("error = %v, want ErrBadHeader", err)
	}
}
