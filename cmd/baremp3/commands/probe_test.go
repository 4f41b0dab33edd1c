package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/aikumo/baremp3/internal/errors"
)

// silentFrame is one complete 128 kbps, 44.1 kHz mono frame with
// zeroed side information and main data.
func silentFrame() []byte {
	const frameLen = 144 * 128000 / 44100
	data := make([]byte, frameLen)
	copy(data, []byte{0xFF, 0xFB, 0x90, 0xC0})
	return data
}

// writeStream writes n silent frames to a temp file and returns its path.
func writeStream(t *testing.T, n int) string {
	t.Helper()
	var buf bytes.Buffer
	for i := 0; i < n; i++ {
		buf.Write(silentFrame())
	}
	path := filepath.Join(t.TempDir(), "input.mp3")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestProbeCommand_Metadata(t *testing.T) {
	if probeCmd.Use != "probe INPUT..." {
		t.Errorf("Use = %q, want %q", probeCmd.Use, "probe INPUT...")
	}
	if probeCmd.Flags().Lookup("format") == nil {
		t.Error("--format flag should be defined")
	}
}

func TestRunProbe_Table(t *testing.T) {
	path := writeStream(t, 3)

	var buf bytes.Buffer
	if err := runProbe(&buf, []string{path}); err != nil {
		t.Fatalf("runProbe() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"FILE", path, "44100 Hz", "128 kbps"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestRunProbe_JSON(t *testing.T) {
	path := writeStream(t, 2)

	probeFormat = "json"
	defer func() { probeFormat = "table" }()

	var buf bytes.Buffer
	if err := runProbe(&buf, []string{path}); err != nil {
		t.Fatalf("runProbe() error = %v", err)
	}

	var infos []probeInfo
	if err := json.Unmarshal(buf.Bytes(), &infos); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
	}
	if len(infos) != 1 {
		t.Fatalf("got %d entries, want 1", len(infos))
	}
	if infos[0].Frames != 2 {
		t.Errorf("Frames = %d, want 2", infos[0].Frames)
	}
	if infos[0].SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", infos[0].SampleRate)
	}
	if infos[0].Channels != 1 {
		t.Errorf("Channels = %d, want 1", infos[0].Channels)
	}
}

func TestRunProbe_YAML(t *testing.T) {
	path := writeStream(t, 1)

	probeFormat = "yaml"
	defer func() { probeFormat = "table" }()

	var buf bytes.Buffer
	if err := runProbe(&buf, []string{path}); err != nil {
		t.Fatalf("runProbe() error = %v", err)
	}
	if !strings.Contains(buf.String(), "sample_rate: 44100") {
		t.Errorf("output missing sample rate:\n%s", buf.String())
	}
}

func TestRunProbe_TOML(t *testing.T) {
	path := writeStream(t, 1)

	probeFormat = "toml"
	defer func() { probeFormat = "table" }()

	var buf bytes.Buffer
	if err := runProbe(&buf, []string{path}); err != nil {
		t.Fatalf("runProbe() error = %v", err)
	}
	if !strings.Contains(buf.String(), "[[streams]]") {
		t.Errorf("output missing streams table:\n%s", buf.String())
	}
}

func TestRunProbe_UnknownFormat(t *testing.T) {
	path := writeStream(t, 1)

	probeFormat = "xml"
	defer func() { probeFormat = "table" }()

	var buf bytes.Buffer
	err := runProbe(&buf, []string{path})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error type = %T, want *errors.ExitError", err)
	}
	if exitErr.Code != errors.ExitUser {
		t.Errorf("Code = %d, want %d", exitErr.Code, errors.ExitUser)
	}
}

func TestRunProbe_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := runProbe(&buf, []string{filepath.Join(t.TempDir(), "absent.mp3")})
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error type = %T, want *errors.ExitError", err)
	}
	if exitErr.Code != errors.ExitSystem {
		t.Errorf("Code = %d, want %d", exitErr.Code, errors.ExitSystem)
	}
}

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}
