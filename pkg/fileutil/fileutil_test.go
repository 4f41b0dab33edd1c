package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadFileWithLimit(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "small.bin")
	want := []byte{0xFF, 0xFB, 0x90, 0x00}
	if err := os.WriteFile(path, want, 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFileWithLimit(path)
	if err != nil {
		t.Fatalf("ReadFileWithLimit() error = %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("ReadFileWithLimit() = %x, want %x", got, want)
	}
}

func TestReadFileWithLimit_Missing(t *testing.T) {
	if _, err := ReadFileWithLimit(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestAtomicWriteFailureKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.wav")

	if err := os.WriteFile(path, []byte("RIFF"), 0o644); err != nil {
		t.Fatal(err)
	}

	wantErr := os.ErrInvalid
	err := AtomicWrite(path, 0o644, func(f *os.File) error {
		if _, err := f.Write([]byte("partial")); err != nil {
			t.Fatal(err)
		}
		return wantErr
	})
	if err != wantErr {
		t.Fatalf("AtomicWrite() error = %v, want %v", err, wantErr)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "RIFF" {
		t.Errorf("content = %q, want original %q", data, "RIFF")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.wav")

	if err := AtomicWriteFile(path, []byte("RIFF"), 0o644); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "RIFF" {
		t.Errorf("content = %q, want %q", data, "RIFF")
	}

	// Overwrite should replace, not append.
	if err := AtomicWriteFile(path, []byte("RIFX"), 0o644); err != nil {
		t.Fatalf("AtomicWriteFile() overwrite error = %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "RIFX" {
		t.Errorf("content after overwrite = %q, want %q", data, "RIFX")
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}
