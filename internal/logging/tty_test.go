package logging

import (
	"bytes"
	"os"
	"testing"
)

func TestIsTTYPlainWriter(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("buffer reported as a terminal")
	}
}

func TestIsTTYPipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	if IsTTY(w) {
		t.Error("pipe reported as a terminal")
	}
}

func TestSupportsColor(t *testing.T) {
	tests := []struct {
		name    string
		tty     bool
		noColor bool
		term    string
		want    bool
	}{
		{"terminal", true, false, "xterm-256color", true},
		{"not a terminal", false, false, "xterm-256color", false},
		{"NO_COLOR set", true, true, "xterm-256color", false},
		{"dumb terminal", true, false, "dumb", false},
		{"empty TERM", true, false, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.noColor {
				t.Setenv("NO_COLOR", "1")
			} else {
				// Setenv registers the restore, Unsetenv makes
				// LookupEnv miss.
				t.Setenv("NO_COLOR", "")
				os.Unsetenv("NO_COLOR")
			}
			t.Setenv("TERM", tt.term)

			if got := supportsColor(tt.tty); got != tt.want {
				t.Errorf("supportsColor(%v) = %v, want %v", tt.tty, got, tt.want)
			}
		})
	}
}
