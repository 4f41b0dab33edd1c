package logging

import (
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"testing"
)

// Format selects the wire shape of log output.
type Format string

const (
	// FormatText renders human-readable lines for terminal use.
	FormatText Format = "text"
	// FormatJSON renders one JSON object per record for log collectors.
	FormatJSON Format = "json"
)

// Config describes the logger to build.
type Config struct {
	// Level is the minimum record level; lower records are dropped.
	Level slog.Level
	// Format selects text or JSON output. Unknown values fall back to
	// text.
	Format Format
	// Output receives the records. Nil means os.Stderr.
	Output io.Writer
}

// New builds a logger from cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(NewHandler(out, opts))
}

// Discard returns a logger that drops every record, for quiet mode.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(math.MaxInt),
	}))
}

// tlog adapts a testing.T to io.Writer so handler output lands in the
// test log instead of stderr.
type tlog struct {
	t *testing.T
}

func (w *tlog) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// ForTest returns a text logger at trace level whose output surfaces
// only for failed tests or under -v. Per-frame records are kept, so a
// failing decode test shows the full walk.
func ForTest(t *testing.T) *slog.Logger {
	t.Helper()
	return New(Config{
		Level:  LevelTrace,
		Output: &tlog{t: t},
	})
}
