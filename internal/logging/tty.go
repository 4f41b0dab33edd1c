package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether w is wired to a terminal. Writers exposing a
// file descriptor are inspected; anything else never is one.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether ANSI color output is appropriate for
// w: a terminal, no NO_COLOR in the environment (https://no-color.org)
// and a TERM other than "dumb".
func SupportsColor(w io.Writer) bool {
	return supportsColor(IsTTY(w))
}

func supportsColor(tty bool) bool {
	if !tty {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}
