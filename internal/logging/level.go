package logging

import "log/slog"

// LevelTrace is a custom level below Debug for very chatty output,
// such as per-frame decode records.
const LevelTrace = slog.LevelDebug - 4

// LevelFromVerbosity maps a -v flag count to a slog level.
//
//	0: Info (default)
//	1: Debug
//	2+: Trace
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelInfo
	case v == 1:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}
