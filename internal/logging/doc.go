// Package logging provides structured logging for the baremp3 CLI on
// top of [log/slog].
//
// Terminal runs get a colorized text handler, --log-format=json swaps
// in a JSON handler, and --log-file tees records to a JSON file via
// [NewMultiHandler]. [LevelTrace] sits below Debug for per-frame decode
// records.
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Output: os.Stderr,
//	})
//	logger.Info("decoding", "input", "talk.mp3")
//
// Tests use [ForTest] so handler output lands in the test log and
// surfaces only on failure:
//
//	func TestDecode(t *testing.T) {
//		logger := logging.ForTest(t)
//		...
//	}
//
// [Discard] suppresses output entirely, as under --quiet.
package logging
