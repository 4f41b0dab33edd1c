package mp3

import "github.com/cockroachdb/errors"

// Decode errors.
var (
	// ErrNoSync means no frame sync code remains in the data.
	ErrNoSync = errors.New("no sync code found")

	// ErrInvalidHeader marks an unparseable frame header.
	ErrInvalidHeader = errors.New("invalid frame header")

	// ErrInvalidSideInfo marks unparseable side information.
	ErrInvalidSideInfo = errors.New("invalid side information")

	// ErrUnsupported marks a stream outside MPEG-1 Layer III.
	ErrUnsupported = errors.New("unsupported stream")

	// ErrShortBuffer means the caller's buffers cannot hold the
	// decoded output.
	ErrShortBuffer = errors.New("output buffer too small")
)
