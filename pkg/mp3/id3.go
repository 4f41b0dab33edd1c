package mp3

import "github.com/cockroachdb/errors"

const id3v2HeaderSize = 10

// ID3v2Size returns the total byte size of a leading ID3v2 tag,
// header included, or 0 when the data does not start with one. The
// size field is syncsafe: 7 bits per byte.
func ID3v2Size(data []byte) (int, error) {
	if len(data) < id3v2HeaderSize {
		return 0, errors.Wrap(ErrShortBuffer, "data too short for an ID3v2 header")
	}

	if data[0] != 'I' || data[1] != 'D' || data[2] != '3' {
		return 0, nil
	}

	size := int(data[6])<<21 | int(data[7])<<14 | int(data[8])<<7 | int(data[9])
	return id3v2HeaderSize + size, nil
}
