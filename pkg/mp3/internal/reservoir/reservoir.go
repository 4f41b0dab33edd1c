// Package reservoir implements the Layer III bit reservoir: a fixed
// ring buffer that frames append their main data to and that granule
// decoding reads from at bit granularity, possibly reaching back into
// bytes carried by earlier frames.
package reservoir

// Size is the reservoir capacity in bytes. 4096 comfortably covers the
// 511-byte maximum reach of main_data_begin plus the largest frame.
const Size = 4096

// SizeBits is the reservoir capacity in bits.
const SizeBits = Size * 8

// Buffer is the reservoir. Writes are byte-granular and reads are
// bit-granular; both wrap at the buffer end, including mid-read.
type Buffer struct {
	buf      [Size]byte
	writePos int
	// readPos is in bits.
	readPos uint64
}

// Reset clears the buffer and both positions.
func (b *Buffer) Reset() {
	for i := range b.buf {
		b.buf[i] = 0
	}
	b.writePos = 0
	b.readPos = 0
}

// Tell returns the current read position in bits.
func (b *Buffer) Tell() uint64 {
	return b.readPos
}

// Put appends data at the write position, wrapping at the buffer end.
func (b *Buffer) Put(data []byte) {
	n := len(data)

	if b.writePos+n > Size {
		tail := Size - b.writePos
		copy(b.buf[b.writePos:], data[:tail])
		copy(b.buf[:n-tail], data[tail:])
		b.writePos = n - tail
		return
	}

	copy(b.buf[b.writePos:b.writePos+n], data)
	b.writePos += n
}

// ReadBits reads n bits (n <= 32) MSB-first from the read position,
// wrapping at the buffer end.
func (b *Buffer) ReadBits(n uint) uint32 {
	var v uint32
	pos := b.readPos
	for i := uint(0); i < n; i++ {
		byteIdx := pos >> 3
		bit := (b.buf[byteIdx] >> (7 - (pos & 7))) & 1
		v = v<<1 | uint32(bit)
		pos++
		if pos == SizeBits {
			pos = 0
		}
	}
	b.readPos = pos
	return v
}

// ReadBool reads a single bit.
func (b *Buffer) ReadBool() bool {
	return b.ReadBits(1) != 0
}

// AlignByte advances the read position to the next byte boundary.
func (b *Buffer) AlignByte() {
	b.readPos = ((b.readPos + 7) >> 3) << 3
	b.readPos %= SizeBits
}

// Skip discards n bits.
func (b *Buffer) Skip(n uint64) {
	b.readPos = (b.readPos + n) % SizeBits
}

// Seek sets the read position to the given bit offset.
func (b *Buffer) Seek(pos uint64) {
	b.readPos = pos % SizeBits
}
