// Package wire implements the byte-level codec shared by every command
// decoder and encoder: the 12-byte packet header and a typed buffer
// accessor with big-endian integers, fixed-point scalars, bitfields and
// zero-padded strings.
package wire

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrOutOfRange is returned by an accessor when the requested field would
// read or write past the end of the buffer.
var ErrOutOfRange = errors.New("wire: offset out of range")

// Buffer is a fixed-capacity byte array with typed accessors. It has no
// notion of "used length" beyond its capacity — callers track how many
// bytes of a Buffer are meaningful; Buffer only guards against accessing
// memory it does not own.
type Buffer struct {
	buf []byte
}

// NewBuffer allocates a zeroed Buffer of the given capacity.
func NewBuffer(size int) *Buffer {
	return &Buffer{buf: make([]byte, size)}
}

// WrapBuffer wraps an existing byte slice without copying it.
func WrapBuffer(b []byte) *Buffer {
	return &Buffer{buf: b}
}

// Bytes returns the underlying storage.
func (b *Buffer) Bytes() []byte { return b.buf }

// Len returns the buffer's capacity.
func (b *Buffer) Len() int { return len(b.buf) }

// Reset zeroes the buffer in place.
func (b *Buffer) Reset() {
	for i := range b.buf {
		b.buf[i] = 0
	}
}

func (b *Buffer) bounds(offset, width int) error {
	if offset < 0 || offset+width > len(b.buf) {
		return errors.Wrapf(ErrOutOfRange, "offset=%d width=%d len=%d", offset, width, len(b.buf))
	}
	return nil
}

// U8 reads an unsigned 8-bit integer.
func (b *Buffer) U8(offset int) uint8 {
	if b.bounds(offset, 1) != nil {
		return 0
	}
	return b.buf[offset]
}

// SetU8 writes an unsigned 8-bit integer.
func (b *Buffer) SetU8(offset int, v uint8) {
	if b.bounds(offset, 1) != nil {
		return
	}
	b.buf[offset] = v
}

// S8 reads a signed 8-bit integer.
func (b *Buffer) S8(offset int) int8 { return int8(b.U8(offset)) }

// SetS8 writes a signed 8-bit integer.
func (b *Buffer) SetS8(offset int, v int8) { b.SetU8(offset, uint8(v)) }

// U16 reads a big-endian unsigned 16-bit integer.
func (b *Buffer) U16(offset int) uint16 {
	if b.bounds(offset, 2) != nil {
		return 0
	}
	return binary.BigEndian.Uint16(b.buf[offset:])
}

// SetU16 writes a big-endian unsigned 16-bit integer.
func (b *Buffer) SetU16(offset int, v uint16) {
	if b.bounds(offset, 2) != nil {
		return
	}
	binary.BigEndian.PutUint16(b.buf[offset:], v)
}

// S16 reads a big-endian signed 16-bit integer.
func (b *Buffer) S16(offset int) int16 { return int16(b.U16(offset)) }

// SetS16 writes a big-endian signed 16-bit integer.
func (b *Buffer) SetS16(offset int, v int16) { b.SetU16(offset, uint16(v)) }

// U32 reads a big-endian unsigned 32-bit integer.
func (b *Buffer) U32(offset int) uint32 {
	if b.bounds(offset, 4) != nil {
		return 0
	}
	return binary.BigEndian.Uint32(b.buf[offset:])
}

// SetU32 writes a big-endian unsigned 32-bit integer.
func (b *Buffer) SetU32(offset int, v uint32) {
	if b.bounds(offset, 4) != nil {
		return
	}
	binary.BigEndian.PutUint32(b.buf[offset:], v)
}

// S32 reads a big-endian signed 32-bit integer.
func (b *Buffer) S32(offset int) int32 { return int32(b.U32(offset)) }

// SetS32 writes a big-endian signed 32-bit integer.
func (b *Buffer) SetS32(offset int, v int32) { b.SetU32(offset, uint32(v)) }

// U64 reads a big-endian unsigned 64-bit integer.
func (b *Buffer) U64(offset int) uint64 {
	if b.bounds(offset, 8) != nil {
		return 0
	}
	return binary.BigEndian.Uint64(b.buf[offset:])
}

// SetU64 writes a big-endian unsigned 64-bit integer.
func (b *Buffer) SetU64(offset int, v uint64) {
	if b.bounds(offset, 8) != nil {
		return
	}
	binary.BigEndian.PutUint64(b.buf[offset:], v)
}

// S64 reads a big-endian signed 64-bit integer.
func (b *Buffer) S64(offset int) int64 { return int64(b.U64(offset)) }

// SetS64 writes a big-endian signed 64-bit integer.
func (b *Buffer) SetS64(offset int, v int64) { b.SetU64(offset, uint64(v)) }

// Flag8 reads an individual bit out of the U8 at offset.
func (b *Buffer) Flag8(offset int, bit uint) bool {
	return b.U8(offset)&(1<<bit) != 0
}

// SetFlag8 sets an individual bit in the U8 at offset, leaving the others
// untouched.
func (b *Buffer) SetFlag8(offset int, bit uint) {
	b.SetU8(offset, b.U8(offset)|(1<<bit))
}

// Float16 reads a fixed-point scalar stored as an unsigned 16-bit integer,
// value = raw/factor.
func (b *Buffer) Float16(offset int, factor float64) float64 {
	return float64(b.U16(offset)) / factor
}

// SetFloat16 writes value*factor, truncated, into an unsigned 16-bit
// integer.
func (b *Buffer) SetFloat16(offset int, factor, value float64) {
	b.SetU16(offset, uint16(int64(value*factor)))
}

// SignedFloat16 reads a fixed-point scalar stored as a signed 16-bit
// integer.
func (b *Buffer) SignedFloat16(offset int, factor float64) float64 {
	return float64(b.S16(offset)) / factor
}

// SetSignedFloat16 writes value*factor, truncated, into a signed 16-bit
// integer.
func (b *Buffer) SetSignedFloat16(offset int, factor, value float64) {
	b.SetS16(offset, int16(int64(value*factor)))
}

// Float8 reads a fixed-point scalar stored as an unsigned 8-bit integer.
func (b *Buffer) Float8(offset int, factor float64) float64 {
	return float64(b.U8(offset)) / factor
}

// SetFloat8 writes value*factor, truncated, into an unsigned 8-bit integer.
func (b *Buffer) SetFloat8(offset int, factor, value float64) {
	b.SetU8(offset, uint8(int64(value*factor)))
}

// Float32 reads a fixed-point scalar stored as an unsigned 32-bit integer.
func (b *Buffer) Float32(offset int, factor float64) float64 {
	return float64(b.U32(offset)) / factor
}

// SetFloat32 writes value*factor, truncated, into an unsigned 32-bit
// integer.
func (b *Buffer) SetFloat32(offset int, factor, value float64) {
	b.SetU32(offset, uint32(int64(value*factor)))
}

// SignedFloat32 reads a fixed-point scalar stored as a signed 32-bit
// integer.
func (b *Buffer) SignedFloat32(offset int, factor float64) float64 {
	return float64(b.S32(offset)) / factor
}

// SetSignedFloat32 writes value*factor, truncated, into a signed 32-bit
// integer.
func (b *Buffer) SetSignedFloat32(offset int, factor, value float64) {
	b.SetS32(offset, int32(int64(value*factor)))
}

// String reads a NUL-terminated (or field-width-truncated) UTF-8 string of
// at most width bytes.
func (b *Buffer) String(offset, width int) string {
	if b.bounds(offset, width) != nil {
		return ""
	}
	end := offset
	stop := offset + width
	for end < stop && b.buf[end] != 0 {
		end++
	}
	return string(b.buf[offset:end])
}

// SetString writes value into a zero-padded field of the given width,
// truncating if value is too long.
func (b *Buffer) SetString(offset, width int, value string) {
	if b.bounds(offset, width) != nil {
		return
	}
	n := copy(b.buf[offset:offset+width], value)
	for i := offset + n; i < offset+width; i++ {
		b.buf[i] = 0
	}
}
