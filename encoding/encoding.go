// Package encoding builds digest buffers whose lexicographic byte order
// matches the semantic order of the encoded values.
//
// Fixed-width big-endian encodings of unsigned integers already sort
// correctly. Signed integers and floats do not: the two's-complement form
// of a negative number has its high bit set, so it sorts after every
// positive number. The encoders here apply the usual bit transforms so
// that the comparator's byte order tracks numeric order across the sign
// boundary.
package encoding

import (
	"encoding/binary"
	"math"

	"golang.org/x/exp/constraints"
)

const signBit = uint64(1) << 63

// Uint encodes an unsigned integer as 8 big-endian bytes.
func Uint[T constraints.Unsigned](v T) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(v))
	return buf
}

// Int encodes a signed integer as 8 big-endian bytes with the sign bit
// flipped, so negative values order before positive ones.
func Int[T constraints.Signed](v T) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(int64(v))^signBit)
	return buf
}

// Float encodes a float as 8 big-endian bytes ordered by numeric value:
// the sign bit is flipped for non-negative values and every bit is flipped
// for negative ones. NaN payloads have no meaningful order and sort
// arbitrarily among themselves.
func Float[T constraints.Float](v T) []byte {
	bits := math.Float64bits(float64(v))
	if bits&signBit == 0 {
		bits ^= signBit
	} else {
		bits = ^bits
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, bits)
	return buf
}

// Bool encodes false as 0x00 and true as 0x01.
func Bool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// Buffer accumulates encoded components into one digest buffer.
// Components are compared position by position, so two buffers built from
// the same component sequence order by the first component that differs.
// A variable-length component (String, Raw) must only be the final one;
// placed earlier it can blur component boundaries between buffers.
type Buffer struct {
	buf []byte
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// Uint appends an 8-byte big-endian unsigned integer.
func (b *Buffer) Uint(v uint64) *Buffer {
	b.buf = append(b.buf, Uint(v)...)
	return b
}

// Int appends an 8-byte sign-flipped signed integer.
func (b *Buffer) Int(v int64) *Buffer {
	b.buf = append(b.buf, Int(v)...)
	return b
}

// Float appends an 8-byte order-preserving float.
func (b *Buffer) Float(v float64) *Buffer {
	b.buf = append(b.buf, Float(v)...)
	return b
}

// Bool appends a single 0x00 or 0x01 byte.
func (b *Buffer) Bool(v bool) *Buffer {
	b.buf = append(b.buf, Bool(v)...)
	return b
}

// String appends the string's bytes verbatim. UTF-8 already sorts
// lexicographically by code point.
func (b *Buffer) String(s string) *Buffer {
	b.buf = append(b.buf, s...)
	return b
}

// Raw appends p verbatim.
func (b *Buffer) Raw(p []byte) *Buffer {
	b.buf = append(b.buf, p...)
	return b
}

// Bytes returns the accumulated buffer. The returned slice is owned by the
// caller; further appends to the Buffer do not alias it.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}
