// Package digester provides ready-made Digestible implementations for
// common value shapes. The numeric digesters use the order-preserving
// encodings from the encoding package, so comparator order tracks numeric
// order, sign boundary included.
package digester

import (
	"github.com/go-leo/digest"
	"github.com/go-leo/digest/encoding"
)

// Bytes wraps a byte slice as a Digestible. The slice is copied at
// construction so later mutation of p cannot break digest determinism.
func Bytes(p []byte) digest.Digestible {
	buf := make([]byte, len(p))
	copy(buf, p)
	return raw(buf)
}

// String wraps a string as a Digestible of its UTF-8 bytes.
func String(s string) digest.Digestible {
	return raw(s)
}

// Uint64 wraps an unsigned integer as an order-preserving Digestible.
func Uint64(v uint64) digest.Digestible {
	return raw(encoding.Uint(v))
}

// Int64 wraps a signed integer as an order-preserving Digestible.
func Int64(v int64) digest.Digestible {
	return raw(encoding.Int(v))
}

// Float64 wraps a float as an order-preserving Digestible.
func Float64(v float64) digest.Digestible {
	return raw(encoding.Float(v))
}

// Bool wraps a bool, false ordering before true.
func Bool(v bool) digest.Digestible {
	return raw(encoding.Bool(v))
}

type raw []byte

func (r raw) Digest() []byte {
	return []byte(r)
}
