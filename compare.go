package digest

import (
	"golang.org/x/exp/slices"
)

// Compare obtains both values' digests and orders them lexicographically.
// The two operands need not share a concrete type, only the Digestible
// capability; comparing values from unrelated domains yields a result that
// is well defined but semantically meaningless, which is the caller's
// responsibility to avoid.
func Compare(a, b Digestible) Comparison {
	return CompareBytes(a.Digest(), b.Digest())
}

// CompareBytes orders two digest buffers lexicographically. Bytes are
// compared as unsigned magnitudes from index 0; the first differing byte
// decides. If one buffer is a strict prefix of the other, the shorter
// buffer orders first. Two empty buffers are Equal.
func CompareBytes(a, b []byte) Comparison {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return LessThan
			}
			return GreaterThan
		}
	}
	switch {
	case len(a) < len(b):
		return LessThan
	case len(a) > len(b):
		return GreaterThan
	default:
		return Equal
	}
}

// Equals reports whether the two digests are byte-identical.
func Equals(a, b Digestible) bool {
	return Compare(a, b) == Equal
}

// Less reports whether a orders strictly before b.
func Less(a, b Digestible) bool {
	return Compare(a, b) == LessThan
}

// Order is a three-way ordering function over Digestible values, suitable
// for sort and search helpers that expect an int comparison.
func Order(a, b Digestible) int {
	return int(Compare(a, b))
}

// Sort sorts s in ascending digest order.
func Sort[T Digestible](s []T) {
	slices.SortFunc(s, func(a, b T) bool { return Less(a, b) })
}

// Min returns the element of s with the smallest digest.
// It panics if s is empty.
func Min[T Digestible](s ...T) T {
	m := s[0]
	for _, v := range s[1:] {
		if Less(v, m) {
			m = v
		}
	}
	return m
}

// Max returns the element of s with the largest digest.
// It panics if s is empty.
func Max[T Digestible](s ...T) T {
	m := s[0]
	for _, v := range s[1:] {
		if Less(m, v) {
			m = v
		}
	}
	return m
}
