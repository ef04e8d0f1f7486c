package specification

import (
	"github.com/go-leo/digest"
)

// EqualTo is satisfied by values whose digest equals v's.
func EqualTo[T digest.Digestible](v T) Specification[T] {
	return New[T](func(t T) bool {
		return digest.Compare(t, v) == digest.Equal
	})
}

// LessThan is satisfied by values ordering strictly before v.
func LessThan[T digest.Digestible](v T) Specification[T] {
	return New[T](func(t T) bool {
		return digest.Compare(t, v) == digest.LessThan
	})
}

// GreaterThan is satisfied by values ordering strictly after v.
func GreaterThan[T digest.Digestible](v T) Specification[T] {
	return New[T](func(t T) bool {
		return digest.Compare(t, v) == digest.GreaterThan
	})
}

// AtMost is satisfied by values ordering before or equal to v.
func AtMost[T digest.Digestible](v T) Specification[T] {
	return New[T](func(t T) bool {
		return digest.Compare(t, v) != digest.GreaterThan
	})
}

// AtLeast is satisfied by values ordering after or equal to v.
func AtLeast[T digest.Digestible](v T) Specification[T] {
	return New[T](func(t T) bool {
		return digest.Compare(t, v) != digest.LessThan
	})
}

// Between is satisfied by values in the closed interval [lo, hi].
func Between[T digest.Digestible](lo, hi T) Specification[T] {
	return And[T](AtLeast(lo), AtMost(hi))
}
