// Package sortedset is a sorted collection keyed by digest order. Elements
// only need the Digestible capability; the set never inspects their
// concrete types. Two elements whose digests are byte-identical are the
// same element.
package sortedset

import (
	"sync"

	"github.com/go-leo/gox/slicex"
	"golang.org/x/exp/slices"

	"github.com/go-leo/digest"
)

type Set[T digest.Digestible] struct {
	mu      sync.RWMutex
	entries []entry[T]
}

// entry caches the element's digest; elements are immutable for comparison
// purposes, so the cached key stays valid for the element's lifetime.
type entry[T digest.Digestible] struct {
	key []byte
	val T
}

func New[T digest.Digestible](opts ...Option) *Set[T] {
	o := newOption(opts...)
	return &Set[T]{entries: make([]entry[T], 0, o.Capacity)}
}

// Add inserts v, keeping the set ordered. If an element with the same
// digest is already present it is replaced. Add reports whether v was
// newly inserted.
func (s *Set[T]) Add(v T) bool {
	key := v.Digest()
	s.mu.Lock()
	defer s.mu.Unlock()
	i, found := s.search(key)
	if found {
		s.entries[i].val = v
		return false
	}
	s.entries = slices.Insert(s.entries, i, entry[T]{key: key, val: v})
	return true
}

// Contains reports whether an element with v's digest is present.
func (s *Set[T]) Contains(v T) bool {
	key := v.Digest()
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, found := s.search(key)
	return found
}

// Delete removes the element with v's digest and reports whether it was
// present.
func (s *Set[T]) Delete(v T) bool {
	key := v.Digest()
	s.mu.Lock()
	defer s.mu.Unlock()
	i, found := s.search(key)
	if !found {
		return false
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	return true
}

func (s *Set[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Min returns the element with the smallest digest.
func (s *Set[T]) Min() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if slicex.IsEmpty(s.entries) {
		var zero T
		return zero, false
	}
	return s.entries[0].val, true
}

// Max returns the element with the largest digest.
func (s *Set[T]) Max() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if slicex.IsEmpty(s.entries) {
		var zero T
		return zero, false
	}
	return s.entries[len(s.entries)-1].val, true
}

// Ascend calls fn for each element in ascending digest order until fn
// returns false. fn must not modify the set.
func (s *Set[T]) Ascend(fn func(v T) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if !fn(e.val) {
			return
		}
	}
}

// Slice returns the elements in ascending digest order.
func (s *Set[T]) Slice() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.val)
	}
	return out
}

func (s *Set[T]) search(key []byte) (int, bool) {
	return slices.BinarySearchFunc(s.entries, entry[T]{key: key}, func(a, b entry[T]) int {
		return int(digest.CompareBytes(a.key, b.key))
	})
}
