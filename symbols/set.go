// SPDX-License-Identifier: MIT
// Package symbols provides the symbol-set type shared by edge labels and
// builder alphabets.
//
// A Set keeps the first-insertion order of its members and silently ignores
// duplicates, so printing a label or iterating an alphabet is reproducible
// across runs. Storage is a gods linkedhashset; this file adds the typed
// surface on top of its interface{} API.
//
// Sets are not safe for concurrent mutation.
package symbols

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Set is an insertion-ordered, duplicate-free collection of symbols.
// The zero value is not usable; construct with New.
type Set[T comparable] struct {
	inner *linkedhashset.Set
}

// New returns a Set holding values in first-occurrence order.
// Complexity: O(len(values)).
func New[T comparable](values ...T) *Set[T] {
	s := &Set[T]{inner: linkedhashset.New()}
	s.Add(values...)

	return s
}

// Add inserts values that are not yet members. Existing members keep their position.
func (s *Set[T]) Add(values ...T) {
	for _, v := range values {
		s.inner.Add(v)
	}
}

// Contains reports whether v is a member.
func (s *Set[T]) Contains(v T) bool {
	if s == nil {
		return false
	}

	return s.inner.Contains(v)
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}

	return s.inner.Size()
}

// Values returns the members in insertion order. The slice is a fresh copy.
func (s *Set[T]) Values() []T {
	if s == nil {
		return nil
	}
	raw := s.inner.Values()
	out := make([]T, len(raw))
	for i, v := range raw {
		out[i] = v.(T)
	}

	return out
}

// Clone returns an independent copy with the same order.
func (s *Set[T]) Clone() *Set[T] {
	return New(s.Values()...)
}

// Union returns a new Set with the members of s followed by the members of
// other that s does not contain.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	out := s.Clone()
	out.Add(other.Values()...)

	return out
}

// Complement returns the members of alphabet that s does not contain,
// in alphabet order.
func (s *Set[T]) Complement(alphabet *Set[T]) *Set[T] {
	out := New[T]()
	for _, v := range alphabet.Values() {
		if !s.Contains(v) {
			out.Add(v)
		}
	}

	return out
}

// Intersects reports whether s and other share at least one member.
func (s *Set[T]) Intersects(other *Set[T]) bool {
	for _, v := range s.Values() {
		if other.Contains(v) {
			return true
		}
	}

	return false
}

// Equal reports whether s and other hold the same members, ignoring order.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, v := range s.Values() {
		if !other.Contains(v) {
			return false
		}
	}

	return true
}
