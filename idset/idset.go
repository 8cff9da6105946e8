// Package idset provides a set whose membership is decided by a caller
// supplied identity function rather than by structural equality.
//
// A Set[T] projects each item to an int through id. Two items with the same
// projection are the same member, even if their other fields differ; the
// first value added wins. Iteration follows insertion order.
//
// Set is not safe for concurrent use.
package idset

import "github.com/zyedidia/generic/mapset"

// Set is an identity-keyed set with insertion-ordered iteration.
type Set[T any] struct {
	id    func(T) int
	keys  mapset.Set[int]
	items []T
}

// New returns an empty Set keyed by id. id must be deterministic and should
// be injective over the values the caller intends to store.
func New[T any](id func(T) int) *Set[T] {
	return &Set[T]{
		id:   id,
		keys: mapset.New[int](),
	}
}

// Add inserts item unless a member with the same identity exists.
// It reports whether the set changed.
func (s *Set[T]) Add(item T) bool {
	k := s.id(item)
	if s.keys.Has(k) {
		return false
	}
	s.keys.Put(k)
	s.items = append(s.items, item)
	return true
}

// Has reports whether a member with item's identity is present.
func (s *Set[T]) Has(item T) bool {
	return s.keys.Has(s.id(item))
}

// HasID reports whether a member with identity k is present.
func (s *Set[T]) HasID(k int) bool {
	return s.keys.Has(k)
}

// ID returns the identity s assigns to item.
func (s *Set[T]) ID(item T) int {
	return s.id(item)
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Items returns the members in insertion order. The slice is a copy.
func (s *Set[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Each calls fn for every member in insertion order.
func (s *Set[T]) Each(fn func(item T)) {
	for _, item := range s.items {
		fn(item)
	}
}
