package orderedset

import (
	"iter"
	"maps"
)

// HashSet is the unordered companion of OrderedSet, used when only
// membership matters
type HashSet[T comparable] struct {
	m map[T]struct{}
}

var _ Operand[int] = (*HashSet[int])(nil)
var _ Container[int] = (*HashSet[int])(nil)
var _ Sized = (*HashSet[int])(nil)

func NewHashSet[T comparable](items ...T) *HashSet[T] {
	s := &HashSet[T]{m: make(map[T]struct{}, len(items))}
	for _, item := range items {
		s.m[item] = struct{}{}
	}
	return s
}

func CollectHashSet[T comparable](seq iter.Seq[T]) *HashSet[T] {
	s := &HashSet[T]{m: make(map[T]struct{})}
	for item := range seq {
		s.m[item] = struct{}{}
	}
	return s
}

func (s *HashSet[T]) Add(item T) (added bool) {
	if _, found := s.m[item]; found {
		return false
	}
	s.m[item] = struct{}{}
	return true
}

func (s *HashSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *HashSet[T]) Discard(item T) (removed bool) {
	if _, found := s.m[item]; !found {
		return false
	}
	delete(s.m, item)
	return true
}

func (s *HashSet[T]) Len() int {
	return len(s.m)
}

// Items returns the elements in unspecified order
func (s *HashSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	for item := range s.m {
		items = append(items, item)
	}
	return items
}

func (s *HashSet[T]) All() iter.Seq[T] {
	return maps.Keys(s.m)
}

func (s *HashSet[T]) Clone() *HashSet[T] {
	return &HashSet[T]{m: maps.Clone(s.m)}
}

func (s *HashSet[T]) Equal(other *HashSet[T]) bool {
	if other == nil || len(s.m) != len(other.m) {
		return false
	}
	for item := range s.m {
		if _, ok := other.m[item]; !ok {
			return false
		}
	}
	return true
}
