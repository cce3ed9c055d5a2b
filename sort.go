package orderedset

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// SortBy - sorts a clone of the collection and returns it
func (s *OrderedSet[T]) SortBy(less func(a, b T) bool) *OrderedSet[T] {
	return s.Clone().SortInPlaceBy(less)
}

// SortInPlaceBy - sorts the collection in place, stably, and rebinds every
// element to its new position
func (s *OrderedSet[T]) SortInPlaceBy(less func(a, b T) bool) *OrderedSet[T] {
	sort.SliceStable(s.items, func(i, j int) bool {
		return less(s.items[i], s.items[j])
	})
	for i, item := range s.items {
		s.index[item] = i
	}
	return s
}

// Sorted builds a set from the elements of op in ascending order
func Sorted[T constraints.Ordered](op Operand[T]) *OrderedSet[T] {
	return Collect(op.All()).SortInPlaceBy(func(a, b T) bool {
		return a < b
	})
}
