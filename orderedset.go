package orderedset

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/pkg/errors"
)

// OrderedSet keeps unique elements in their first-insertion order and binds
// every element to a contiguous 0-based position.
type OrderedSet[T comparable] struct {
	items []T
	index map[T]int
}

var _ Sequence[int] = (*OrderedSet[int])(nil)
var _ Container[int] = (*OrderedSet[int])(nil)
var _ Sized = (*OrderedSet[int])(nil)

func New[T comparable](items ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{
		items: make([]T, 0, len(items)),
		index: make(map[T]int, len(items)),
	}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func Collect[T comparable](seq iter.Seq[T]) *OrderedSet[T] {
	s := New[T]()
	for item := range seq {
		s.Add(item)
	}
	return s
}

func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

func (s *OrderedSet[T]) Has(item T) bool {
	_, ok := s.index[item]
	return ok
}

func (s *OrderedSet[T]) At(index int) (T, error) {
	if index < 0 || index >= len(s.items) {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d, len %d", index, len(s.items))
	}
	return s.items[index], nil
}

func (s *OrderedSet[T]) Index(item T) (int, error) {
	i, ok := s.index[item]
	if !ok {
		return 0, errors.Wrapf(ErrNotFound, "element %v", item)
	}
	return i, nil
}

// Add is idempotent and always returns the final index of item,
// whether it was just inserted or already there
func (s *OrderedSet[T]) Add(item T) int {
	if i, found := s.index[item]; found {
		return i
	}
	s.index[item] = len(s.items)
	s.items = append(s.items, item)
	return len(s.items) - 1
}

// Update adds every element of every operand, left to right, and returns
// the index of the last element processed
func (s *OrderedSet[T]) Update(operands ...Operand[T]) int {
	last := 0
	for _, op := range operands {
		for item := range op.All() {
			last = s.Add(item)
		}
	}
	return last
}

func (s *OrderedSet[T]) Pop() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	item := s.items[len(s.items)-1]
	s.items = slices.Delete(s.items, len(s.items)-1, len(s.items))
	delete(s.index, item)
	return item, nil
}

func (s *OrderedSet[T]) PopAt(index int) (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmpty
	}
	if index < 0 || index >= len(s.items) {
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d, len %d", index, len(s.items))
	}
	item := s.items[index]
	s.removeAt(index)
	return item, nil
}

func (s *OrderedSet[T]) Discard(item T) (removed bool) {
	i, found := s.index[item]
	if !found {
		return false
	}
	s.removeAt(i)
	return true
}

func (s *OrderedSet[T]) Remove(item T) error {
	if !s.Discard(item) {
		return errors.Wrapf(ErrNotFound, "element %v", item)
	}
	return nil
}

// ReplaceAt puts item at the given position. When item already lives at
// another position its old occurrence is removed first, so the set shrinks
// by one and the target position shifts down if the removal preceded it.
func (s *OrderedSet[T]) ReplaceAt(index int, item T) error {
	if index < 0 || index >= len(s.items) {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, len %d", index, len(s.items))
	}
	if old, found := s.index[item]; found {
		if old == index {
			return nil
		}
		s.removeAt(old)
		if old < index {
			index--
		}
	}
	delete(s.index, s.items[index])
	s.items[index] = item
	s.index[item] = index
	return nil
}

func (s *OrderedSet[T]) removeAt(i int) {
	delete(s.index, s.items[i])
	s.items = slices.Delete(s.items, i, i+1)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j]] = j
	}
}

func (s *OrderedSet[T]) reset(items []T) {
	s.items = items
	s.index = make(map[T]int, len(items))
	for i, item := range items {
		s.index[item] = i
	}
}

func (s *OrderedSet[T]) Clear() {
	s.items = nil
	s.index = make(map[T]int)
}

func (s *OrderedSet[T]) Clone() *OrderedSet[T] {
	return &OrderedSet[T]{
		items: slices.Clone(s.items),
		index: maps.Clone(s.index),
	}
}

func (s *OrderedSet[T]) Items() []T {
	items := make([]T, len(s.items))
	copy(items, s.items)
	return items
}

// All yields the elements in insertion order; the sequence is lazy and can
// be ranged over more than once
func (s *OrderedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(s.items); i++ {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// InOrder marks the set as a Sequence operand: iteration order is part of
// its contract
func (s *OrderedSet[T]) InOrder() iter.Seq[T] {
	return s.All()
}

func (s *OrderedSet[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if i >= len(s.items) {
				return
			}
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

func (s *OrderedSet[T]) ForEach(fn func(item T, index int)) {
	for i := 0; i < len(s.items); i++ {
		fn(s.items[i], i)
	}
}

// Filter returns a new set with the elements keep approves, in their
// original order
func (s *OrderedSet[T]) Filter(keep func(item T, index int) bool) *OrderedSet[T] {
	result := New[T]()
	for i, item := range s.items {
		if keep(item, i) {
			result.Add(item)
		}
	}
	return result
}

func (s *OrderedSet[T]) String() string {
	if len(s.items) == 0 {
		return "OrderedSet()"
	}
	return fmt.Sprintf("OrderedSet(%v)", s.items)
}
