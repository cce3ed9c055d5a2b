package orderedset

import "iter"

type (
	// Operand is any finite collection that can take part in set algebra:
	// another OrderedSet, a Slice, a HashSet or a bare Seq of values.
	// Set algebra may range an operand more than once, so All must be
	// restartable.
	Operand[T comparable] interface {
		All() iter.Seq[T]
	}

	// Sequence marks operands whose iteration order is part of their
	// contract; Equal compares element by element against a Sequence and
	// by membership against everything else
	Sequence[T comparable] interface {
		Operand[T]
		InOrder() iter.Seq[T]
	}

	Container[T comparable] interface {
		Has(item T) bool
	}

	Sized interface {
		Len() int
	}
)

// Slice adapts a plain slice to the operand protocol
type Slice[T comparable] []T

var _ Sequence[int] = Slice[int](nil)
var _ Container[int] = Slice[int](nil)
var _ Sized = Slice[int](nil)

func (s Slice[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s {
			if !yield(item) {
				return
			}
		}
	}
}

func (s Slice[T]) InOrder() iter.Seq[T] {
	return s.All()
}

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) Has(item T) bool {
	for _, v := range s {
		if v == item {
			return true
		}
	}
	return false
}

// Seq adapts a bare iterator to the operand protocol. The underlying
// iterator must be re-rangeable: symmetric difference ranges its operand
// twice, and a single-use iterator yields nothing on the second pass.
// Nothing marks a bare iterator as ordered, so a Seq is not a Sequence and
// compares by membership only.
type Seq[T comparable] iter.Seq[T]

var _ Operand[int] = Seq[int](nil)

func (q Seq[T]) All() iter.Seq[T] {
	return iter.Seq[T](q)
}
