package orderedset

// Equal reports whether s and other hold the same elements. A Sequence
// operand must match the insertion order element by element, duplicates
// included; any other operand is compared as unordered content.
func (s *OrderedSet[T]) Equal(other Operand[T]) bool {
	if other == nil {
		return false
	}
	if seq, ok := other.(Sequence[T]); ok {
		return s.equalSequence(seq)
	}
	return s.equalUnordered(other)
}

func (s *OrderedSet[T]) equalSequence(other Sequence[T]) bool {
	i := 0
	for item := range other.InOrder() {
		if i >= len(s.items) || s.items[i] != item {
			return false
		}
		i++
	}
	return i == len(s.items)
}

func (s *OrderedSet[T]) equalUnordered(other Operand[T]) bool {
	h := hashOf(other)
	if h.Len() != s.Len() {
		return false
	}
	for _, item := range s.items {
		if !h.Has(item) {
			return false
		}
	}
	return true
}
