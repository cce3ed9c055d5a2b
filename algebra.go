package orderedset

// Union returns a new set with the receiver's elements followed by every
// not-yet-seen element of each operand, left to right
func (s *OrderedSet[T]) Union(operands ...Operand[T]) *OrderedSet[T] {
	result := s.Clone()
	result.Update(operands...)
	return result
}

// Intersection returns a new set with the receiver's elements present in
// every operand, in the receiver's order
func (s *OrderedSet[T]) Intersection(operands ...Operand[T]) *OrderedSet[T] {
	if len(operands) == 0 {
		return s.Clone()
	}
	within := containersOf(operands)
	result := New[T]()
	for _, item := range s.items {
		if inAll(item, within) {
			result.Add(item)
		}
	}
	return result
}

// Difference returns a new set with the receiver's elements found in none
// of the operands, in the receiver's order
func (s *OrderedSet[T]) Difference(operands ...Operand[T]) *OrderedSet[T] {
	if len(operands) == 0 {
		return s.Clone()
	}
	exclude := mergedHash(operands)
	result := New[T]()
	for _, item := range s.items {
		if !exclude.Has(item) {
			result.Add(item)
		}
	}
	return result
}

// SymmetricDifference returns the elements found on exactly one side:
// receiver-only elements in receiver order, then operand-only elements in
// operand order
func (s *OrderedSet[T]) SymmetricDifference(other Operand[T]) *OrderedSet[T] {
	h := hashOf(other)
	result := New[T]()
	for _, item := range s.items {
		if !h.Has(item) {
			result.Add(item)
		}
	}
	for item := range other.All() {
		if !s.Has(item) {
			result.Add(item)
		}
	}
	return result
}

func (s *OrderedSet[T]) IsSubset(other Operand[T]) bool {
	if sized, ok := other.(Sized); ok && s.Len() > sized.Len() {
		return false
	}
	within := containerOf(other)
	for _, item := range s.items {
		if !within.Has(item) {
			return false
		}
	}
	return true
}

func (s *OrderedSet[T]) IsSuperset(other Operand[T]) bool {
	for item := range other.All() {
		if !s.Has(item) {
			return false
		}
	}
	return true
}

func (s *OrderedSet[T]) IsDisjoint(other Operand[T]) bool {
	for item := range other.All() {
		if s.Has(item) {
			return false
		}
	}
	return true
}

func (s *OrderedSet[T]) IsProperSubset(other Operand[T]) bool {
	h := hashOf(other)
	if s.Len() >= h.Len() {
		return false
	}
	for _, item := range s.items {
		if !h.Has(item) {
			return false
		}
	}
	return true
}

func (s *OrderedSet[T]) IsProperSuperset(other Operand[T]) bool {
	h := hashOf(other)
	if s.Len() <= h.Len() {
		return false
	}
	for item := range h.All() {
		if !s.Has(item) {
			return false
		}
	}
	return true
}

// DifferenceUpdate removes every element found in any operand. Operand
// membership is read before the first removal, so passing the receiver
// empties it.
func (s *OrderedSet[T]) DifferenceUpdate(operands ...Operand[T]) {
	if len(operands) == 0 {
		return
	}
	exclude := mergedHash(operands)
	s.filterInPlace(func(item T) bool {
		return !exclude.Has(item)
	})
}

func (s *OrderedSet[T]) IntersectionUpdate(operands ...Operand[T]) {
	if len(operands) == 0 {
		return
	}
	within := containersOf(operands)
	s.filterInPlace(func(item T) bool {
		return inAll(item, within)
	})
}

func (s *OrderedSet[T]) SymmetricDifferenceUpdate(other Operand[T]) {
	shared := hashOf(other)
	added := New[T]()
	for item := range other.All() {
		if !s.Has(item) {
			added.Add(item)
		}
	}
	items := make([]T, 0, len(s.items)+added.Len())
	for _, item := range s.items {
		if !shared.Has(item) {
			items = append(items, item)
		}
	}
	items = append(items, added.items...)
	s.reset(items)
}

func (s *OrderedSet[T]) filterInPlace(keep func(item T) bool) {
	items := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if keep(item) {
			items = append(items, item)
		}
	}
	s.reset(items)
}

// Union builds a set from the elements of every operand, left to right, in
// first-occurrence order
func Union[T comparable](operands ...Operand[T]) *OrderedSet[T] {
	s := New[T]()
	s.Update(operands...)
	return s
}

// Intersection keeps the first operand's elements present in every other
// operand, in the first operand's order
func Intersection[T comparable](operands ...Operand[T]) *OrderedSet[T] {
	if len(operands) == 0 {
		return New[T]()
	}
	s := Collect(operands[0].All())
	s.IntersectionUpdate(operands[1:]...)
	return s
}

// Difference keeps the first operand's elements found in none of the other
// operands, in the first operand's order
func Difference[T comparable](operands ...Operand[T]) *OrderedSet[T] {
	if len(operands) == 0 {
		return New[T]()
	}
	s := Collect(operands[0].All())
	s.DifferenceUpdate(operands[1:]...)
	return s
}

func hashOf[T comparable](op Operand[T]) *HashSet[T] {
	if h, ok := op.(*HashSet[T]); ok {
		return h
	}
	return CollectHashSet(op.All())
}

func containerOf[T comparable](op Operand[T]) Container[T] {
	if c, ok := op.(Container[T]); ok {
		return c
	}
	return CollectHashSet(op.All())
}

func containersOf[T comparable](operands []Operand[T]) []Container[T] {
	within := make([]Container[T], len(operands))
	for i, op := range operands {
		within[i] = containerOf(op)
	}
	return within
}

func inAll[T comparable](item T, within []Container[T]) bool {
	for _, c := range within {
		if !c.Has(item) {
			return false
		}
	}
	return true
}

func mergedHash[T comparable](operands []Operand[T]) *HashSet[T] {
	merged := NewHashSet[T]()
	for _, op := range operands {
		for item := range op.All() {
			merged.Add(item)
		}
	}
	return merged
}
