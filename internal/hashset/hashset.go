// Package hashset provides a set whose identity is decided by a caller-supplied
// key function rather than by the structural equality of its elements.
package hashset

// Set holds values of type T, treating two values as the same element when
// their keys compare equal. Iteration follows insertion order.
type Set[T any, K comparable] struct {
	key   func(T) K
	index map[K]int
	items []T
}

// New creates an empty set keyed by key, then adds items.
func New[T any, K comparable](key func(T) K, items ...T) *Set[T, K] {
	s := &Set[T, K]{
		key:   key,
		index: make(map[K]int, len(items)),
	}
	s.AddAll(items)
	return s
}

// Add inserts v unless an element with the same key is present.
// Reports whether v was inserted.
func (s *Set[T, K]) Add(v T) bool {
	k := s.key(v)
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.items)
	s.items = append(s.items, v)
	return true
}

// AddAll inserts every value of vs and returns how many were new.
func (s *Set[T, K]) AddAll(vs []T) int {
	n := 0
	for _, v := range vs {
		if s.Add(v) {
			n++
		}
	}
	return n
}

// Has reports whether an element with the key of v is present.
func (s *Set[T, K]) Has(v T) bool {
	_, ok := s.index[s.key(v)]
	return ok
}

// Replace swaps the stored element sharing old's key for v. The position in
// iteration order is kept. Reports false when old is absent or when v's key
// already belongs to another element.
func (s *Set[T, K]) Replace(old, v T) bool {
	ok, nk := s.key(old), s.key(v)
	i, found := s.index[ok]
	if !found {
		return false
	}
	if ok != nk {
		if _, taken := s.index[nk]; taken {
			return false
		}
		delete(s.index, ok)
		s.index[nk] = i
	}
	s.items[i] = v
	return true
}

// Len returns the number of elements.
func (s *Set[T, K]) Len() int { return len(s.items) }

// Values returns the elements in insertion order. The slice is a copy.
func (s *Set[T, K]) Values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// All iterates over the elements in insertion order.
func (s *Set[T, K]) All(yield func(T) bool) {
	for _, v := range s.items {
		if !yield(v) {
			return
		}
	}
}
