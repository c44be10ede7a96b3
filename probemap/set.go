package probemap

// Set is a set of keys backed by the same linearly probed table as Map.
// It's not designed as a fully compatible set structure, it just doesn't
// store values.
type Set[K comparable] struct {
	table[K, struct{}]
}

// Returns a new, empty set.
func NewSet[K comparable](opts ...Option[K, struct{}]) *Set[K] {
	var s Set[K]
	s.init(opts...)

	return &s
}

func (s *Set[K]) Has(key K) bool {
	return s.find(key) >= 0
}

// Puts a key in the set.
// Returns whether the key is new and whether the write happened at all.
func (s *Set[K]) Put(key K) (bool, bool) {
	return s.set(key, struct{}{})
}

func (s *Set[K]) Delete(key K) bool {
	return s.delete(key)
}

func (s *Set[K]) Clear() {
	s.reset()
}

func (s *Set[K]) Len() int {
	return s.size
}
