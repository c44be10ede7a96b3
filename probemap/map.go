// Package probemap implements a hash map resolving collisions by linear
// probing, with tombstones marking erased slots.
//
// Entries live inline in the table and move whenever it is rehashed, so no
// references to stored keys or values are ever handed out. A Map is not safe
// for concurrent use.
package probemap

import "iter"

// Map is a linearly probed hash map from K to V.
type Map[K comparable, V any] struct {
	table[K, V]
}

// Returns a new, empty map. The table is allocated on first Set.
func New[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.init(opts...)

	return &m
}

// Checks whether a key is in the map and returns its value.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

func (m *Map[K, V]) Has(key K) bool {
	return m.find(key) >= 0
}

// Puts a key in the map, overwriting its value if present.
// Returns false if the table cannot grow.
func (m *Map[K, V]) Set(key K, value V) bool {
	_, ok := m.set(key, value)
	return ok
}

// Deletes a key from the map, leaving a tombstone behind.
func (m *Map[K, V]) Delete(key K) bool {
	return m.delete(key)
}

// Clear deinitializes every entry and releases the table.
func (m *Map[K, V]) Clear() {
	m.reset()
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int {
	return m.size
}

// All yields every live entry in slot order. The map must not be modified
// during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.slots {
			s := &m.slots[i]
			if s.state == slotSet && !yield(s.key, s.value) {
				return
			}
		}
	}
}
