// Package chainmap implements hash maps resolving collisions by separate
// chaining.
//
// Each bucket is a singly-linked chain of individually allocated entries.
// Rehashing only relinks entries, never moves them, which is what lets
// ObjMap hand out stable pointers.
//
// Neither Map nor ObjMap is safe for concurrent use.
package chainmap

import "iter"

// Map is a chained hash map from K to V.
type Map[K comparable, V any] struct {
	chain[K, V]
}

// Returns a new, empty map. The bucket table is allocated on first Set.
func New[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.init(opts...)

	return &m
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if e := m.find(key); e != nil {
		return e.value, true
	}

	var zero V
	return zero, false
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	return m.find(key) != nil
}

// Set stores value for key, overwriting in place if key is present.
// Returns false, leaving m unchanged, if the table cannot grow.
func (m *Map[K, V]) Set(key K, value V) bool {
	e, created := m.upsert(key)
	if e == nil {
		return false
	}

	if !created && m.valueDeinit != nil {
		m.valueDeinit(e.value)
	}

	e.value = value

	return true
}

// Delete removes key. Returns false if key is absent.
func (m *Map[K, V]) Delete(key K) bool {
	e := m.unlink(key)
	if e == nil {
		return false
	}

	m.deinit(e)

	return true
}

// Clear deinitializes every entry and releases the bucket table.
func (m *Map[K, V]) Clear() {
	m.clear(m.deinit)
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.count
}

// All yields every entry in bucket order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.each(func(e *entry[K, V]) bool {
			return yield(e.key, e.value)
		})
	}
}

func (m *Map[K, V]) Stats() Stats {
	return m.stats()
}

// Validate checks bucket placement, key uniqueness and the entry count.
func (m *Map[K, V]) Validate() error {
	return m.validate()
}
