package chainmap

import "github.com/homier/containers/object"

// ObjMap is a chained hash map owning one object per key.
//
// A pointer returned by Create or Find stays valid until its key is
// destroyed or the map is cleared, regardless of other inserts and rehashes.
type ObjMap[K comparable, T any] struct {
	chain[K, T]
	hooks object.Hooks[T]
}

// Returns a new, empty object map.
func NewObj[K comparable, T any](hooks object.Hooks[T], opts ...Option[K, T]) *ObjMap[K, T] {
	om := &ObjMap[K, T]{hooks: hooks}
	om.init(opts...)

	return om
}

// Find returns the object stored for key, or nil if absent.
func (om *ObjMap[K, T]) Find(key K) *T {
	if e := om.find(key); e != nil {
		return &e.value
	}

	return nil
}

// Create returns a freshly initialized object for key. An existing object is
// deinitialized and reinitialized in place, keeping its address.
// Returns nil if the table cannot grow.
func (om *ObjMap[K, T]) Create(key K) *T {
	e, created := om.upsert(key)
	if e == nil {
		return nil
	}

	if !created {
		om.hooks.Destruct(&e.value)
	}

	om.hooks.Construct(&e.value)

	return &e.value
}

// Destroy deinitializes and removes the object for key.
// Returns false if key is absent.
func (om *ObjMap[K, T]) Destroy(key K) bool {
	e := om.unlink(key)
	if e == nil {
		return false
	}

	om.release(e)

	return true
}

func (om *ObjMap[K, T]) release(e *entry[K, T]) {
	if om.keyDeinit != nil {
		om.keyDeinit(e.key)
	}

	om.hooks.Destruct(&e.value)
}

// Clear deinitializes every object and releases the bucket table.
func (om *ObjMap[K, T]) Clear() {
	om.clear(om.release)
}

// Len returns the number of objects.
func (om *ObjMap[K, T]) Len() int {
	return om.count
}

func (om *ObjMap[K, T]) Stats() Stats {
	return om.stats()
}

func (om *ObjMap[K, T]) Validate() error {
	return om.validate()
}
