// Package object defines the lifecycle hooks run by the object-owning
// containers on the storage they allocate.
package object

// Hooks is the init/deinit pair of an object-owning container.
//
// Init runs exactly once after storage is allocated (or reused) and before
// the caller sees it. Deinit runs exactly once before the storage is
// released or reused. Nil hooks are skipped; storage is zeroed on both ends
// regardless.
type Hooks[T any] struct {
	Init   func(*T)
	Deinit func(*T)
}

// New allocates zeroed storage and initializes it.
func (h Hooks[T]) New() *T {
	p := new(T)
	if h.Init != nil {
		h.Init(p)
	}

	return p
}

// Construct zeroes and initializes already allocated storage.
func (h Hooks[T]) Construct(p *T) {
	var zero T
	*p = zero

	if h.Init != nil {
		h.Init(p)
	}
}

// Destruct deinitializes p and zeroes it.
func (h Hooks[T]) Destruct(p *T) {
	if h.Deinit != nil {
		h.Deinit(p)
	}

	var zero T
	*p = zero
}
