package stack

import "github.com/homier/containers/object"

// ObjStack is a stack of objects it allocates itself. The pointer array may
// move on growth, but each object is allocated separately, so a pointer
// returned by Push stays valid until that object is popped or the stack is
// cleared.
type ObjStack[T any] struct {
	stack Stack[*T]
	hooks object.Hooks[T]
}

// Returns a new, empty object stack holding at most maxCapacity objects.
// A maxCapacity <= 0 means unlimited. Objects are released only through hooks.
func NewObj[T any](hooks object.Hooks[T], maxCapacity int) *ObjStack[T] {
	st := &ObjStack[T]{hooks: hooks}
	st.stack.init(WithMaxCapacity[*T](maxCapacity))

	return st
}

// Push places a new initialized object on top and returns it.
// Returns nil if the buffer cannot grow.
func (st *ObjStack[T]) Push() *T {
	obj := new(T)
	if !st.stack.Push(obj) {
		return nil
	}

	st.hooks.Construct(obj)

	return obj
}

// Pop deinitializes and removes the top object.
func (st *ObjStack[T]) Pop() bool {
	obj, ok := st.stack.Top()
	if !ok {
		return false
	}

	st.hooks.Destruct(obj)

	return st.stack.Pop()
}

// Top returns the top object, or nil if empty.
func (st *ObjStack[T]) Top() *T {
	obj, _ := st.stack.Top()
	return obj
}

// At returns the i-th object from the bottom, or nil if out of range.
func (st *ObjStack[T]) At(i int) *T {
	obj, _ := st.stack.At(i)
	return obj
}

// Clear deinitializes every object bottom to top and drops the buffer.
func (st *ObjStack[T]) Clear() {
	for _, obj := range st.stack.All() {
		st.hooks.Destruct(obj)
	}

	st.stack.Clear()
}

func (st *ObjStack[T]) Len() int        { return st.stack.Len() }
func (st *ObjStack[T]) Cap() int        { return st.stack.Cap() }
func (st *ObjStack[T]) Validate() error { return st.stack.Validate() }
