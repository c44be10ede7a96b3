package queue

import "github.com/homier/containers/object"

// ObjQueue is a queue of objects it allocates itself. The ring holds
// pointers, so a pointer returned by Push stays valid across growth until
// its object is popped or the queue is cleared.
type ObjQueue[T any] struct {
	queue Queue[*T]
	hooks object.Hooks[T]
}

// Returns a new, empty object queue holding at most maxCapacity objects.
// A maxCapacity <= 0 means unlimited. Objects are released only through hooks.
func NewObj[T any](hooks object.Hooks[T], maxCapacity int) *ObjQueue[T] {
	oq := &ObjQueue[T]{hooks: hooks}
	oq.queue.init(WithMaxCapacity[*T](maxCapacity))

	return oq
}

// Push appends a new initialized object and returns it.
// Returns nil if the buffer cannot grow.
func (oq *ObjQueue[T]) Push() *T {
	obj := new(T)
	if !oq.queue.Push(obj) {
		return nil
	}

	oq.hooks.Construct(obj)

	return obj
}

// Pop deinitializes and removes the front object.
func (oq *ObjQueue[T]) Pop() bool {
	obj, ok := oq.queue.Peek()
	if !ok {
		return false
	}

	oq.hooks.Destruct(obj)

	return oq.queue.Pop()
}

// Peek returns the front object, or nil if empty.
func (oq *ObjQueue[T]) Peek() *T {
	obj, _ := oq.queue.Peek()
	return obj
}

// At returns the i-th object from the front, or nil if out of range.
func (oq *ObjQueue[T]) At(i int) *T {
	obj, _ := oq.queue.At(i)
	return obj
}

// Clear deinitializes every object front to back and drops the buffer.
func (oq *ObjQueue[T]) Clear() {
	for _, obj := range oq.queue.All() {
		oq.hooks.Destruct(obj)
	}

	oq.queue.Clear()
}

func (oq *ObjQueue[T]) Len() int        { return oq.queue.Len() }
func (oq *ObjQueue[T]) Cap() int        { return oq.queue.Cap() }
func (oq *ObjQueue[T]) Validate() error { return oq.queue.Validate() }
