// Package queue implements a FIFO queue on top of a growable ring buffer.
//
// A Queue is not safe for concurrent use.
package queue

import (
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/homier/containers/internal/growth"
)

// Queue is a ring buffer queue. The zero value is an empty queue ready to
// use; the buffer is allocated on first push.
type Queue[T any] struct {
	buf  []T
	get  int // index of the front element
	put  int // index of the next write position
	size int

	maxCapacity int
	deinit      func(T)
}

type Option[T any] func(q *Queue[T])

// Limits the buffer capacity. Push fails once growth would exceed n.
func WithMaxCapacity[T any](n int) Option[T] {
	return func(q *Queue[T]) {
		q.maxCapacity = n
	}
}

// Sets a hook called once for every value popped or cleared.
func WithDeinit[T any](f func(T)) Option[T] {
	return func(q *Queue[T]) {
		q.deinit = f
	}
}

// Returns a new, empty queue.
func New[T any](opts ...Option[T]) *Queue[T] {
	var q Queue[T]
	q.init(opts...)

	return &q
}

func (q *Queue[T]) init(opts ...Option[T]) {
	for _, opt := range opts {
		opt(q)
	}
}

// Clear deinitializes every value front to back and drops the buffer.
func (q *Queue[T]) Clear() {
	if q.deinit != nil {
		for i := range q.size {
			q.deinit(q.buf[q.index(i)])
		}
	}

	q.buf = nil
	q.get, q.put, q.size = 0, 0, 0
}

func (q *Queue[T]) index(i int) int {
	idx := q.get + i
	if idx >= len(q.buf) {
		idx -= len(q.buf)
	}

	return idx
}

// grow doubles a full buffer. The front lands at index 0 of the new buffer.
func (q *Queue[T]) grow() bool {
	newSize, ok := growth.Double(q.size, q.maxCapacity)
	if !ok {
		return false
	}

	buf := make([]T, newSize)

	// A full buffer has get == put: [put, end) holds the front run and
	// [0, put) the wrapped tail.
	n := copy(buf, q.buf[q.put:])
	copy(buf[n:], q.buf[:q.put])

	q.buf = buf
	q.get = 0
	q.put = q.size

	return true
}

// Push appends v at the back.
// Returns false, leaving q unchanged, if the buffer cannot grow.
func (q *Queue[T]) Push(v T) bool {
	if q.buf == nil {
		q.buf = make([]T, growth.Initial(q.maxCapacity))
		q.get, q.put = 0, 0
	} else if q.size == len(q.buf) {
		if !q.grow() {
			return false
		}
	}

	q.buf[q.put] = v
	q.put++
	if q.put == len(q.buf) {
		q.put = 0
	}

	q.size++

	return true
}

// Pop removes the front value. Returns false if q is empty.
func (q *Queue[T]) Pop() bool {
	if q.size == 0 {
		return false
	}

	if q.deinit != nil {
		q.deinit(q.buf[q.get])
	}

	var zero T
	q.buf[q.get] = zero // clear reference for GC

	q.get++
	if q.get == len(q.buf) {
		q.get = 0
	}

	q.size--

	return true
}

// Peek returns the front value without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}

	return q.buf[q.get], true
}

// At returns the i-th value counting from the front.
func (q *Queue[T]) At(i int) (T, bool) {
	if i < 0 || i >= q.size {
		var zero T
		return zero, false
	}

	return q.buf[q.index(i)], true
}

// Len returns the number of queued values.
func (q *Queue[T]) Len() int {
	return q.size
}

// Cap returns the current capacity of the underlying buffer.
func (q *Queue[T]) Cap() int {
	return len(q.buf)
}

// All yields (position, value) pairs front to back.
func (q *Queue[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range q.size {
			if !yield(i, q.buf[q.index(i)]) {
				return
			}
		}
	}
}

// Validate checks the cursor and size invariants of the ring.
func (q *Queue[T]) Validate() error {
	if q.buf == nil {
		if q.size != 0 || q.get != 0 || q.put != 0 {
			return errors.AssertionFailedf("unallocated queue with size %d, get %d, put %d", q.size, q.get, q.put)
		}

		return nil
	}

	n := len(q.buf)
	if q.size < 0 || q.size > n {
		return errors.AssertionFailedf("size %d out of [0, %d]", q.size, n)
	}

	if q.get < 0 || q.get >= n || q.put < 0 || q.put >= n {
		return errors.AssertionFailedf("cursors get %d, put %d out of [0, %d)", q.get, q.put, n)
	}

	if want := (q.get + q.size) % n; q.put != want {
		return errors.AssertionFailedf("put is %d, want %d", q.put, want)
	}

	return nil
}
