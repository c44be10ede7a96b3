// Package stack implements a LIFO stack on top of a growable array.
//
// A Stack is not safe for concurrent use.
package stack

import (
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/homier/containers/internal/growth"
)

// Stack is an array-backed stack. Index 0 is the bottom. The zero value is an
// empty stack ready to use; the buffer is allocated on first push.
//
// Growth moves the stored values, so references into the stack do not
// survive a push.
type Stack[T any] struct {
	buf []T
	put int // one past the top, equal to the size

	maxCapacity int
	deinit      func(T)
}

type Option[T any] func(s *Stack[T])

// Limits the buffer capacity. Push fails once growth would exceed n.
func WithMaxCapacity[T any](n int) Option[T] {
	return func(s *Stack[T]) {
		s.maxCapacity = n
	}
}

// Sets a hook called once for every value popped or cleared.
func WithDeinit[T any](f func(T)) Option[T] {
	return func(s *Stack[T]) {
		s.deinit = f
	}
}

// Returns a new, empty stack.
func New[T any](opts ...Option[T]) *Stack[T] {
	var s Stack[T]
	s.init(opts...)

	return &s
}

func (s *Stack[T]) init(opts ...Option[T]) {
	for _, opt := range opts {
		opt(s)
	}
}

// Clear deinitializes every value bottom to top and drops the buffer.
func (s *Stack[T]) Clear() {
	if s.deinit != nil {
		for _, v := range s.buf[:s.put] {
			s.deinit(v)
		}
	}

	s.buf = nil
	s.put = 0
}

// Push places v on top.
// Returns false, leaving s unchanged, if the buffer cannot grow.
func (s *Stack[T]) Push(v T) bool {
	if s.buf == nil {
		s.buf = make([]T, growth.Initial(s.maxCapacity))
		s.put = 0
	} else if s.put == len(s.buf) {
		newSize, ok := growth.Double(s.put, s.maxCapacity)
		if !ok {
			return false
		}

		buf := make([]T, newSize)
		copy(buf, s.buf)
		s.buf = buf
	}

	s.buf[s.put] = v
	s.put++

	return true
}

// Pop removes the top value. Returns false if s is empty.
func (s *Stack[T]) Pop() bool {
	if s.put == 0 {
		return false
	}

	s.put--
	if s.deinit != nil {
		s.deinit(s.buf[s.put])
	}

	var zero T
	s.buf[s.put] = zero // clear reference for GC

	return true
}

// Top returns the top value without removing it.
func (s *Stack[T]) Top() (T, bool) {
	if s.put == 0 {
		var zero T
		return zero, false
	}

	return s.buf[s.put-1], true
}

// At returns the i-th value counting from the bottom.
func (s *Stack[T]) At(i int) (T, bool) {
	if i < 0 || i >= s.put {
		var zero T
		return zero, false
	}

	return s.buf[i], true
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int {
	return s.put
}

// Cap returns the current capacity of the underlying buffer.
func (s *Stack[T]) Cap() int {
	return len(s.buf)
}

// All yields (index, value) pairs bottom to top.
func (s *Stack[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range s.put {
			if !yield(i, s.buf[i]) {
				return
			}
		}
	}
}

func (s *Stack[T]) Validate() error {
	if s.put < 0 || s.put > len(s.buf) {
		return errors.AssertionFailedf("top %d out of [0, %d]", s.put, len(s.buf))
	}

	if s.maxCapacity > 0 && len(s.buf) > s.maxCapacity {
		return errors.AssertionFailedf("capacity %d exceeds limit %d", len(s.buf), s.maxCapacity)
	}

	return nil
}
