// Package list implements a circular doubly-linked list with a sentinel root.
//
// Every node keeps a back-reference to the sentinel of the list it belongs
// to, so iteration terminates on its own:
//
//	for n := l.First(); n != nil; n = n.Next() {
//		// do something with n.Value
//	}
//
// A List is not safe for concurrent use. A List must not be copied after
// first use.
package list

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// Node is an element of a List.
type Node[T any] struct {
	next, prev *Node[T]

	// head is the sentinel of the owning list, nil once erased.
	head *Node[T]

	Value T
}

// Next returns the next node, or nil if n is the last one.
func (n *Node[T]) Next() *Node[T] {
	if n.next == n.head {
		return nil
	}

	return n.next
}

// Prev returns the previous node, or nil if n is the first one.
func (n *Node[T]) Prev() *Node[T] {
	if n.prev == n.head {
		return nil
	}

	return n.prev
}

// List is a circular list. The zero value is an empty list ready to use.
type List[T any] struct {
	root Node[T]
	len  int
}

// Returns a new, empty list.
func New[T any]() *List[T] {
	return new(List[T]).Init()
}

// Init resets l to the empty state. Nodes still linked are abandoned, not
// visited; use Clear to detach them.
func (l *List[T]) Init() *List[T] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.root.head = &l.root
	l.len = 0

	return l
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.Init()
	}
}

// Clear detaches every node and leaves l empty.
func (l *List[T]) Clear() {
	l.clear(nil)
}

func (l *List[T]) clear(visit func(n *Node[T])) {
	if l.root.next == nil {
		l.Init()
		return
	}

	for n := l.root.next; n != &l.root; {
		next := n.next
		if visit != nil {
			visit(n)
		}

		n.next, n.prev, n.head = nil, nil, nil
		n = next
	}

	l.Init()
}

// Len returns the number of nodes in l.
func (l *List[T]) Len() int {
	return l.len
}

// First returns the first node of l, or nil if l is empty.
func (l *List[T]) First() *Node[T] {
	if l.len == 0 {
		return nil
	}

	return l.root.next
}

// Last returns the last node of l, or nil if l is empty.
func (l *List[T]) Last() *Node[T] {
	if l.len == 0 {
		return nil
	}

	return l.root.prev
}

// link splices n between prev and prev.next.
func (l *List[T]) link(n, prev *Node[T]) *Node[T] {
	n.prev = prev
	n.next = prev.next
	prev.next = n
	n.next.prev = n
	n.head = prev.head
	l.len++

	return n
}

func (l *List[T]) owns(n *Node[T]) bool {
	return n != nil && n.head == &l.root && n != &l.root
}

// PushBack inserts a new node holding v at the back of l.
func (l *List[T]) PushBack(v T) *Node[T] {
	l.lazyInit()
	return l.link(&Node[T]{Value: v}, l.root.prev)
}

// PushFront inserts a new node holding v at the front of l.
func (l *List[T]) PushFront(v T) *Node[T] {
	l.lazyInit()
	return l.link(&Node[T]{Value: v}, &l.root)
}

// InsertBefore inserts a new node holding v right before mark.
// Returns nil if mark is not a node of l.
func (l *List[T]) InsertBefore(mark *Node[T], v T) *Node[T] {
	if !l.owns(mark) {
		return nil
	}

	return l.link(&Node[T]{Value: v}, mark.prev)
}

// InsertAfter inserts a new node holding v right after mark.
// Returns nil if mark is not a node of l.
func (l *List[T]) InsertAfter(mark *Node[T], v T) *Node[T] {
	if !l.owns(mark) {
		return nil
	}

	return l.link(&Node[T]{Value: v}, mark)
}

// Erase removes n from l. Its neighbours become adjacent and n is detached;
// n must not be used with any list afterwards.
// Returns false if n is not a node of l.
func (l *List[T]) Erase(n *Node[T]) bool {
	if !l.owns(n) {
		return false
	}

	n.prev.next = n.next
	n.next.prev = n.prev
	n.next, n.prev, n.head = nil, nil, nil
	l.len--

	return true
}

// All yields values front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.First(); n != nil; n = n.Next() {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Backward yields values back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.Last(); n != nil; n = n.Prev() {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Validate walks l in both directions and checks the link invariants.
func (l *List[T]) Validate() error {
	if l.root.next == nil {
		if l.len != 0 {
			return errors.AssertionFailedf("uninitialized list with length %d", l.len)
		}

		return nil
	}

	if l.root.head != &l.root {
		return errors.AssertionFailedf("sentinel head does not point to itself")
	}

	count := 0
	for n := l.root.next; n != &l.root; n = n.next {
		if n == nil || n.next == nil || n.prev == nil {
			return errors.AssertionFailedf("nil link after %d nodes", count)
		}

		if n.head != &l.root {
			return errors.AssertionFailedf("node %d belongs to another list", count)
		}

		if n.next.prev != n || n.prev.next != n {
			return errors.AssertionFailedf("node %d has asymmetric links", count)
		}

		count++
		if count > l.len {
			return errors.AssertionFailedf("forward walk exceeds length %d", l.len)
		}
	}

	if count != l.len {
		return errors.AssertionFailedf("forward walk found %d nodes, length is %d", count, l.len)
	}

	count = 0
	for n := l.root.prev; n != &l.root; n = n.prev {
		count++
		if count > l.len {
			return errors.AssertionFailedf("backward walk exceeds length %d", l.len)
		}
	}

	if count != l.len {
		return errors.AssertionFailedf("backward walk found %d nodes, length is %d", count, l.len)
	}

	return nil
}
