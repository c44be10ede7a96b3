package list

import "github.com/homier/containers/object"

// ObjList is a List whose nodes own an object initialized and deinitialized
// by the list's hooks. Pointers to node values stay valid until the node is
// erased or the list is cleared.
type ObjList[T any] struct {
	list  List[T]
	hooks object.Hooks[T]
}

// Returns a new, empty object list.
func NewObj[T any](hooks object.Hooks[T]) *ObjList[T] {
	ol := &ObjList[T]{hooks: hooks}
	ol.list.Init()

	return ol
}

func (ol *ObjList[T]) newNode() *Node[T] {
	n := new(Node[T])
	ol.hooks.Construct(&n.Value)

	return n
}

// PushBack inserts a new initialized node at the back.
func (ol *ObjList[T]) PushBack() *Node[T] {
	ol.list.lazyInit()
	return ol.list.link(ol.newNode(), ol.list.root.prev)
}

// PushFront inserts a new initialized node at the front.
func (ol *ObjList[T]) PushFront() *Node[T] {
	ol.list.lazyInit()
	return ol.list.link(ol.newNode(), &ol.list.root)
}

// InsertBefore inserts a new initialized node right before mark.
// Returns nil if mark is not a node of ol.
func (ol *ObjList[T]) InsertBefore(mark *Node[T]) *Node[T] {
	if !ol.list.owns(mark) {
		return nil
	}

	return ol.list.link(ol.newNode(), mark.prev)
}

// InsertAfter inserts a new initialized node right after mark.
// Returns nil if mark is not a node of ol.
func (ol *ObjList[T]) InsertAfter(mark *Node[T]) *Node[T] {
	if !ol.list.owns(mark) {
		return nil
	}

	return ol.list.link(ol.newNode(), mark)
}

// Erase deinitializes the object of n and removes n from ol.
func (ol *ObjList[T]) Erase(n *Node[T]) bool {
	if !ol.list.owns(n) {
		return false
	}

	ol.hooks.Destruct(&n.Value)

	return ol.list.Erase(n)
}

// Clear deinitializes every object front to back and empties ol.
func (ol *ObjList[T]) Clear() {
	ol.list.clear(func(n *Node[T]) {
		ol.hooks.Destruct(&n.Value)
	})
}

func (ol *ObjList[T]) First() *Node[T] { return ol.list.First() }
func (ol *ObjList[T]) Last() *Node[T]  { return ol.list.Last() }
func (ol *ObjList[T]) Len() int        { return ol.list.Len() }
func (ol *ObjList[T]) Validate() error { return ol.list.Validate() }
