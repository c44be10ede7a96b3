package list

import (
	"testing"

	"github.com/homier/containers/internal/objtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjList_PushInitializes(t *testing.T) {
	var c objtest.Counter
	ol := NewObj(c.Hooks())

	n := ol.PushBack()
	require.NotNil(t, n)
	assert.Equal(t, objtest.Obj{A: objtest.InitialA, B: objtest.InitialB, C: objtest.InitialC}, n.Value)
	assert.Equal(t, 1, c.Live())

	ol.PushFront()
	ol.InsertAfter(n)
	ol.InsertBefore(n)
	assert.Equal(t, 4, c.Live())
	assert.Equal(t, 4, ol.Len())
	require.NoError(t, ol.Validate())
}

func TestObjList_Order(t *testing.T) {
	var c objtest.Counter
	ol := NewObj(c.Hooks())

	b := ol.PushBack()
	b.Value.A = 2
	a := ol.PushFront()
	a.Value.A = 1
	d := ol.InsertAfter(b)
	d.Value.A = 4
	ol.InsertBefore(d).Value.A = 3

	var got []int
	for n := ol.First(); n != nil; n = n.Next() {
		got = append(got, n.Value.A)
	}

	assert.Equal(t, []int{1, 2, 3, 4}, got)
	assert.Same(t, d, ol.Last())
}

func TestObjList_EraseDeinitializes(t *testing.T) {
	var c objtest.Counter
	ol := NewObj(c.Hooks())

	n1 := ol.PushBack()
	n2 := ol.PushBack()

	require.True(t, ol.Erase(n1))
	assert.Equal(t, 1, c.Live())
	assert.Equal(t, 1, c.Deinits())

	// a second erase must not deinit twice
	require.False(t, ol.Erase(n1))
	assert.Equal(t, 1, c.Deinits())

	assert.Same(t, n2, ol.First())
	require.NoError(t, ol.Validate())
}

func TestObjList_Clear(t *testing.T) {
	var c objtest.Counter
	ol := NewObj(c.Hooks())

	ol.Clear()
	assert.Equal(t, 0, c.Live())

	for range 50 {
		ol.PushBack()
	}

	assert.Equal(t, 50, c.Live())

	ol.Clear()
	assert.Equal(t, 0, c.Live())
	assert.Equal(t, 50, c.Deinits())
	assert.Equal(t, 0, ol.Len())
	assert.Nil(t, ol.First())

	ol.Clear()
	assert.Equal(t, 50, c.Deinits())
}

func TestObjList_ForeignMark(t *testing.T) {
	var c objtest.Counter
	ol := NewObj(c.Hooks())
	other := New[objtest.Obj]()

	mark := other.PushBack(objtest.Obj{})

	assert.Nil(t, ol.InsertAfter(mark))
	assert.Nil(t, ol.InsertBefore(mark))
	assert.Equal(t, 0, c.Live())
}
