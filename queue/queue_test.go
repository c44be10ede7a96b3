package queue

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contents[T any](q *Queue[T]) []T {
	out := make([]T, 0, q.Len())
	for i := range q.Len() {
		v, ok := q.At(i)
		if !ok {
			panic("At failed inside [0, Len)")
		}

		out = append(out, v)
	}

	return out
}

func requireContents[T any](t *testing.T, q *Queue[T], want []T) {
	t.Helper()

	require.NoError(t, q.Validate())
	if diff := cmp.Diff(want, contents(q), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("queue contents mismatch (-want +got):\n%s", diff)
	}
}

func TestQueue_Empty(t *testing.T) {
	var q Queue[int]

	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 0, q.Cap())
	assert.False(t, q.Pop())

	_, ok := q.Peek()
	assert.False(t, ok)

	_, ok = q.At(0)
	assert.False(t, ok)

	require.NoError(t, q.Validate())
}

func TestQueue_PushPop(t *testing.T) {
	q := New[int]()

	require.True(t, q.Push(1))
	assert.Equal(t, 32, q.Cap())
	require.True(t, q.Push(2))
	require.True(t, q.Push(3))

	v, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	require.True(t, q.Pop())
	requireContents(t, q, []int{2, 3})

	require.True(t, q.Pop())
	require.True(t, q.Pop())
	assert.False(t, q.Pop())
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 32, q.Cap(), "pop never shrinks the buffer")
}

func TestQueue_At(t *testing.T) {
	q := New[string]()
	q.Push("a")
	q.Push("b")

	tests := []struct {
		idx  int
		want string
		ok   bool
	}{
		{-1, "", false},
		{0, "a", true},
		{1, "b", true},
		{2, "", false},
	}

	for _, tt := range tests {
		v, ok := q.At(tt.idx)
		assert.Equalf(t, tt.ok, ok, "idx %d", tt.idx)
		assert.Equalf(t, tt.want, v, "idx %d", tt.idx)
	}
}

func TestQueue_GrowLinear(t *testing.T) {
	q := New[int]()

	want := make([]int, 0, 100)
	for i := range 100 {
		require.True(t, q.Push(i))
		want = append(want, i)
	}

	assert.Equal(t, 128, q.Cap())
	requireContents(t, q, want)
}

func TestQueue_GrowWrapped(t *testing.T) {
	q := New[int]()

	for i := range 32 {
		require.True(t, q.Push(i))
	}

	for range 10 {
		require.True(t, q.Pop())
	}

	// wraps around into [0, 10)
	for i := 32; i < 42; i++ {
		require.True(t, q.Push(i))
	}

	assert.Equal(t, 32, q.Cap())
	assert.Equal(t, q.get, q.put, "full buffer")

	require.True(t, q.Push(42))
	assert.Equal(t, 64, q.Cap())
	assert.Equal(t, 0, q.get, "front moves to the start of the new buffer")

	want := make([]int, 0, 33)
	for i := 10; i <= 42; i++ {
		want = append(want, i)
	}

	requireContents(t, q, want)
}

func TestQueue_MaxCapacity(t *testing.T) {
	q := New(WithMaxCapacity[int](4))

	for i := range 4 {
		require.True(t, q.Push(i))
	}

	assert.Equal(t, 4, q.Cap())
	assert.False(t, q.Push(4))
	requireContents(t, q, []int{0, 1, 2, 3})

	require.True(t, q.Pop())
	require.True(t, q.Push(4))
	requireContents(t, q, []int{1, 2, 3, 4})
}

func TestQueue_MaxCapacityGrowth(t *testing.T) {
	q := New(WithMaxCapacity[int](64))

	for i := range 64 {
		require.True(t, q.Push(i))
	}

	assert.False(t, q.Push(64))
	assert.Equal(t, 64, q.Len())
	assert.Equal(t, 64, q.Cap())
}

func TestQueue_Deinit(t *testing.T) {
	var popped []int
	q := New(WithDeinit(func(v int) {
		popped = append(popped, v)
	}))

	for i := range 40 {
		q.Push(i)
	}

	q.Pop()
	q.Pop()
	assert.Equal(t, []int{0, 1}, popped)

	q.Clear()
	assert.Len(t, popped, 40)
	assert.Equal(t, 39, popped[39])
}

func TestQueue_Clear(t *testing.T) {
	q := New[int]()

	q.Clear()
	require.NoError(t, q.Validate())
	assert.Equal(t, 0, q.Cap())

	for i := range 50 {
		q.Push(i)
	}

	q.Clear()
	require.NoError(t, q.Validate())
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 0, q.Cap())

	q.Clear()
	assert.Equal(t, 0, q.Len())

	q.Push(7)
	requireContents(t, q, []int{7})
}

func TestQueue_All(t *testing.T) {
	q := New[int]()
	for i := range 35 {
		q.Push(i)
	}

	q.Pop()

	n := 0
	for i, v := range q.All() {
		assert.Equal(t, n, i)
		assert.Equal(t, n+1, v)
		n++
	}

	assert.Equal(t, 34, n)
}

func TestQueue_FIFOProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	// Non-negative ops push themselves, negative ops pop.
	properties.Property("At matches FIFO model", prop.ForAll(
		func(ops []int) bool {
			q := New[int]()
			var model []int

			for _, op := range ops {
				if op < 0 {
					if q.Pop() != (len(model) > 0) {
						return false
					}

					if len(model) > 0 {
						model = model[1:]
					}

					continue
				}

				if !q.Push(op) {
					return false
				}

				model = append(model, op)
			}

			if q.Validate() != nil || q.Len() != len(model) {
				return false
			}

			for i, want := range model {
				got, ok := q.At(i)
				if !ok || got != want {
					return false
				}
			}

			return true
		},
		gen.SliceOf(gen.IntRange(-40, 100)),
	))

	properties.TestingRun(t)
}
