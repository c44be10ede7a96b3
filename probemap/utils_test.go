package probemap

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCapacityFromSize(t *testing.T) {
	t.Run("int,int", func(t *testing.T) {
		sizeOfSlot := unsafe.Sizeof(slot[int, int]{})

		tests := []struct {
			name string
			size uintptr
			want int
		}{
			{"zero", 0, 0},
			{"less than one slot", sizeOfSlot - 1, 0},
			{"exactly one slot", sizeOfSlot, 1},
			{"one and a half slots", sizeOfSlot + sizeOfSlot/2, 1},
			{"ten slots", sizeOfSlot * 10, 10},
			{"1KB", 1024, int(1024 / sizeOfSlot)},
			{"1MB", 1024 * 1024, int(1024 * 1024 / sizeOfSlot)},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got := CapacityFromSize[int, int](tt.size)
				require.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("string,string", func(t *testing.T) {
		sizeOfSlot := unsafe.Sizeof(slot[string, string]{})

		got := CapacityFromSize[string, string](sizeOfSlot * 5)
		require.Equal(t, 5, got)
	})

	t.Run("usage with WithInitialSlots", func(t *testing.T) {
		sizeOfSlot := unsafe.Sizeof(slot[int, int]{})

		capacity := CapacityFromSize[int, int](sizeOfSlot * 100)
		require.Equal(t, 100, capacity)

		m := New(WithInitialSlots[int, int](capacity))
		m.Set(1, 1)

		// rounded up to the next power of 2
		require.Equal(t, 128, m.Stats().Slots)
	})
}
