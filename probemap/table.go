package probemap

import (
	"hash/maphash"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/homier/containers/hashfn"
	"github.com/homier/containers/internal/growth"
)

type slotState uint8

const (
	slotNull  slotState = iota // never used, terminates probing
	slotSet                    // live entry
	slotUnset                  // tombstone, probing continues past it
)

type slot[K comparable, V any] struct {
	state slotState
	key   K
	value V
}

type table[K comparable, V any] struct {
	slots []slot[K, V]

	// fill counts set and unset slots, size only set ones.
	fill int
	size int

	initialSlots int
	maxSlots     int

	hashFunc    hashfn.HashFunc[K]
	equalFunc   hashfn.EqualFunc[K]
	keyDeinit   func(K)
	valueDeinit func(V)

	emptyV V
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f hashfn.HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// Override default key equality.
func WithEqualFunc[K comparable, V any](f hashfn.EqualFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.equalFunc = f
	}
}

// Sets a hook called once for every key erased or cleared.
func WithKeyDeinit[K comparable, V any](f func(K)) Option[K, V] {
	return func(t *table[K, V]) {
		t.keyDeinit = f
	}
}

// Sets a hook called once for every value erased, overwritten or cleared.
func WithValueDeinit[K comparable, V any](f func(V)) Option[K, V] {
	return func(t *table[K, V]) {
		t.valueDeinit = f
	}
}

// Sets the number of slots allocated on first insert, rounded up to a power
// of 2 and never below 32.
func WithInitialSlots[K comparable, V any](n int) Option[K, V] {
	return func(t *table[K, V]) {
		t.initialSlots = n
	}
}

// Limits the number of slots. Inserts fail once a rehash would exceed n.
func WithMaxSlots[K comparable, V any](n int) Option[K, V] {
	return func(t *table[K, V]) {
		t.maxSlots = n
	}
}

func (t *table[K, V]) init(opts ...Option[K, V]) {
	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = hashfn.MakeDefault[K](maphash.MakeSeed())
	}

	if t.equalFunc == nil {
		t.equalFunc = hashfn.Equal[K]
	}
}

func (t *table[K, V]) firstSize() int {
	n := growth.Initial(t.maxSlots)
	if t.initialSlots > n {
		n = int(growth.NextPowerOf2(uint32(min(t.initialSlots, math.MaxInt32))))
	}

	if t.maxSlots > 0 {
		n = min(n, t.maxSlots)
	}

	return n
}

func (t *table[K, V]) home(key K, n int) int {
	return int(t.hashFunc(key) % uint64(n))
}

// find returns the index of the set slot holding key, or -1.
func (t *table[K, V]) find(key K) int {
	n := len(t.slots)
	if n == 0 {
		return -1
	}

	start := t.home(key, n)
	for idx := start; t.slots[idx].state != slotNull; {
		s := &t.slots[idx]
		if s.state == slotSet && t.equalFunc(s.key, key) {
			return idx
		}

		idx++
		if idx == n {
			idx = 0
		}

		// Searched the whole table
		if idx == start {
			return -1
		}
	}

	return -1
}

// findInsert returns the first slot on key's probe sequence that is null,
// unset, or set with a matching key. Returns -1 if every slot holds another
// key.
func (t *table[K, V]) findInsert(key K) int {
	n := len(t.slots)
	start := t.home(key, n)

	for idx := start; ; {
		s := &t.slots[idx]
		if s.state != slotSet || t.equalFunc(s.key, key) {
			return idx
		}

		idx++
		if idx == n {
			idx = 0
		}

		if idx == start {
			return -1
		}
	}
}

// rehash moves every set slot into a fresh table of newSize slots.
// Tombstones are dropped and fill is recomputed.
func (t *table[K, V]) rehash(newSize int) {
	slots := make([]slot[K, V], newSize)
	fill := 0

	for i := range t.slots {
		s := &t.slots[i]
		if s.state != slotSet {
			continue
		}

		// No key matches are possible and newSize >= size, so a null slot
		// always turns up.
		idx := t.home(s.key, newSize)
		for slots[idx].state == slotSet {
			idx++
			if idx == newSize {
				idx = 0
			}
		}

		slots[idx] = *s
		fill++
	}

	t.slots = slots
	t.fill = fill
}

// reserve allocates the table on first use and doubles it once more than half
// the slots are set or unset.
func (t *table[K, V]) reserve() bool {
	if t.slots == nil {
		t.slots = make([]slot[K, V], t.firstSize())
		return true
	}

	if t.fill*2 > len(t.slots) {
		newSize, ok := growth.Double(len(t.slots), t.maxSlots)
		if !ok {
			return false
		}

		t.rehash(newSize)
	}

	return true
}

func (t *table[K, V]) get(key K) (V, bool) {
	idx := t.find(key)
	if idx < 0 {
		return t.emptyV, false
	}

	return t.slots[idx].value, true
}

// set stores value for key. added reports whether the key is new, ok whether
// the write happened at all.
func (t *table[K, V]) set(key K, value V) (added bool, ok bool) {
	if !t.reserve() {
		return false, false
	}

	// A matching key may sit past a tombstone, so look it up before picking
	// the first reusable slot.
	idx := t.find(key)
	if idx < 0 {
		idx = t.findInsert(key)
	}

	if idx < 0 {
		return false, false
	}

	s := &t.slots[idx]
	switch s.state {
	case slotNull:
		t.fill++
		t.size++
		added = true
	case slotUnset:
		t.size++
		added = true
	case slotSet:
		// The stored key stays; only the value is replaced.
		if t.valueDeinit != nil {
			t.valueDeinit(s.value)
		}

		s.value = value

		return false, true
	}

	s.state = slotSet
	s.key = key
	s.value = value

	return added, true
}

// delete marks the slot of key as unset. The fill count is kept, so
// tombstones keep counting toward the load until the next rehash.
func (t *table[K, V]) delete(key K) bool {
	idx := t.find(key)
	if idx < 0 {
		return false
	}

	s := &t.slots[idx]
	t.release(s)

	var zero slot[K, V]
	*s = zero
	s.state = slotUnset
	t.size--

	return true
}

func (t *table[K, V]) release(s *slot[K, V]) {
	if t.keyDeinit != nil {
		t.keyDeinit(s.key)
	}

	if t.valueDeinit != nil {
		t.valueDeinit(s.value)
	}
}

// reset deinitializes every live entry and releases the table.
func (t *table[K, V]) reset() {
	for i := range t.slots {
		if t.slots[i].state == slotSet {
			t.release(&t.slots[i])
		}
	}

	t.slots = nil
	t.fill = 0
	t.size = 0
}

// Compact rehashes in place at the current size, dropping every tombstone.
func (t *table[K, V]) Compact() {
	if t.slots == nil {
		return
	}

	t.rehash(len(t.slots))
}

func (t *table[K, V]) Stats() Stats {
	tombstones := t.fill - t.size

	s := Stats{
		Size:       t.size,
		Tombstones: tombstones,
		Fill:       t.fill,
		Slots:      len(t.slots),
	}

	if s.Slots > 0 {
		s.TombstonesCapacityRatio = float32(tombstones) / float32(s.Slots)
	}

	if s.Size > 0 {
		s.TombstonesSizeRatio = float32(tombstones) / float32(s.Size)
	}

	return s
}

// Validate checks that every live key is reachable from its home slot
// without crossing a null slot, that keys are unique, and that the counters
// agree with the slot states.
func (t *table[K, V]) Validate() error {
	if t.slots == nil {
		if t.fill != 0 || t.size != 0 {
			return errors.AssertionFailedf("unallocated table with fill %d, size %d", t.fill, t.size)
		}

		return nil
	}

	var set, unset int
	for i := range t.slots {
		s := &t.slots[i]
		switch s.state {
		case slotUnset:
			unset++
		case slotSet:
			set++

			if idx := t.find(s.key); idx != i {
				return errors.Wrapf(
					errors.AssertionFailedf("probe for key %v stops at %d", s.key, idx),
					"slot %d", i,
				)
			}
		}
	}

	if set != t.size {
		return errors.AssertionFailedf("found %d set slots, size is %d", set, t.size)
	}

	if set+unset != t.fill {
		return errors.AssertionFailedf("found %d set and %d unset slots, fill is %d", set, unset, t.fill)
	}

	return nil
}
