package chainmap

import (
	"hash/maphash"

	"github.com/cockroachdb/errors"
	"github.com/homier/containers/hashfn"
	"github.com/homier/containers/internal/growth"
)

type entry[K comparable, V any] struct {
	next  *entry[K, V]
	key   K
	value V
}

// chain is the separate-chaining table shared by Map and ObjMap.
// Entries are allocated once and only relinked on rehash, so their addresses
// are stable for as long as they are in the table.
type chain[K comparable, V any] struct {
	table []*entry[K, V]
	count int

	maxBuckets int

	hashFunc    hashfn.HashFunc[K]
	equalFunc   hashfn.EqualFunc[K]
	keyDeinit   func(K)
	valueDeinit func(V)
}

type Option[K comparable, V any] func(c *chain[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f hashfn.HashFunc[K]) Option[K, V] {
	return func(c *chain[K, V]) {
		c.hashFunc = f
	}
}

// Override default key equality.
func WithEqualFunc[K comparable, V any](f hashfn.EqualFunc[K]) Option[K, V] {
	return func(c *chain[K, V]) {
		c.equalFunc = f
	}
}

// Sets a hook called once for every key erased or cleared.
// Overwriting a value keeps its key.
func WithKeyDeinit[K comparable, V any](f func(K)) Option[K, V] {
	return func(c *chain[K, V]) {
		c.keyDeinit = f
	}
}

// Sets a hook called once for every value erased, overwritten or cleared.
func WithValueDeinit[K comparable, V any](f func(V)) Option[K, V] {
	return func(c *chain[K, V]) {
		c.valueDeinit = f
	}
}

// Limits the number of buckets. Inserts fail once a rehash would exceed n.
func WithMaxBuckets[K comparable, V any](n int) Option[K, V] {
	return func(c *chain[K, V]) {
		c.maxBuckets = n
	}
}

func (c *chain[K, V]) init(opts ...Option[K, V]) {
	for _, opt := range opts {
		opt(c)
	}

	if c.hashFunc == nil {
		c.hashFunc = hashfn.MakeDefault[K](maphash.MakeSeed())
	}

	if c.equalFunc == nil {
		c.equalFunc = hashfn.Equal[K]
	}
}

func (c *chain[K, V]) bucketIndex(key K, tableSize int) int {
	return int(c.hashFunc(key) % uint64(tableSize))
}

// slotOf returns the address of the bucket head for key.
func (c *chain[K, V]) slotOf(key K) **entry[K, V] {
	return &c.table[c.bucketIndex(key, len(c.table))]
}

func (c *chain[K, V]) find(key K) *entry[K, V] {
	if c.table == nil {
		return nil
	}

	for e := *c.slotOf(key); e != nil; e = e.next {
		if c.equalFunc(e.key, key) {
			return e
		}
	}

	return nil
}

// resize relinks every entry into a table of newSize buckets, appending to
// the tail of its new chain. No entry is reallocated.
func (c *chain[K, V]) resize(newSize int) {
	table := make([]*entry[K, V], newSize)

	for _, e := range c.table {
		for e != nil {
			next := e.next

			slot := &table[c.bucketIndex(e.key, newSize)]
			for *slot != nil {
				slot = &(*slot).next
			}

			*slot = e
			e.next = nil

			e = next
		}
	}

	c.table = table
}

// reserve makes room for one more entry: allocates the table on first use
// and doubles it once the load passes two entries per bucket.
func (c *chain[K, V]) reserve() bool {
	if c.table == nil {
		c.table = make([]*entry[K, V], growth.Initial(c.maxBuckets))
		return true
	}

	if c.count > 2*len(c.table) {
		newSize, ok := growth.Double(len(c.table), c.maxBuckets)
		if !ok {
			return false
		}

		c.resize(newSize)
	}

	return true
}

// upsert returns the entry for key, appending a new one at the chain tail if
// absent. created reports whether the entry is new.
func (c *chain[K, V]) upsert(key K) (e *entry[K, V], created bool) {
	if !c.reserve() {
		return nil, false
	}

	slot := c.slotOf(key)
	for *slot != nil {
		if c.equalFunc((*slot).key, key) {
			return *slot, false
		}

		slot = &(*slot).next
	}

	e = &entry[K, V]{key: key}
	*slot = e
	c.count++

	return e, true
}

// unlink removes the entry for key from its chain and returns it.
func (c *chain[K, V]) unlink(key K) *entry[K, V] {
	if c.table == nil {
		return nil
	}

	for slot := c.slotOf(key); *slot != nil; slot = &(*slot).next {
		e := *slot
		if c.equalFunc(e.key, key) {
			*slot = e.next
			e.next = nil
			c.count--

			return e
		}
	}

	return nil
}

func (c *chain[K, V]) deinit(e *entry[K, V]) {
	if c.keyDeinit != nil {
		c.keyDeinit(e.key)
	}

	if c.valueDeinit != nil {
		c.valueDeinit(e.value)
	}
}

// clear visits every entry bucket by bucket, then drops the table.
func (c *chain[K, V]) clear(visit func(e *entry[K, V])) {
	for i, e := range c.table {
		for e != nil {
			next := e.next
			visit(e)
			e.next = nil
			e = next
		}

		c.table[i] = nil
	}

	c.table = nil
	c.count = 0
}

func (c *chain[K, V]) each(yield func(e *entry[K, V]) bool) {
	for _, e := range c.table {
		for ; e != nil; e = e.next {
			if !yield(e) {
				return
			}
		}
	}
}

func (c *chain[K, V]) stats() Stats {
	s := Stats{
		Size:    c.count,
		Buckets: len(c.table),
	}

	for _, e := range c.table {
		n := 0
		for ; e != nil; e = e.next {
			n++
		}

		if n > 0 {
			s.UsedBuckets++
		}

		s.LongestChain = max(s.LongestChain, n)
	}

	return s
}

func (c *chain[K, V]) validate() error {
	if c.table == nil {
		if c.count != 0 {
			return errors.AssertionFailedf("unallocated table with %d entries", c.count)
		}

		return nil
	}

	total := 0
	for i, head := range c.table {
		for e := head; e != nil; e = e.next {
			if idx := c.bucketIndex(e.key, len(c.table)); idx != i {
				return errors.AssertionFailedf("entry %v in bucket %d, hashes to %d", e.key, i, idx)
			}

			for o := e.next; o != nil; o = o.next {
				if c.equalFunc(e.key, o.key) {
					return errors.AssertionFailedf("duplicate key %v in bucket %d", e.key, i)
				}
			}

			total++
		}
	}

	if total != c.count {
		return errors.AssertionFailedf("found %d entries, count is %d", total, c.count)
	}

	return nil
}
