// Package hashfn holds the key customization points shared by the hash maps.
//
// A HashFunc must be consistent with the EqualFunc it is paired with: keys
// that compare equal must produce equal hashes.
package hashfn

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

type HashFunc[K any] func(K) uint64

type EqualFunc[K any] func(a, b K) bool

// Returns a seeded hash function for any comparable key.
func MakeDefault[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// Bits hashes an integer key by its raw bits.
// Cheap, but clusters badly for keys sharing low bits.
func Bits[K constraints.Integer](k K) uint64 {
	return uint64(k)
}

// String hashes a string key with xxhash64.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Bytes hashes a byte slice with xxhash64.
func Bytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

func Equal[K comparable](a, b K) bool {
	return a == b
}
