// Package growth holds the sizing rules shared by the growable containers.
package growth

import "math/bits"

// InitialSize is the capacity every container allocates on first use.
const InitialSize = 32

// Returns the next power of 2 for the given value `v`.
func NextPowerOf2(v uint32) uint32 {
	return uint32(1) << min(bits.Len32(v-1), 31)
}

// Initial returns the first allocation size under the given limit.
// A limit <= 0 means unlimited.
func Initial(limit int) int {
	if limit > 0 && limit < InitialSize {
		return limit
	}

	return InitialSize
}

// Double returns twice n, or false when that exceeds the limit.
func Double(n, limit int) (int, bool) {
	next := 2 * n
	if limit > 0 && next > limit {
		return n, false
	}

	return next, true
}
