// Package bit contains low-level bitboard primitives shared by the board and
// search packages: bit iteration, square indexing and population counts.
package bit

import "math/bits"

// Iter walks the set bits of a 64-bit word, yielding each as an isolated
// single-bit mask. It is a pull-style iterator: repeated calls to Next
// exhaust the word monotonically, in least-significant-bit-first order,
// mirroring the x & -x idiom used throughout bitboard move generators.
type Iter struct {
	rem uint64
}

// NewIter returns an iterator over the set bits of x.
func NewIter(x uint64) Iter {
	return Iter{rem: x}
}

// Next returns the next isolated bit and true, or 0 and false if exhausted.
func (it *Iter) Next() (uint64, bool) {
	if it.rem == 0 {
		return 0, false
	}
	prev := it.rem
	it.rem &= it.rem - 1
	return prev ^ it.rem, true
}

// Len reports how many bits remain unvisited, without consuming them.
func (it Iter) Len() int {
	return bits.OnesCount64(it.rem)
}

// Square returns the index (0..63) of the least-significant set bit of a
// single-bit (or any non-zero) mask. Callers that need the index of a whole
// set should iterate with Iter and call Square on each yielded bit.
func Square(singleBit uint64) int {
	return bits.TrailingZeros64(singleBit)
}

// PopCount returns the number of set bits in x.
func PopCount(x uint64) int {
	return bits.OnesCount64(x)
}
