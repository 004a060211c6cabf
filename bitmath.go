package accumulator

import (
	"math/bits"

	"github.com/holiman/uint256"
)

// Lowbit returns the largest power of two dividing n (n & -n), equivalently
// 2^trailing_zeros(n). Callers guarantee n >= 1; Lowbit(0) returns 0.
func Lowbit(n *uint256.Int) *uint256.Int {
	if n.IsZero() {
		return new(uint256.Int)
	}
	one := uint256.NewInt(1)
	nMinus1 := new(uint256.Int).Sub(n, one)
	notNMinus1 := new(uint256.Int).Not(nMinus1)
	return new(uint256.Int).And(n, notNMinus1)
}

// Pred clears the lowest set bit of n: Pred(n) = n - Lowbit(n). Pred(n) < n
// for n >= 1, and Pred(n) == 0 iff n is a power of two.
func Pred(n *uint256.Int) *uint256.Int {
	return new(uint256.Int).Sub(n, Lowbit(n))
}

// trailingZeros returns the number of trailing zero bits of n. Undefined
// (never called) on n == 0; callers guarantee n >= 1.
//
// uint256.Int is a public [4]uint64 array, word 0 least significant; we
// scan it directly rather than rely on a library-provided bit-scan method.
func trailingZeros(n *uint256.Int) uint32 {
	for word := 0; word < 4; word++ {
		if n[word] != 0 {
			return uint32(word*64 + bits.TrailingZeros64(n[word]))
		}
	}
	return 0
}
