//
// Copyright (c) 2026 bfi-go Authors
//
// All rights reserved.
//

package bfi

import "math/bits"

// Cmp returns -1, 0, or +1 according to whether a's magnitude is less
// than, equal to, or greater than b's. It ignores sign: this is a
// magnitude compare, the building block signed Add/Sub dispatch on.
func Cmp(a, b *Int) int {
	n := a.length
	if b.length > n {
		n = b.length
	}
	for i := n - 1; i >= 0; i-- {
		ai, bi := a.safe(i), b.safe(i)
		if ai != bi {
			return cmpWord(ai, bi)
		}
	}
	return 0
}

// IsZero reports whether b's magnitude is zero.
func (b *Int) IsZero() bool {
	for i := 0; i < b.length; i++ {
		if b.limb[i] != 0 {
			return false
		}
	}
	return true
}

// IsOne reports whether b's magnitude is exactly 1. Sign is ignored,
// so -1 also reports true.
func (b *Int) IsOne() bool {
	if b.limb[0] != 1 {
		return false
	}
	for i := 1; i < b.length; i++ {
		if b.limb[i] != 0 {
			return false
		}
	}
	return true
}

// Bit reports whether bit k of b's magnitude is set.
func (b *Int) Bit(k int) bool {
	word, off := k/limbBits, k%limbBits
	return b.limb[word]&(1<<uint(off)) != 0
}

// MSB returns the index of the highest set bit of b's magnitude.
// It is undefined (and panics) on a zero value.
func (b *Int) MSB() int {
	i := b.length - 1
	for i > 0 && b.limb[i] == 0 {
		i--
	}
	if b.limb[i] == 0 {
		panic("bfi: MSB of zero is undefined")
	}
	return limbBits - bits.LeadingZeros64(b.limb[i]) - 1 + i*limbBits
}

// DivisibleByThree reports whether b's integer value is divisible by
// three.
//
// Since 2 ≡ -1 (mod 3), bit i of a binary number contributes (-1)^i to
// its value mod 3: the alternating sum of set bits (popcount of the
// even-position bits minus popcount of the odd-position ones) is
// congruent to the value mod 3. It's a cheap prefilter run before the
// much more expensive Fermat witness rounds in prime search.
func (b *Int) DivisibleByThree() bool {
	const evenMask = 0x5555555555555555
	const oddMask = 0xaaaaaaaaaaaaaaaa
	var sum int64
	for i := 0; i < b.length; i++ {
		sum += int64(bits.OnesCount64(b.limb[i] & evenMask))
		sum -= int64(bits.OnesCount64(b.limb[i] & oddMask))
	}
	return ((sum%3)+3)%3 == 0
}
