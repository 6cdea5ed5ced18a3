//
// Copyright (c) 2026 bfi-go Authors
//
// All rights reserved.
//

package bfi

// Shr1 shifts b's magnitude right by one bit in place, discarding the
// low bit. This package's own divide/modinv use the fused cmpShl/
// subShl pair instead of a materialize-then-shr1 division, but Shr1
// is exported as the primitive that variant (and any other
// halving-style algorithm) needs.
func Shr1(b *Int) {
	var carry uint64
	for i := b.length - 1; i >= 0; i-- {
		next := b.limb[i] & 1
		b.limb[i] = (b.limb[i] >> 1) | (carry << (limbBits - 1))
		carry = next
	}
	b.shrink()
}

// Shl shifts b's magnitude left by n bits in place, extending length
// as needed to hold the result. n must be non-negative.
func Shl(b *Int, n int) {
	if n == 0 {
		return
	}
	wordShift := n / limbBits
	bitShift := uint(n % limbBits)

	newLen := b.length + wordShift
	if bitShift != 0 {
		newLen++
	}
	b.extendWords(newLen)

	if wordShift > 0 {
		for i := b.length - 1; i >= wordShift; i-- {
			b.limb[i] = b.limb[i-wordShift]
		}
		for i := 0; i < wordShift; i++ {
			b.limb[i] = 0
		}
	}
	if bitShift != 0 {
		var carry uint64
		for i := wordShift; i < b.length; i++ {
			cur := b.limb[i]
			b.limb[i] = (cur << bitShift) | carry
			carry = cur >> (limbBits - bitShift)
		}
	}
	b.shrink()
}

// cmpShl compares a against the value b<<s without materializing the
// shifted value: it reads b's limbs through the same word/bit split
// Shl would apply, synthesizing each virtual limb on the fly. Returns
// -1, 0, or +1 as Cmp does.
func cmpShl(a, b *Int, s int) int {
	wordShift := s / limbBits
	bitShift := uint(s % limbBits)

	shiftedLen := b.length + wordShift
	if bitShift != 0 {
		shiftedLen++
	}

	n := a.length
	if shiftedLen > n {
		n = shiftedLen
	}
	for i := n - 1; i >= 0; i-- {
		ai := a.safe(i)
		bi := shiftedLimb(b, i, wordShift, bitShift)
		if ai != bi {
			return cmpWord(ai, bi)
		}
	}
	return 0
}

// shiftedLimb returns limb i of the virtual value b<<s, where s was
// already decomposed into wordShift whole limbs and a residual
// bitShift, without ever materializing b<<s.
func shiftedLimb(b *Int, i, wordShift int, bitShift uint) uint64 {
	j := i - wordShift
	if j < 0 {
		return 0
	}
	lo := b.safe(j)
	if bitShift == 0 {
		return lo
	}
	hi := b.safe(j - 1)
	return (lo << bitShift) | (hi >> (limbBits - bitShift))
}

// subShl subtracts b<<s from a in place, in one fused pass, without
// ever materializing the shifted value. Precondition: a >= b<<s
// (callers check this with cmpShl first); violating it corrupts a's
// magnitude rather than panicking, since the borrow chain has no
// "too small" signal to check against.
//
// The loop only ever touches a's existing limbs: given a (already
// shrunk) >= b<<s, every limb of the virtual b<<s at an index at or
// past a.length must be zero — b<<s's magnitude can't exceed a's
// own, so it can't have significant bits above a's highest limb. No
// extend is needed or attempted here; a naive word/bit-count estimate
// of b<<s's width routinely overshoots a.length (its ceiling rounds
// up a partial top limb that often turns out to be zero), and
// extending to that estimate would panic on a perfectly valid
// subtraction.
func subShl(a *Int, b *Int, s int) {
	wordShift := s / limbBits
	bitShift := uint(s % limbBits)

	var borrow uint64
	for i := 0; i < a.length; i++ {
		v := shiftedLimb(b, i, wordShift, bitShift)
		cur := a.limb[i]

		t := cur - v
		borrow1 := uint64(0)
		if cur < v {
			borrow1 = 1
		}
		d := t - borrow
		borrow2 := uint64(0)
		if t < borrow {
			borrow2 = 1
		}

		a.limb[i] = d
		borrow = borrow1 + borrow2
	}
	a.shrink()
}
