//
// Copyright (c) 2026 bfi-go Authors
//
// All rights reserved.
//

package bfi

// Mul returns a new Int holding a*b. The product of an m-limb value
// and an n-limb value never needs more than m+n limbs, so the result
// is allocated at exactly that capacity up front: no reallocation,
// no headroom guesswork.
func Mul(a, b *Int) *Int {
	res := newScratch(a.length + b.length)
	res.length = a.length + b.length

	for i := 0; i < a.length; i++ {
		if a.limb[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < b.length; j++ {
			hi, lo := wideMul(a.limb[i], b.limb[j])

			// lo and the previous iteration's hi both land on limb
			// i+j: lo is this term's low half, carry is the high
			// half the previous term spilled into this position.
			touched := chainedAdd(res.limb[i+j:], lo)
			if i+j+touched > res.length {
				res.length = i + j + touched
			}
			touched = chainedAdd(res.limb[i+j:], carry)
			if i+j+touched > res.length {
				res.length = i + j + touched
			}
			carry = hi
		}
		if carry != 0 {
			touched := chainedAdd(res.limb[i+b.length:], carry)
			if i+b.length+touched > res.length {
				res.length = i + b.length + touched
			}
		}
	}

	res.sign = a.sign ^ b.sign
	res.shrink()
	if res.IsZero() {
		res.sign = 0
	}
	return res
}
