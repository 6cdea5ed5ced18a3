//
// Copyright (c) 2026 bfi-go Authors
//
// All rights reserved.
//

// Package bfi implements an arbitrary-precision signed integer
// ("big fixed-capacity integer") in sign-magnitude form, built from
// 64-bit limbs. It supplies exactly the arithmetic the rsa package
// needs: comparison, in-place signed add/subtract, schoolbook
// multiplication, shift-and-subtract division, binary modular
// exponentiation, and an extended-Euclidean modular inverse.
//
// Values are single-owner and mutated in place by most operations
// (Add, Sub, Modulo, the shifts); Mul and DivMod allocate and return
// new values. Swap exchanges two values without copying their limbs;
// ModExp uses it to rotate its result through the loop. ModInv
// rotates its working variables by reassigning pointers instead.
package bfi

import "math/bits"

// limbBits is the width of one limb. wideMul below is the expanding
// multiply primitive the schoolbook multiplier is built on; on amd64
// and arm64 math/bits.Mul64 compiles to the same MULQ/UMULH the
// original C implementation reached for via inline assembly.
const limbBits = 64

// cmpWord returns -1, 0, or +1 according to whether a is less than,
// equal to, or greater than b.
func cmpWord(a, b uint64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// wideMul returns the full 128-bit product of a and b as (hi, lo).
func wideMul(a, b uint64) (hi, lo uint64) {
	return bits.Mul64(a, b)
}
