//
// Copyright (c) 2026 bfi-go Authors
//
// All rights reserved.
//

package bfi

// ModExp returns base^exp mod mod, computed by left-to-right binary
// (square-and-multiply) exponentiation. Precondition: mod is
// non-zero; exp is non-negative (its sign is ignored).
func ModExp(base, exp, mod *Int) *Int {
	res := newScratch(mod.length)
	res.limb[0] = 1
	res.length = 1

	b := Copy(base)
	Modulo(b, mod)

	for i := exp.MSB(); i >= 0; i-- {
		sq := Mul(res, res)
		Modulo(sq, mod)
		Swap(res, sq)

		if exp.Bit(i) {
			pr := Mul(res, b)
			Modulo(pr, mod)
			Swap(res, pr)
		}
	}

	return res
}
