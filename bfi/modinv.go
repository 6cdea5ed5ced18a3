//
// Copyright (c) 2026 bfi-go Authors
//
// All rights reserved.
//

package bfi

// ModInv returns x such that (e*x) mod tot == 1, via the extended
// Euclidean algorithm. It tracks the Bézout coefficient of e only (x
// below), discarding the one for tot: that's the coefficient rsa
// keygen needs, since e*x + tot*(discarded) = gcd(e, tot) = 1 for a
// validly chosen e.
//
// Working values are bounded by tot's width throughout, but the
// unreduced product q*x inside the loop can transiently run wider
// before the following subtract brings it back down, so scratch gets
// headroom rather than tot's exact width.
func ModInv(e, tot *Int) *Int {
	capWords := 2*tot.length + 2

	a := Copy(e)
	b := Copy(tot)

	xLast := newScratch(capWords)
	xLast.length = 1

	x := newScratch(capWords)
	x.limb[0] = 1
	x.length = 1

	for !a.IsZero() {
		q, r := DivMod(b, a)

		qx := Mul(q, x)
		m := newScratch(capWords)
		m.set(xLast)
		m.Sub(qx)
		m.shrink()

		xLast, x = x, m
		a, b = r, a
	}

	if xLast.Sign() == 1 {
		xLast.Add(tot)
	}
	Modulo(xLast, tot)
	return xLast
}
