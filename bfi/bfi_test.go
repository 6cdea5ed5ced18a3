//
// Copyright (c) 2026 bfi-go Authors
//
// All rights reserved.
//

package bfi

import (
	"math/big"
	"math/rand"
	"testing"
)

// fromUint64 builds an Int directly from a little-endian limb list,
// for tests that need exact control over the starting representation.
func fromUint64(limbs ...uint64) *Int {
	b := newScratch(len(limbs))
	copy(b.limb, limbs)
	b.length = len(limbs)
	b.shrink()
	return b
}

// fromBig converts a math/big.Int into an Int with headroom limbs of
// extra capacity, for round-tripping through operations that grow.
func fromBig(x *big.Int, headroom int) *Int {
	words := (x.BitLen()+limbBits-1)/limbBits + headroom
	if words == 0 {
		words = 1
	}
	b := newScratch(words)
	abs := new(big.Int).Abs(x)
	bytes := abs.Bytes()
	for i, by := range bytes {
		limbIdx := (len(bytes) - 1 - i) / 8
		shift := uint(((len(bytes) - 1 - i) % 8) * 8)
		b.limb[limbIdx] |= uint64(by) << shift
	}
	b.length = words
	b.shrink()
	if x.Sign() < 0 {
		b.sign = 1
	}
	return b
}

func toBig(b *Int) *big.Int {
	r := new(big.Int)
	for i := b.length - 1; i >= 0; i-- {
		r.Lsh(r, limbBits)
		r.Or(r, new(big.Int).SetUint64(b.limb[i]))
	}
	if b.sign == 1 {
		r.Neg(r)
	}
	return r
}

func TestCmpSymmetry(t *testing.T) {
	a := fromUint64(5, 2)
	b := fromUint64(9)
	if Cmp(a, b) != -Cmp(b, a) {
		t.Fatalf("cmp not antisymmetric")
	}
	if Cmp(a, a) != 0 {
		t.Fatalf("cmp(a,a) != 0")
	}
}

func TestAddCarryChain(t *testing.T) {
	// mag_add extends its destination to max(len)+1 as headroom against
	// a carry-out, so the destination needs capacity for that even
	// though this particular sum fits in 2 limbs.
	a := fromUint64(0xFFFFFFFFFFFFFFFF, 0x0, 0x0)
	a.length = 2
	b := fromUint64(0x1, 0x0)
	a.Add(b)
	if a.limb[0] != 0 || a.limb[1] != 1 {
		t.Fatalf("got limbs %x %x, want 0 1", a.limb[0], a.limb[1])
	}
}

func TestSubCarryChain(t *testing.T) {
	a := fromUint64(0x0, 0x1)
	b := fromUint64(0x1, 0x0)
	a.Sub(b)
	if a.limb[0] != 0xFFFFFFFFFFFFFFFF || a.sign != 0 {
		t.Fatalf("got limb %x sign %d, want 0xFFFF...FFFF sign 0", a.limb[0], a.sign)
	}
	a.shrink()
	if a.length != 1 {
		t.Fatalf("expected shrink to 1 limb, got %d", a.length)
	}
}

func TestAddSubInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		av := big.NewInt(rng.Int63())
		bv := big.NewInt(rng.Int63())
		a := fromBig(av, 1)
		b := fromBig(bv, 1)
		want := toBig(a)
		a.Sub(b)
		a.Add(b)
		if toBig(a).Cmp(want) != 0 {
			t.Fatalf("sub/add not inverse: got %s want %s", toBig(a), want)
		}
	}
}

func TestIncDecIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		v := big.NewInt(rng.Int63() + 1)
		b := fromBig(v, 1)
		want := toBig(b)
		b.Inc()
		b.Dec()
		if toBig(b).Cmp(want) != 0 {
			t.Fatalf("inc/dec not identity: got %s want %s", toBig(b), want)
		}
	}
}

func TestMulWorkedExample(t *testing.T) {
	a := fromUint64(0xFFFFFFFFFFFFFFFF)
	b := fromUint64(0xFFFFFFFFFFFFFFFF)
	res := Mul(a, b)
	if res.length != 2 || res.limb[0] != 0x0000000000000001 || res.limb[1] != 0xFFFFFFFFFFFFFFFE {
		t.Fatalf("got [%x %x], want [1 FFFFFFFFFFFFFFFE]", res.limb[0], res.limb[1])
	}
}

func TestMulCommutative(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		av := big.NewInt(rng.Int63())
		bv := big.NewInt(rng.Int63())
		a := fromBig(av, 0)
		b := fromBig(bv, 0)
		r1 := Mul(a, b)
		r2 := Mul(b, a)
		if toBig(r1).Cmp(toBig(r2)) != 0 {
			t.Fatalf("mul not commutative")
		}
		want := new(big.Int).Mul(av, bv)
		if toBig(r1).Cmp(want) != 0 {
			t.Fatalf("mul got %s want %s", toBig(r1), want)
		}
	}
}

func TestDivModWorkedExample(t *testing.T) {
	a := fromUint64(100)
	b := fromUint64(7)
	q, r := DivMod(a, b)
	if q.limb[0] != 14 {
		t.Fatalf("quotient got %d want 14", q.limb[0])
	}
	if r.limb[0] != 2 {
		t.Fatalf("remainder got %d want 2", r.limb[0])
	}
}

func TestDivModProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 200; i++ {
		av := new(big.Int).Abs(big.NewInt(rng.Int63()))
		bv := new(big.Int).Abs(big.NewInt(rng.Int63() + 1))
		a := fromBig(av, 1)
		b := fromBig(bv, 1)
		q, r := DivMod(a, b)
		if Cmp(r, b) >= 0 {
			t.Fatalf("remainder not smaller than divisor")
		}
		check := new(big.Int).Add(new(big.Int).Mul(toBig(q), toBig(b)), toBig(r))
		if check.Cmp(av) != 0 {
			t.Fatalf("q*b+r != a: got %s want %s", check, av)
		}
	}
}

func TestModuloDividendSmallerUnchanged(t *testing.T) {
	a := fromUint64(3)
	b := fromUint64(7)
	before := toBig(a)
	Modulo(a, b)
	if toBig(a).Cmp(before) != 0 {
		t.Fatalf("modulo changed a when a < b")
	}
}

func TestModExpWorkedExample(t *testing.T) {
	base := fromUint64(4)
	exp := fromUint64(13)
	mod := fromUint64(497)
	res := ModExp(base, exp, mod)
	if res.limb[0] != 445 {
		t.Fatalf("modexp got %d want 445", res.limb[0])
	}
}

func TestModExpAgainstBig(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 30; i++ {
		base := big.NewInt(rng.Int63n(1000) + 1)
		exp := big.NewInt(rng.Int63n(50) + 1)
		mod := big.NewInt(rng.Int63n(9999) + 3)
		want := new(big.Int).Exp(base, exp, mod)

		res := ModExp(fromBig(base, 1), fromBig(exp, 1), fromBig(mod, 1))
		if toBig(res).Cmp(want) != 0 {
			t.Fatalf("modexp(%s,%s,%s) got %s want %s", base, exp, mod, toBig(res), want)
		}
	}
}

func TestModInvWorkedExample(t *testing.T) {
	e := fromUint64(65537)
	tot := fromUint64(1037420)
	d := ModInv(e, tot)

	check := Mul(e, d)
	Modulo(check, tot)
	if !check.IsOne() {
		t.Fatalf("(e*d) mod tot = %s, want 1", toBig(check))
	}
}

func TestModInvAgainstBig(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	tries := 0
	for tries < 30 {
		ev := big.NewInt(rng.Int63n(1000) + 3)
		totv := big.NewInt(rng.Int63n(100000) + 1000)
		if new(big.Int).GCD(nil, nil, ev, totv).Cmp(big.NewInt(1)) != 0 {
			continue
		}
		tries++

		d := ModInv(fromBig(ev, 1), fromBig(totv, 1))
		want := new(big.Int).ModInverse(ev, totv)
		if toBig(d).Cmp(want) != 0 {
			t.Fatalf("modinv(%s,%s) got %s want %s", ev, totv, toBig(d), want)
		}
	}
}

func TestMSBAndBitBoundary(t *testing.T) {
	b := fromUint64(0x8, 0x0)
	got := b.MSB()
	if got != 3 {
		t.Fatalf("msb got %d want 3", got)
	}
	if !b.Bit(got) {
		t.Fatalf("bit(msb) should be set")
	}
	for k := got + 1; k < b.length*limbBits; k++ {
		if b.Bit(k) {
			t.Fatalf("bit %d set above msb", k)
		}
	}
}

func TestMSBPanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on MSB of zero")
		}
	}()
	fromUint64(0).MSB()
}

func TestDivisibleByThree(t *testing.T) {
	for n := 0; n < 200; n++ {
		b := fromUint64(uint64(n))
		want := n%3 == 0
		if got := b.DivisibleByThree(); got != want {
			t.Fatalf("divby3(%d) got %v want %v", n, got, want)
		}
	}
}

func TestShrinkIdempotent(t *testing.T) {
	b := fromUint64(5, 0, 0)
	b.shrink()
	first := b.length
	b.shrink()
	if b.length != first {
		t.Fatalf("shrink not idempotent")
	}
	if b.limb[0] != 5 {
		t.Fatalf("shrink changed value")
	}
}

func TestCopyValueEquivalence(t *testing.T) {
	a := fromUint64(42, 7)
	a.sign = 1
	c := Copy(a)
	if Cmp(a, c) != 0 || a.sign != c.sign {
		t.Fatalf("copy not value-equivalent")
	}
}

func TestShl(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		v := big.NewInt(rng.Int63())
		n := rng.Intn(130)
		b := fromBig(v, 3)
		Shl(b, n)
		want := new(big.Int).Lsh(v, uint(n))
		if toBig(b).Cmp(want) != 0 {
			t.Fatalf("shl(%s,%d) got %s want %s", v, n, toBig(b), want)
		}
	}
}

func TestShr1(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 100; i++ {
		v := big.NewInt(rng.Int63())
		b := fromBig(v, 1)
		Shr1(b)
		want := new(big.Int).Rsh(v, 1)
		if toBig(b).Cmp(want) != 0 {
			t.Fatalf("shr1(%s) got %s want %s", v, toBig(b), want)
		}
	}
}

func TestShr1DiscardsLowBit(t *testing.T) {
	b := fromUint64(1)
	Shr1(b)
	if !b.IsZero() {
		t.Fatalf("shr1(1) got %s want 0", b)
	}
}

func TestCmpShlAndSubShl(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for i := 0; i < 100; i++ {
		bv := big.NewInt(rng.Int63n(1 << 40))
		s := rng.Intn(40)
		av := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), 80))
		shifted := new(big.Int).Lsh(bv, uint(s))

		a := fromBig(av, 3)
		b := fromBig(bv, 3)

		wantCmp := av.Cmp(shifted)
		gotCmp := cmpShl(a, b, s)
		if sign(wantCmp) != sign(gotCmp) {
			t.Fatalf("cmpShl(%s,%s,%d) got %d want sign of %d", av, bv, s, gotCmp, wantCmp)
		}

		if wantCmp >= 0 {
			subShl(a, b, s)
			want := new(big.Int).Sub(av, shifted)
			if toBig(a).Cmp(want) != 0 {
				t.Fatalf("subShl got %s want %s", toBig(a), want)
			}
		}
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
