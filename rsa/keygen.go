//
// Copyright (c) 2026 bfi-go Authors
//
// All rights reserved.
//

package rsa

import (
	"github.com/toylabs/bfirsa/bfi"
	"github.com/toylabs/bfirsa/rng"
)

// fermatWitnesses is the number of random bases tried per candidate.
// Not a production-grade primality test (no Miller-Rabin, no BPSW):
// a composite can slip through with probability roughly 2^-fermatWitnesses,
// which is fine for a toy but would not be for real key generation.
const fermatWitnesses = 10

// publicExponent is fixed at the common default value; this package
// never generates a different e.
const publicExponent = 65537

// Options controls keygen diagnostics. The zero value runs silently.
type Options struct {
	// Progress, if non-nil, is called once per candidate examined
	// during a prime search and once per Fermat witness round, so a
	// caller can print the same dot-per-attempt trace the original
	// command-line tool did.
	Progress func(rune)

	// Trace, if non-nil, is called with each named intermediate value
	// as it's produced (p, q, m, t, e, d), for tools that want to
	// print the same stage-by-stage hex trace the original did.
	Trace func(label string, v *bfi.Int)
}

func (o Options) tick(r rune) {
	if o.Progress != nil {
		o.Progress(r)
	}
}

func (o Options) trace(label string, v *bfi.Int) {
	if o.Trace != nil {
		o.Trace(label, v)
	}
}

// isProbablyPrime runs the Fermat primality test: for up to
// fermatWitnesses random bases w in [0, n), if w^(n-1) mod n != 1 for
// any of them, n is composite. Passing every round means n is
// probably prime, not provably so.
func isProbablyPrime(n *bfi.Int, src rng.Source, opts Options) bool {
	nMinusOne := bfi.Copy(n)
	nMinusOne.Dec()

	buf := make([]byte, n.BitLen()/8)
	witness := bfi.New(n.BitLen())
	witness.Extend(n.BitLen())

	for i := 0; i < fermatWitnesses; i++ {
		opts.tick('+')

		src.Fill(buf)
		fillFromBytes(witness, buf)

		res := bfi.ModExp(witness, nMinusOne, n)
		if !res.IsOne() {
			return false
		}
	}
	return true
}

// fillFromBytes loads buf (little-endian bytes, matching the limb
// layout: buf[0] is the least significant byte) into b's low bytes,
// first clearing all of b's active limbs so no higher bytes are left
// over from a previous candidate. b's length is not changed: the
// caller extends b beforehand to cover len(buf) bytes.
func fillFromBytes(b *bfi.Int, buf []byte) {
	raw := b.Raw()
	for i := range raw {
		raw[i] = 0
	}
	for i, by := range buf {
		raw[i/8] |= uint64(by) << uint((i%8)*8)
	}
}

// findPrime searches for a probable prime of the given bit width: it
// draws random candidates, forces them odd, discards multiples of
// three outright (a cheap prefilter), and runs the Fermat test on
// what's left.
func findPrime(bits int, src rng.Source, opts Options) *bfi.Int {
	buf := make([]byte, bits/8)
	candidate := bfi.New(bits)
	candidate.Extend(bits)

	for {
		opts.tick('.')

		src.Fill(buf)
		fillFromBytes(candidate, buf)
		candidate.Raw()[0] |= 1

		if candidate.DivisibleByThree() {
			continue
		}
		if isProbablyPrime(candidate, src, opts) {
			return candidate
		}
	}
}

// GenerateKeyPair builds an RSA keypair with an n-bit modulus (each
// prime factor half that width): p, q <- findPrime(bits/2); n = p*q;
// phi = (p-1)*(q-1); e = 65537; d = e^-1 mod phi.
func GenerateKeyPair(bits int, src rng.Source, opts Options) (*PublicKey, *PrivateKey) {
	p := findPrime(bits/2, src, opts)
	opts.trace("p", p)
	q := findPrime(bits/2, src, opts)
	opts.trace("q", q)

	n := bfi.Mul(p, q)
	opts.trace("m", n)

	p.Dec()
	q.Dec()
	phi := bfi.Mul(p, q)
	opts.trace("t", phi)

	e := bfi.New(64)
	e.Raw()[0] = publicExponent
	opts.trace("e", e)

	d := bfi.ModInv(e, phi)
	opts.trace("d", d)

	pub := &PublicKey{Exp: e, Mod: n}
	priv := &PrivateKey{Exp: d, Mod: bfi.Copy(n)}
	return pub, priv
}
