//
// Copyright (c) 2026 bfi-go Authors
//
// All rights reserved.
//

package bfi

import "fmt"

// Int is an arbitrary-precision signed integer in sign-magnitude form,
// stored as little-endian (limb[0] least significant) 64-bit limbs.
//
// capacity is fixed at allocation time: limb is always exactly
// capacity words long, and Extend panics if asked to grow length past
// it. Limbs at indices [length, capacity) are zero between public
// operations (the normalization invariant the fused shift/divide ops
// rely on to read "past the end" safely).
//
// The zero Int is not usable; construct with New.
type Int struct {
	sign     int // 0 non-negative, 1 negative. Zero is always sign 0.
	length   int // active limb count, 1 <= length <= capacity
	capacity int
	limb     []uint64
}

func wordsForBits(bitLen int) int {
	if bitLen <= 0 {
		panic("bfi: bit length must be positive")
	}
	return (bitLen + limbBits - 1) / limbBits
}

// New allocates an Int able to hold at least bitLen bits, initialized
// to zero.
func New(bitLen int) *Int {
	return allocWords(wordsForBits(bitLen))
}

// newScratch allocates an Int with an exact word capacity, for
// algorithm-internal temporaries whose maximum size is known from the
// shape of the computation (multiply results, quotients, remainders)
// rather than from a caller-supplied bit length.
func newScratch(words int) *Int {
	return allocWords(words)
}

func allocWords(words int) *Int {
	if words <= 0 {
		panic("bfi: attempt to allocate a zero-length Int")
	}
	return &Int{
		sign:     0,
		length:   1,
		capacity: words,
		limb:     make([]uint64, words),
	}
}

// Copy returns a new Int with the same value and sign as x, sized to
// x's active length (not its full capacity).
func Copy(x *Int) *Int {
	r := newScratch(x.length)
	r.sign = x.sign
	r.length = x.length
	copy(r.limb, x.limb[:x.length])
	return r
}

// set makes a a bit-for-bit copy of x's value and sign. a's capacity
// must already be at least x.length.
func (a *Int) set(x *Int) {
	if x.length > a.capacity {
		panic(fmt.Sprintf("bfi: set: value needs %d limbs, capacity is %d",
			x.length, a.capacity))
	}
	for i := range a.limb {
		a.limb[i] = 0
	}
	copy(a.limb, x.limb[:x.length])
	a.length = x.length
	a.sign = x.sign
}

// Extend grows length to cover at least newBitLen bits. It is a no-op
// if the value already covers that many bits, and fatal if newBitLen
// needs more limbs than capacity allows: that indicates a caller
// sizing bug, not a recoverable condition.
func (b *Int) Extend(newBitLen int) {
	b.extendWords(wordsForBits(newBitLen))
}

func (b *Int) extendWords(newLength int) {
	if newLength <= b.length {
		return
	}
	if newLength > b.capacity {
		panic(fmt.Sprintf("bfi: extend overflow: %d > capacity %d",
			newLength, b.capacity))
	}
	b.length = newLength
}

// shrink decreases length while the top limb is zero, stopping at 1.
// Idempotent: shrinking an already-shrunk value is a no-op.
func (b *Int) shrink() {
	for b.length > 1 && b.limb[b.length-1] == 0 {
		b.length--
	}
}

// Swap exchanges the values of a and b without copying limbs.
func Swap(a, b *Int) {
	*a, *b = *b, *a
}

// Sign returns 0 for non-negative values and 1 for negative ones.
func (b *Int) Sign() int {
	return b.sign
}

// BitLen returns the capacity of b expressed in bits, i.e. the number
// of bits the underlying buffer can hold (not the position of the
// highest set bit — see MSB for that).
func (b *Int) BitLen() int {
	return b.capacity * limbBits
}

// Raw returns the active limbs of b, little-endian, for diagnostic use.
func (b *Int) Raw() []uint64 {
	return b.limb[:b.length]
}

// safe returns limb i, treating any index before 0 or at or past
// length as zero.
func (b *Int) safe(i int) uint64 {
	if i >= 0 && i < b.length {
		return b.limb[i]
	}
	return 0
}
