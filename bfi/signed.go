//
// Copyright (c) 2026 bfi-go Authors
//
// All rights reserved.
//

package bfi

// Add adds b into a in place, dispatching on the sign combination:
// same sign is a magnitude add; opposite signs compare magnitudes and
// either subtract or invert-subtract.
func (a *Int) Add(b *Int) {
	if a.sign != b.sign {
		if Cmp(a, b) < 0 {
			invSub(a, b)
			return
		}
		magSub(a, b)
		return
	}
	magAdd(a, b)
}

// Sub subtracts b from a in place, dispatching on the sign
// combination: opposite signs is a magnitude add; same sign compares
// magnitudes and either subtracts or invert-subtracts.
func (a *Int) Sub(b *Int) {
	if a.sign != b.sign {
		magAdd(a, b)
		return
	}
	if Cmp(a, b) < 0 {
		invSub(a, b)
		return
	}
	magSub(a, b)
}

// Inc adds one to b in place. The carry chain runs across the whole
// backing buffer, not just the active length, so a carry out of the
// top active limb grows length to absorb it; running past capacity
// is a sizing bug and panics.
func (b *Int) Inc() {
	touched := chainedAdd(b.limb, 1)
	if touched > b.length {
		b.length = touched
	}
}

// Dec subtracts one from b in place. Precondition: b is non-zero (a
// borrow chain starting from zero has no magnitude to borrow from).
func (b *Int) Dec() {
	chainedSub(b.limb[:b.length], 1)
}
