//
// Copyright (c) 2026 bfi-go Authors
//
// All rights reserved.
//

// Package rsa implements a toy RSA keypair: Fermat-filtered prime
// search, e=65537, modular-inverse private exponent derivation, and
// textbook modular-exponentiation encrypt/decrypt. It is built on top
// of package bfi and is not meant for anything but demonstrating how
// the pieces fit together: there is no padding, no constant-time
// arithmetic, and primality is checked by Fermat rounds only.
package rsa

import "github.com/toylabs/bfirsa/bfi"

// PublicKey is (e, n): the encryption exponent and modulus.
type PublicKey struct {
	Exp *bfi.Int
	Mod *bfi.Int
}

// PrivateKey is (d, n): the decryption exponent and an independent
// copy of the modulus, so a caller holding a PrivateKey never shares
// backing storage with the PublicKey it was derived alongside.
type PrivateKey struct {
	Exp *bfi.Int
	Mod *bfi.Int
}
