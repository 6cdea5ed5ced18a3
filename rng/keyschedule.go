//
// Copyright (c) 2026 bfi-go Authors
//
// All rights reserved.
//

package rng

import (
	"crypto/sha256"

	"golang.org/x/crypto/hkdf"
)

// deriveKeyAndIV expands a caller-supplied seed into an AES-128 key
// and a 16-byte initial counter value via HKDF (extract-then-expand,
// RFC 5869), so that a given seed always produces the same keystream
// regardless of how many times a process has derived from it before.
func deriveKeyAndIV(seed []byte) (key [16]byte, iv [16]byte) {
	kdf := hkdf.New(sha256.New, seed, nil, []byte("bfi-go aes-ctr rng v1"))

	var material [32]byte
	if _, err := kdf.Read(material[:]); err != nil {
		panic("rng: hkdf expansion failed: " + err.Error())
	}
	copy(key[:], material[:16])
	copy(iv[:], material[16:])
	return key, iv
}
