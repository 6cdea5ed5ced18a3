//
// Copyright (c) 2026 bfi-go Authors
//
// All rights reserved.
//

// Package rng supplies the entropy the rsa package draws candidate
// primes and Fermat witnesses from. A Source is deliberately narrow —
// fill a buffer with bytes — so the keygen code never has to care
// whether it's talking to the OS CSPRNG or a deterministic,
// seed-derived stream used to make a test reproducible.
package rng

// Source fills buf with random bytes.
type Source interface {
	Fill(buf []byte)
}
