//
// Copyright (c) 2026 bfi-go Authors
//
// All rights reserved.
//

package rsa

import "github.com/toylabs/bfirsa/bfi"

// Encrypt returns m^e mod n. Precondition: 0 <= m < n. There is no
// padding scheme here (no OAEP): this is textbook RSA, deterministic
// and malleable by construction.
func Encrypt(pub *PublicKey, m *bfi.Int) *bfi.Int {
	return bfi.ModExp(m, pub.Exp, pub.Mod)
}

// Decrypt returns c^d mod n.
func Decrypt(priv *PrivateKey, c *bfi.Int) *bfi.Int {
	return bfi.ModExp(c, priv.Exp, priv.Mod)
}
