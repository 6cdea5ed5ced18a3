//
// Copyright (c) 2026 bfi-go Authors
//
// All rights reserved.
//

// The bfirsa command generates a toy RSA keypair, prints the
// intermediate values at each stage of generation, and runs an
// encrypt/decrypt round trip against a fixed 128-bit plaintext to
// prove the key works.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/toylabs/bfirsa/bfi"
	"github.com/toylabs/bfirsa/rng"
	"github.com/toylabs/bfirsa/rsa"
)

func main() {
	bits := flag.Int("bits", 512, "RSA key size in bits")
	count := flag.Int("count", 1, "number of keys to generate and test")
	flag.Parse()

	log.SetFlags(0)

	src := rng.OSSource{}

	for i := 0; i < *count; i++ {
		if !runOnce(*bits, src) {
			fmt.Println("FAILED")
			os.Exit(1)
		}
	}
}

func runOnce(bits int, src rng.Source) bool {
	fmt.Printf("Generating %d bit RSA key...\n", bits)

	opts := rsa.Options{
		Progress: func(r rune) { fmt.Printf("%c", r) },
		Trace:    func(label string, v *bfi.Int) { fmt.Printf("%s: %s\n", label, v) },
	}

	pub, priv := rsa.GenerateKeyPair(bits, src, opts)
	fmt.Println(" done!")

	plain := bfi.New(128)
	plain.Extend(128)
	raw := plain.Raw()
	raw[0] = 0xBEEFBEEFBEEFBEEF
	raw[1] = 0xBEEFBEEFBEEFBEEF

	fmt.Printf("Testing %d bit RSA key:\n", bits)
	fmt.Printf("S: %s\n", plain)

	ciphertext := rsa.Encrypt(pub, plain)
	fmt.Printf("C: %s\n", ciphertext)

	decrypted := rsa.Decrypt(priv, ciphertext)
	fmt.Printf("D: %s\n", decrypted)

	return bfi.Cmp(plain, decrypted) == 0
}
