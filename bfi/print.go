//
// Copyright (c) 2026 bfi-go Authors
//
// All rights reserved.
//

package bfi

import (
	"fmt"
	"strings"
)

// String renders b as a diagnostic hex dump: an optional leading "-",
// then its limbs most-significant-first, each as a fixed-width
// 16-digit hex group. It is not meant as a parseable serialization,
// only for the trace output the cmd line tool prints.
func (b *Int) String() string {
	var sb strings.Builder
	if b.sign == 1 && !b.IsZero() {
		sb.WriteByte('-')
	}
	for i := b.length - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%016x", b.limb[i])
		if i > 0 {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
