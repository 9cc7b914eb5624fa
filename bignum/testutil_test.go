//
// Copyright (c) 2026 Ephemelier Authors
//
// All rights reserved.
//

package bignum

import (
	"math/big"
	"math/rand"
	"testing"
)

// toBig converts X to a math/big.Int via its hex representation,
// giving every test an independent oracle to check arithmetic
// against without hand-computing expected values.
func toBig(t *testing.T, x *Int) *big.Int {
	t.Helper()
	s, err := WriteString(x, 16, DefaultLimits)
	if err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	b, ok := new(big.Int).SetString(s, 16)
	if !ok {
		t.Fatalf("big.Int.SetString(%q) failed", s)
	}
	return b
}

// fromBig converts a math/big.Int into a fresh *Int via ReadString.
func fromBig(t *testing.T, b *big.Int) *Int {
	t.Helper()
	x := NewInt()
	if err := ReadString(x, 16, b.Text(16), DefaultLimits); err != nil {
		t.Fatalf("ReadString(%s): %v", b.Text(16), err)
	}
	return x
}

// randBig returns a random big.Int with at most bits bits, optionally
// negative.
func randBig(r *rand.Rand, bits int, allowNeg bool) *big.Int {
	n := new(big.Int).Rand(r, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
	if allowNeg && r.Intn(2) == 0 && n.Sign() != 0 {
		n.Neg(n)
	}
	return n
}

func assertEqualBig(t *testing.T, label string, got *Int, want *big.Int) {
	t.Helper()
	gb := toBig(t, got)
	if gb.Cmp(want) != 0 {
		t.Fatalf("%s: got %s, want %s", label, gb.Text(16), want.Text(16))
	}
}
