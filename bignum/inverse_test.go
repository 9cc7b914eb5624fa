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

func TestInvModAgainstBig(t *testing.T) {
	r := rand.New(rand.NewSource(41))
	n := big.NewInt(1000000007) // prime modulus
	nv := fromBig(t, n)

	for i := 0; i < 200; i++ {
		a := randBig(r, 64, false)
		a.Mod(a, n)
		if a.Sign() == 0 {
			continue
		}

		av := fromBig(t, a)
		var x Int
		if err := InvMod(&x, av, nv, DefaultLimits); err != nil {
			t.Fatalf("InvMod(%s, %s): %v", a, n, err)
		}

		want := new(big.Int).ModInverse(a, n)
		assertEqualBig(t, "InvMod", &x, want)

		// Cross-check: a * x = 1 mod n.
		check := new(big.Int).Mul(a, toBig(t, &x))
		check.Mod(check, n)
		if check.Cmp(big.NewInt(1)) != 0 {
			t.Fatalf("a*x mod n = %s, want 1", check)
		}
	}
}

func TestInvModNotCoprime(t *testing.T) {
	a := fromBig(t, big.NewInt(6))
	n := fromBig(t, big.NewInt(9)) // gcd(6,9) = 3
	var x Int
	if err := InvMod(&x, a, n, DefaultLimits); err != StatusNotAcceptable {
		t.Fatalf("InvMod non-coprime: got %v, want StatusNotAcceptable", err)
	}
}

func TestInvModNonPositiveModulus(t *testing.T) {
	a := fromBig(t, big.NewInt(6))
	n := fromBig(t, big.NewInt(0))
	var x Int
	if err := InvMod(&x, a, n, DefaultLimits); err != StatusBadInput {
		t.Fatalf("InvMod zero modulus: got %v, want StatusBadInput", err)
	}
}
