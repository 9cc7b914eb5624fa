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

func TestExpModAgainstBig(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	for i := 0; i < 50; i++ {
		n := randBig(r, 256, false)
		n.SetBit(n, 0, 1) // force odd
		if n.Cmp(big.NewInt(1)) <= 0 {
			continue
		}
		a := randBig(r, 256, false)
		e := randBig(r, 64, false)

		x, av, ev, nv := NewInt(), fromBig(t, a), fromBig(t, e), fromBig(t, n)
		if err := ExpMod(x, av, ev, nv, nil, DefaultLimits); err != nil {
			t.Fatalf("ExpMod(%s, %s, %s): %v", a, e, n, err)
		}

		want := new(big.Int).Exp(a, e, n)
		assertEqualBig(t, "ExpMod", x, want)
	}
}

func TestExpModRRCacheReuse(t *testing.T) {
	n := fromBig(t, big.NewInt(987654319)) // prime
	a1 := fromBig(t, big.NewInt(12345))
	a2 := fromBig(t, big.NewInt(67890))
	e := fromBig(t, big.NewInt(17))

	var rr RRCache
	x1 := NewInt()
	if err := ExpMod(x1, a1, e, n, &rr, DefaultLimits); err != nil {
		t.Fatalf("ExpMod first call: %v", err)
	}
	if !rr.valid {
		t.Fatalf("RRCache not populated after first call")
	}

	x2 := NewInt()
	if err := ExpMod(x2, a2, e, n, &rr, DefaultLimits); err != nil {
		t.Fatalf("ExpMod second call: %v", err)
	}

	assertEqualBig(t, "ExpMod cached call", x1,
		new(big.Int).Exp(big.NewInt(12345), big.NewInt(17), big.NewInt(987654319)))
	assertEqualBig(t, "ExpMod cached call 2", x2,
		new(big.Int).Exp(big.NewInt(67890), big.NewInt(17), big.NewInt(987654319)))
}

func TestExpModZeroExponent(t *testing.T) {
	n := fromBig(t, big.NewInt(101))
	a := fromBig(t, big.NewInt(5))
	e := fromBig(t, big.NewInt(0))

	x := NewInt()
	if err := ExpMod(x, a, e, n, nil, DefaultLimits); err != nil {
		t.Fatalf("ExpMod: %v", err)
	}
	assertEqualBig(t, "A^0 mod N", x, big.NewInt(1))
}

func TestExpModRejectsEvenModulus(t *testing.T) {
	n := fromBig(t, big.NewInt(100))
	a := fromBig(t, big.NewInt(3))
	e := fromBig(t, big.NewInt(5))

	x := NewInt()
	if err := ExpMod(x, a, e, n, nil, DefaultLimits); err != StatusBadInput {
		t.Fatalf("ExpMod with even modulus: got %v, want StatusBadInput", err)
	}
}

func TestExpModNegativeBase(t *testing.T) {
	// spec.md step 8: a negative base only flips the sign of the
	// result when E is odd; an even E must still yield a positive
	// residue, since (-a)^E = a^E for even E.
	n := fromBig(t, big.NewInt(101))
	a := fromBig(t, big.NewInt(-5))

	oddE := fromBig(t, big.NewInt(7))
	xOdd := NewInt()
	if err := ExpMod(xOdd, a, oddE, n, nil, DefaultLimits); err != nil {
		t.Fatalf("ExpMod odd exponent: %v", err)
	}
	wantOdd := new(big.Int).Exp(big.NewInt(-5), big.NewInt(7), nil)
	wantOdd.Mod(wantOdd, big.NewInt(101))
	assertEqualBig(t, "ExpMod negative base, odd exponent", xOdd, wantOdd)

	evenE := fromBig(t, big.NewInt(8))
	xEven := NewInt()
	if err := ExpMod(xEven, a, evenE, n, nil, DefaultLimits); err != nil {
		t.Fatalf("ExpMod even exponent: %v", err)
	}
	wantEven := new(big.Int).Exp(big.NewInt(5), big.NewInt(8), big.NewInt(101))
	assertEqualBig(t, "ExpMod negative base, even exponent", xEven, wantEven)
}

func TestExpModRSARoundTrip(t *testing.T) {
	// Small hand-picked RSA-shaped instance: p=61, q=53, n=3233,
	// e=17, d=2753 (textbook RSA worked example).
	n := fromBig(t, big.NewInt(3233))
	e := fromBig(t, big.NewInt(17))
	d := fromBig(t, big.NewInt(2753))
	msg := fromBig(t, big.NewInt(65))

	var rr RRCache
	ct := NewInt()
	if err := ExpMod(ct, msg, e, n, &rr, DefaultLimits); err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	pt := NewInt()
	if err := ExpMod(pt, ct, d, n, &rr, DefaultLimits); err != nil {
		t.Fatalf("decrypt: %v", err)
	}

	assertEqualBig(t, "RSA round trip", pt, big.NewInt(65))
}
