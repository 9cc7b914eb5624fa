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

func TestGcdAgainstBig(t *testing.T) {
	r := rand.New(rand.NewSource(31))
	for i := 0; i < 200; i++ {
		a := randBig(r, 256, false)
		b := randBig(r, 256, false)
		if a.Sign() == 0 && b.Sign() == 0 {
			continue
		}

		x, y := fromBig(t, a), fromBig(t, b)
		var g Int
		if err := Gcd(&g, x, y, DefaultLimits); err != nil {
			t.Fatalf("Gcd(%s, %s): %v", a, b, err)
		}

		want := new(big.Int).GCD(nil, nil, a, b)
		assertEqualBig(t, "Gcd", &g, want)
	}
}

func TestGcdKnownPairs(t *testing.T) {
	tests := []struct {
		a, b, g int64
	}{
		{693, 609, 21},
		{1, 1, 1},
		{0, 5, 5},
		{17, 17, 17},
		{48, 18, 6},
	}
	for _, test := range tests {
		x := fromBig(t, big.NewInt(test.a))
		y := fromBig(t, big.NewInt(test.b))
		var g Int
		if err := Gcd(&g, x, y, DefaultLimits); err != nil {
			t.Fatalf("Gcd(%d, %d): %v", test.a, test.b, err)
		}
		assertEqualBig(t, "Gcd known pair", &g, big.NewInt(test.g))
	}
}
