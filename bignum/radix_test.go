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

func TestReadWriteStringRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(61))
	for _, radix := range []int{2, 8, 10, 16} {
		for i := 0; i < 50; i++ {
			want := randBig(r, 200, true)

			var x Int
			if err := ReadString(&x, radix, want.Text(radix), DefaultLimits); err != nil {
				t.Fatalf("ReadString(radix=%d, %s): %v", radix, want.Text(radix), err)
			}

			s, err := WriteString(&x, radix, DefaultLimits)
			if err != nil {
				t.Fatalf("WriteString(radix=%d): %v", radix, err)
			}

			got, ok := new(big.Int).SetString(s, radix)
			if !ok {
				t.Fatalf("big.Int.SetString(%q, %d) failed", s, radix)
			}
			if got.Cmp(want) != 0 {
				t.Fatalf("round trip radix=%d: got %s, want %s", radix, got, want)
			}
		}
	}
}

func TestReadStringInvalidCharacter(t *testing.T) {
	var x Int
	if err := ReadString(&x, 10, "12x4", DefaultLimits); err != StatusInvalidCharacter {
		t.Fatalf("ReadString invalid char: got %v, want StatusInvalidCharacter", err)
	}
}

func TestReadStringBadRadix(t *testing.T) {
	var x Int
	if err := ReadString(&x, 17, "10", DefaultLimits); err != StatusBadInput {
		t.Fatalf("ReadString bad radix: got %v, want StatusBadInput", err)
	}
}

func TestReadWriteBinaryRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(62))
	for i := 0; i < 100; i++ {
		want := randBig(r, 256, false)

		buf := want.Bytes()
		var x Int
		if err := ReadBinary(&x, buf, DefaultLimits); err != nil {
			t.Fatalf("ReadBinary: %v", err)
		}
		assertEqualBig(t, "ReadBinary", &x, want)

		out := make([]byte, x.Size())
		if err := WriteBinary(&x, out); err != nil {
			t.Fatalf("WriteBinary: %v", err)
		}

		got := new(big.Int).SetBytes(out)
		if got.Cmp(want) != 0 {
			t.Fatalf("WriteBinary round trip: got %s, want %s", got, want)
		}
	}
}

func TestWriteBinaryBufferTooSmall(t *testing.T) {
	x := fromBig(t, big.NewInt(0x10000))
	buf := make([]byte, 1)
	if err := WriteBinary(x, buf); err != StatusBufferTooSmall {
		t.Fatalf("WriteBinary short buffer: got %v, want StatusBufferTooSmall", err)
	}
}

func TestReadBinaryZero(t *testing.T) {
	var x Int
	if err := ReadBinary(&x, []byte{0, 0, 0}, DefaultLimits); err != nil {
		t.Fatalf("ReadBinary: %v", err)
	}
	if !x.IsZero() {
		t.Fatalf("ReadBinary of all zero bytes should be zero")
	}
}
