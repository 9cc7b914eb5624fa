//
// Copyright (c) 2026 Ephemelier Authors
//
// All rights reserved.
//

package bignum

import "math/bits"

// mulHlp computes d[0:i+1] += s[0:i] * b, the HAC 14.12 inner kernel:
// s is multiplied by the single limb b and accumulated into d with
// carry propagation continuing past index i until it settles into a
// limb that doesn't overflow. Callers must ensure d has enough room.
func mulHlp(i int, s, d []Word, b Word) {
	var carry Word
	for k := 0; k < i; k++ {
		hi, lo := bits.Mul(uint(s[k]), uint(b))
		lo64, c0 := bits.Add(lo, uint(d[k]), 0)
		lo64, c1 := bits.Add(lo64, uint(carry), 0)
		d[k] = Word(lo64)
		carry = Word(hi) + Word(c0) + Word(c1)
	}
	j := i
	for {
		sum, c := bits.Add(uint(d[j]), uint(carry), 0)
		d[j] = Word(sum)
		if c == 0 {
			break
		}
		carry = 1
		j++
	}
}

// MulMpi sets X = A * B, schoolbook O(n*m) (HAC 14.12). Grows X to
// n(A)+n(B) limbs and zeroes it before accumulating.
//
// Aliasing: X may equal A and/or B; an aliased operand is copied to a
// fresh temporary first.
func MulMpi(x, a, b *Int, limits Limits) error {
	var ta, tb Int
	defer ta.Free()
	defer tb.Free()
	if x == a {
		if err := ta.Copy(a, limits); err != nil {
			return err
		}
		a = &ta
	}
	if x == b {
		if err := tb.Copy(b, limits); err != nil {
			return err
		}
		b = &tb
	}

	i := effectiveLen(a.limbs)
	j := effectiveLen(b.limbs)

	if err := x.Grow(i+j, limits); err != nil {
		return err
	}
	zeroiseWords(x.limbs)

	if i > 0 {
		for k := j; k > 0; k-- {
			mulHlp(i, a.limbs, x.limbs[k-1:], b.limbs[k-1])
		}
	}

	x.sign = a.sign * b.sign
	return nil
}

// MulInt sets X = A * b for a small non-negative machine limb b.
func MulInt(x, a *Int, b Word, limits Limits) error {
	bb := Int{sign: 1, limbs: []Word{b}}
	return MulMpi(x, a, &bb, limits)
}
