//
// Copyright (c) 2026 Ephemelier Authors
//
// All rights reserved.
//

package bignum

// ShiftL sets X <<= count bits. X is first grown to fit msb(X)+count
// bits, then shifted by whole limbs and finally by the remaining
// sub-limb amount using a rolling high-bit residue. Never shrinks.
func ShiftL(x *Int, count int, limits Limits) error {
	limbShift := count / biL
	bitShift := count % biL

	needed := x.Msb() + count
	if len(x.limbs)*biL < needed {
		if err := x.Grow(bitsToLimbs(needed), limits); err != nil {
			return err
		}
	}

	n := len(x.limbs)
	if limbShift > 0 {
		for i := n; i > limbShift; i-- {
			x.limbs[i-1] = x.limbs[i-limbShift-1]
		}
		for i := limbShift; i > 0; i-- {
			x.limbs[i-1] = 0
		}
	}

	if bitShift > 0 {
		var r0 Word
		for i := limbShift; i < n; i++ {
			r1 := x.limbs[i] >> (uint(biL - bitShift))
			x.limbs[i] <<= uint(bitShift)
			x.limbs[i] |= r0
			r0 = r1
		}
	}
	return nil
}

// ShiftR sets X >>= count bits. If count meets or exceeds the total
// bit width, X becomes zero. Never shrinks.
func ShiftR(x *Int, count int, limits Limits) error {
	limbShift := count / biL
	bitShift := count % biL
	n := len(x.limbs)

	if limbShift > n || (limbShift == n && bitShift > 0) {
		return x.Lset(0, limits)
	}

	if limbShift > 0 {
		i := 0
		for ; i < n-limbShift; i++ {
			x.limbs[i] = x.limbs[i+limbShift]
		}
		for ; i < n; i++ {
			x.limbs[i] = 0
		}
	}

	if bitShift > 0 {
		var r0 Word
		for i := n; i > 0; i-- {
			r1 := x.limbs[i-1] << (uint(biL - bitShift))
			x.limbs[i-1] >>= uint(bitShift)
			x.limbs[i-1] |= r0
			r0 = r1
		}
	}
	return nil
}
