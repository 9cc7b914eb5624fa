//
// Copyright (c) 2026 Ephemelier Authors
//
// All rights reserved.
//

package bignum

import "math/bits"

// DivMpi computes A = Q*B + R with 0 <= |R| < |B| and sign(R) =
// sign(A) (HAC 14.20, Knuth algorithm D). Either Q or R may be nil if
// the caller doesn't need it.
func DivMpi(q, r, a, b *Int, limits Limits) error {
	if b.IsZero() {
		return StatusDivisionByZero
	}

	if CmpAbs(a, b) < 0 {
		if q != nil {
			if err := q.Lset(0, limits); err != nil {
				return err
			}
		}
		if r != nil {
			if err := r.Copy(a, limits); err != nil {
				return err
			}
		}
		return nil
	}

	var x, y, z, t1, t2 Int
	defer x.Free()
	defer y.Free()
	defer z.Free()
	defer t1.Free()
	defer t2.Free()
	if err := x.Copy(a, limits); err != nil {
		return err
	}
	if err := y.Copy(b, limits); err != nil {
		return err
	}
	x.sign, y.sign = 1, 1

	if err := z.Grow(len(a.limbs)+2, limits); err != nil {
		return err
	}
	if err := z.Lset(0, limits); err != nil {
		return err
	}
	if err := t1.Grow(2, limits); err != nil {
		return err
	}
	if err := t2.Grow(3, limits); err != nil {
		return err
	}

	k := y.Msb() % biL
	if k < biL-1 {
		k = biL - 1 - k
		if err := ShiftL(&x, k, limits); err != nil {
			return err
		}
		if err := ShiftL(&y, k, limits); err != nil {
			return err
		}
	} else {
		k = 0
	}

	n := len(x.limbs) - 1
	t := len(y.limbs) - 1

	if err := z.Grow(n+2, limits); err != nil {
		return err
	}

	if err := ShiftL(&y, biL*(n-t), limits); err != nil {
		return err
	}
	for CmpMpi(&x, &y) >= 0 {
		z.limbs[n-t]++
		if err := SubMpi(&x, &x, &y, limits); err != nil {
			return err
		}
	}
	if err := ShiftR(&y, biL*(n-t), limits); err != nil {
		return err
	}

	for i := n; i > t; i-- {
		var qd Word
		if x.limbs[i] >= y.limbs[t] {
			qd = wordAllOnes
		} else {
			qd, _ = bits.Div(x.limbs[i], x.limbs[i-1], y.limbs[t])
		}

		for {
			if err := t1.Lset(0, limits); err != nil {
				return err
			}
			if t >= 1 {
				t1.limbs[0] = y.limbs[t-1]
			}
			t1.limbs[1] = y.limbs[t]
			if err := MulInt(&t1, &t1, qd, limits); err != nil {
				return err
			}

			if err := t2.Lset(0, limits); err != nil {
				return err
			}
			if i >= 2 {
				t2.limbs[0] = x.limbs[i-2]
			}
			if i >= 1 {
				t2.limbs[1] = x.limbs[i-1]
			}
			t2.limbs[2] = x.limbs[i]

			if CmpMpi(&t1, &t2) <= 0 {
				break
			}
			qd--
		}

		if err := MulInt(&t1, &y, qd, limits); err != nil {
			return err
		}
		if err := ShiftL(&t1, biL*(i-t-1), limits); err != nil {
			return err
		}
		if err := SubMpi(&x, &x, &t1, limits); err != nil {
			return err
		}

		if CmpInt(&x, 0) < 0 {
			if err := t1.Copy(&y, limits); err != nil {
				return err
			}
			if err := ShiftL(&t1, biL*(i-t-1), limits); err != nil {
				return err
			}
			if err := AddMpi(&x, &x, &t1, limits); err != nil {
				return err
			}
			qd--
		}
		z.limbs[i-t-1] = qd
	}

	if q != nil {
		if err := q.Copy(&z, limits); err != nil {
			return err
		}
		q.sign = a.sign * b.sign
	}

	if r != nil {
		if err := ShiftR(&x, k, limits); err != nil {
			return err
		}
		x.sign = a.sign
		if err := r.Copy(&x, limits); err != nil {
			return err
		}
		if CmpInt(r, 0) == 0 {
			r.sign = 1
		}
	}

	return nil
}

// DivInt computes A = Q*b + R for a small signed machine-word divisor
// b, by delegating to DivMpi.
func DivInt(q, r, a *Int, b int64, limits Limits) error {
	var bb Int
	setSmall(&bb, b)
	return DivMpi(q, r, a, &bb, limits)
}

// ModMpi computes R = A mod B, normalising the Knuth-D remainder into
// [0, B) (B must be positive).
func ModMpi(r, a, b *Int, limits Limits) error {
	if CmpInt(b, 0) < 0 {
		return StatusNegativeValue
	}
	if err := DivMpi(nil, r, a, b, limits); err != nil {
		return err
	}
	for CmpInt(r, 0) < 0 {
		if err := AddMpi(r, r, b, limits); err != nil {
			return err
		}
	}
	for CmpMpi(r, b) >= 0 {
		if err := SubMpi(r, r, b, limits); err != nil {
			return err
		}
	}
	return nil
}

// ModInt computes r = A mod b for a positive machine-word modulus b,
// streaming half-limbs through a (y,b) long-division recurrence
// rather than materialising a full DivMpi call.
func ModInt(a *Int, b Word) (Word, error) {
	if b == 0 {
		return 0, StatusDivisionByZero
	}

	if b == 1 {
		return 0, nil
	}
	if b == 2 {
		if len(a.limbs) == 0 {
			return 0, nil
		}
		return a.limbs[0] & 1, nil
	}

	var y Word
	for i := len(a.limbs); i > 0; i-- {
		x := a.limbs[i-1]
		y = (y << biH) | (x >> biH)
		y %= b

		x <<= biH
		y = (y << biH) | (x >> biH)
		y %= b
	}

	if a.sign < 0 && y != 0 {
		y = b - y
	}
	return y, nil
}
