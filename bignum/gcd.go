//
// Copyright (c) 2026 Ephemelier Authors
//
// All rights reserved.
//

package bignum

// Gcd sets G = gcd(A, B) using the binary GCD algorithm (HAC 14.54):
// strip the common power of two, then repeatedly strip remaining
// factors of two from each operand and subtract the smaller from the
// larger until one side reaches zero.
func Gcd(g, a, b *Int, limits Limits) error {
	var ta, tb Int
	defer ta.Free()
	defer tb.Free()
	if err := ta.Copy(a, limits); err != nil {
		return err
	}
	if err := tb.Copy(b, limits); err != nil {
		return err
	}

	lz := ta.Lsb()
	lzt := tb.Lsb()
	if lzt < lz {
		lz = lzt
	}

	if err := ShiftR(&ta, lz, limits); err != nil {
		return err
	}
	if err := ShiftR(&tb, lz, limits); err != nil {
		return err
	}
	ta.sign, tb.sign = 1, 1
	if tb.IsZero() {
		ta.Swap(&tb)
	}

	for CmpInt(&ta, 0) != 0 {
		if err := ShiftR(&ta, ta.Lsb(), limits); err != nil {
			return err
		}
		if err := ShiftR(&tb, tb.Lsb(), limits); err != nil {
			return err
		}

		if CmpMpi(&ta, &tb) >= 0 {
			if err := SubAbs(&ta, &ta, &tb, limits); err != nil {
				return err
			}
			if err := ShiftR(&ta, 1, limits); err != nil {
				return err
			}
		} else {
			if err := SubAbs(&tb, &tb, &ta, limits); err != nil {
				return err
			}
			if err := ShiftR(&tb, 1, limits); err != nil {
				return err
			}
		}
	}

	if err := ShiftL(&tb, lz, limits); err != nil {
		return err
	}
	return g.Copy(&tb, limits)
}
