//
// Copyright (c) 2026 Ephemelier Authors
//
// All rights reserved.
//

package bignum

// lowBit returns limb 0's low bit, treating an empty (zero) limb
// array as even.
func lowBit(x *Int) Word {
	if len(x.limbs) == 0 {
		return 0
	}
	return x.limbs[0] & 1
}

// InvMod sets X = A^-1 mod N using the extended binary algorithm
// (HAC 14.61 / 14.64). N must be strictly positive. Returns
// StatusNotAcceptable if A has no inverse modulo N (gcd(A, N) != 1).
func InvMod(x, a, n *Int, limits Limits) error {
	if CmpInt(n, 0) <= 0 {
		return StatusBadInput
	}

	var g Int
	defer g.Free()
	if err := Gcd(&g, a, n, limits); err != nil {
		return err
	}
	if CmpInt(&g, 1) != 0 {
		return StatusNotAcceptable
	}

	var ta, tu, u1, u2, tb, tv, v1, v2 Int
	defer ta.Free()
	defer tu.Free()
	defer u1.Free()
	defer u2.Free()
	defer tb.Free()
	defer tv.Free()
	defer v1.Free()
	defer v2.Free()
	if err := ModMpi(&ta, a, n, limits); err != nil {
		return err
	}
	if err := tu.Copy(&ta, limits); err != nil {
		return err
	}
	if err := tb.Copy(n, limits); err != nil {
		return err
	}
	if err := tv.Copy(n, limits); err != nil {
		return err
	}

	if err := u1.Lset(1, limits); err != nil {
		return err
	}
	if err := u2.Lset(0, limits); err != nil {
		return err
	}
	if err := v1.Lset(0, limits); err != nil {
		return err
	}
	if err := v2.Lset(1, limits); err != nil {
		return err
	}

	for {
		for lowBit(&tu) == 0 {
			if err := ShiftR(&tu, 1, limits); err != nil {
				return err
			}
			if lowBit(&u1) != 0 || lowBit(&u2) != 0 {
				if err := AddMpi(&u1, &u1, &tb, limits); err != nil {
					return err
				}
				if err := SubMpi(&u2, &u2, &ta, limits); err != nil {
					return err
				}
			}
			if err := ShiftR(&u1, 1, limits); err != nil {
				return err
			}
			if err := ShiftR(&u2, 1, limits); err != nil {
				return err
			}
		}

		for lowBit(&tv) == 0 {
			if err := ShiftR(&tv, 1, limits); err != nil {
				return err
			}
			if lowBit(&v1) != 0 || lowBit(&v2) != 0 {
				if err := AddMpi(&v1, &v1, &tb, limits); err != nil {
					return err
				}
				if err := SubMpi(&v2, &v2, &ta, limits); err != nil {
					return err
				}
			}
			if err := ShiftR(&v1, 1, limits); err != nil {
				return err
			}
			if err := ShiftR(&v2, 1, limits); err != nil {
				return err
			}
		}

		if CmpMpi(&tu, &tv) >= 0 {
			if err := SubMpi(&tu, &tu, &tv, limits); err != nil {
				return err
			}
			if err := SubMpi(&u1, &u1, &v1, limits); err != nil {
				return err
			}
			if err := SubMpi(&u2, &u2, &v2, limits); err != nil {
				return err
			}
		} else {
			if err := SubMpi(&tv, &tv, &tu, limits); err != nil {
				return err
			}
			if err := SubMpi(&v1, &v1, &u1, limits); err != nil {
				return err
			}
			if err := SubMpi(&v2, &v2, &u2, limits); err != nil {
				return err
			}
		}

		if CmpInt(&tu, 0) == 0 {
			break
		}
	}

	for CmpInt(&v1, 0) < 0 {
		if err := AddMpi(&v1, &v1, n, limits); err != nil {
			return err
		}
	}
	for CmpMpi(&v1, n) >= 0 {
		if err := SubMpi(&v1, &v1, n, limits); err != nil {
			return err
		}
	}

	return x.Copy(&v1, limits)
}
